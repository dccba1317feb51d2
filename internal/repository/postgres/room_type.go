package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"suncrest-hotel-backend/internal/domain"
	"suncrest-hotel-backend/internal/repository"
)

type roomTypeRepository struct {
	db *sql.DB
}

func NewRoomTypeRepository(db *sql.DB) repository.RoomTypeRepository {
	return &roomTypeRepository{db: db}
}

func (r *roomTypeRepository) Create(ctx context.Context, rt *domain.RoomType) error {
	query := `INSERT INTO room_types (key, name, description, total_units, nightly_rate_cents, max_guests, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rt.Key, rt.Name, rt.Description, rt.TotalUnits, rt.NightlyRateCents, rt.MaxGuests, rt.Status, time.Now(), time.Now()).Scan(&rt.ID)
}

func (r *roomTypeRepository) GetByID(ctx context.Context, id int32) (*domain.RoomType, error) {
	rt := &domain.RoomType{}
	query := `SELECT id, key, name, description, total_units, nightly_rate_cents, max_guests, status, created_on, updated_on FROM room_types WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.Key, &rt.Name, &rt.Description, &rt.TotalUnits, &rt.NightlyRateCents, &rt.MaxGuests, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRoomTypeNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *roomTypeRepository) GetByKey(ctx context.Context, key string) (*domain.RoomType, error) {
	rt := &domain.RoomType{}
	query := `SELECT id, key, name, description, total_units, nightly_rate_cents, max_guests, status, created_on, updated_on FROM room_types WHERE key = $1`
	err := r.db.QueryRowContext(ctx, query, key).Scan(&rt.ID, &rt.Key, &rt.Name, &rt.Description, &rt.TotalUnits, &rt.NightlyRateCents, &rt.MaxGuests, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRoomTypeNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *roomTypeRepository) Update(ctx context.Context, rt *domain.RoomType) error {
	query := `UPDATE room_types SET name=$1, description=$2, total_units=$3, nightly_rate_cents=$4, max_guests=$5, status=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, rt.Name, rt.Description, rt.TotalUnits, rt.NightlyRateCents, rt.MaxGuests, rt.Status, time.Now(), rt.ID)
	return err
}

func (r *roomTypeRepository) SetStatus(ctx context.Context, id int32, status domain.RoomTypeStatus) error {
	query := `UPDATE room_types SET status=$1, updated_on=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrRoomTypeNotFound
	}
	return nil
}

func (r *roomTypeRepository) List(ctx context.Context, includeInactive bool) ([]domain.RoomType, error) {
	query := `SELECT id, key, name, description, total_units, nightly_rate_cents, max_guests, status, created_on, updated_on FROM room_types`
	if !includeInactive {
		query += ` WHERE status = 'ACTIVE'`
	}
	query += ` ORDER BY key`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.RoomType
	for rows.Next() {
		var rt domain.RoomType
		if err := rows.Scan(&rt.ID, &rt.Key, &rt.Name, &rt.Description, &rt.TotalUnits, &rt.NightlyRateCents, &rt.MaxGuests, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, err
		}
		types = append(types, rt)
	}
	return types, rows.Err()
}
