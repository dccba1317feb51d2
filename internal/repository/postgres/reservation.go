package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"suncrest-hotel-backend/internal/domain"
	"suncrest-hotel-backend/internal/repository"
)

// heldUnitsQuery sums the units of capacity-holding reservations overlapping
// the half-open interval [$2, $3): SUCCESS rows unconditionally, PENDING rows
// only while their hold is live (created strictly after $4). Expired pending
// rows fall out of the sum with no write anywhere.
const heldUnitsQuery = `SELECT COALESCE(SUM(units), 0) FROM reservations
	WHERE room_type_id = $1 AND check_in < $3 AND check_out > $2
	AND (status = 'SUCCESS' OR (status = 'PENDING' AND created_on > $4))`

const reservationColumns = `id, reference, room_type_id, units, check_in, check_out, nights, nightly_rate_cents, total_cents, guest_name, guest_email, guest_phone, status, order_id, payment_id, created_on, updated_on`

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) SumHeldUnits(ctx context.Context, roomTypeID int32, checkIn, checkOut time.Time, holdCutoff time.Time) (int32, error) {
	var sum int32
	err := r.db.QueryRowContext(ctx, heldUnitsQuery, roomTypeID, checkIn, checkOut, holdCutoff).Scan(&sum)
	if err != nil {
		return 0, err
	}
	return sum, nil
}

// CreateIfAvailable rechecks capacity and inserts in one serializable
// transaction so two racing creations for the last unit cannot both commit.
// A serialization conflict is retried once; a second conflict is reported as
// capacity unavailable, since someone else may have taken the units.
func (r *reservationRepository) CreateIfAvailable(ctx context.Context, res *domain.Reservation, capacity int32, holdCutoff time.Time) error {
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		err = r.tryCreate(ctx, res, capacity, holdCutoff)
		if !isSerializationFailure(err) {
			return err
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrCapacityUnavailable, "concurrent booking conflict")
}

func (r *reservationRepository) tryCreate(ctx context.Context, res *domain.Reservation, capacity int32, holdCutoff time.Time) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var held int32
	if err := tx.QueryRowContext(ctx, heldUnitsQuery, res.RoomTypeID, res.CheckIn, res.CheckOut, holdCutoff).Scan(&held); err != nil {
		return err
	}

	if held+res.Units > capacity {
		return domain.ErrCapacityUnavailable
	}

	now := time.Now()
	query := `INSERT INTO reservations (reference, room_type_id, units, check_in, check_out, nights, nightly_rate_cents, total_cents, guest_name, guest_email, guest_phone, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	if err := tx.QueryRowContext(ctx, query,
		res.Reference, res.RoomTypeID, res.Units, res.CheckIn, res.CheckOut, res.Nights,
		res.NightlyRateCents, res.TotalCents, res.GuestName, res.GuestEmail, res.GuestPhone,
		res.Status, now, now,
	).Scan(&res.ID); err != nil {
		return err
	}
	res.CreatedOn = now
	res.UpdatedOn = now

	return tx.Commit()
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "40001"
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *reservationRepository) GetByReference(ctx context.Context, reference string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE reference = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, reference))
}

func (r *reservationRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE order_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, orderID))
}

func (r *reservationRepository) scanOne(row *sql.Row) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	err := row.Scan(&res.ID, &res.Reference, &res.RoomTypeID, &res.Units, &res.CheckIn, &res.CheckOut, &res.Nights,
		&res.NightlyRateCents, &res.TotalCents, &res.GuestName, &res.GuestEmail, &res.GuestPhone,
		&res.Status, &res.OrderID, &res.PaymentID, &res.CreatedOn, &res.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReservationNotFound
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) SetOrderID(ctx context.Context, id int32, orderID string) error {
	query := `UPDATE reservations SET order_id=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, orderID, time.Now(), id)
	return err
}

// TransitionStatus is the compare-and-set behind the payment transitions:
// the status predicate means a concurrent verify and webhook for the same
// order produce one transition, not two.
func (r *reservationRepository) TransitionStatus(ctx context.Context, id int32, from, to domain.PaymentStatus, paymentID *string) (bool, error) {
	query := `UPDATE reservations SET status=$1, payment_id=COALESCE($2, payment_id), updated_on=$3 WHERE id=$4 AND status=$5`
	res, err := r.db.ExecContext(ctx, query, to, paymentID, time.Now(), id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id int32, status domain.PaymentStatus, paymentID *string) error {
	query := `UPDATE reservations SET status=$1, payment_id=COALESCE($2, payment_id), updated_on=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, status, paymentID, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *reservationRepository) List(ctx context.Context, filter repository.ReservationFilter, page, pageSize int32) ([]domain.Reservation, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if filter.RoomTypeID != 0 {
		query += fmt.Sprintf(" AND room_type_id = $%d", argIdx)
		args = append(args, filter.RoomTypeID)
		argIdx++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.Reference, &res.RoomTypeID, &res.Units, &res.CheckIn, &res.CheckOut, &res.Nights,
			&res.NightlyRateCents, &res.TotalCents, &res.GuestName, &res.GuestEmail, &res.GuestPhone,
			&res.Status, &res.OrderID, &res.PaymentID, &res.CreatedOn, &res.UpdatedOn); err != nil {
			return nil, 0, err
		}
		reservations = append(reservations, res)
	}
	return reservations, count, rows.Err()
}

func (r *reservationRepository) CountCreatedBetween(ctx context.Context, from, to time.Time, status domain.PaymentStatus) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM reservations WHERE created_on >= $1 AND created_on < $2 AND status = $3`
	err := r.db.QueryRowContext(ctx, query, from, to, status).Scan(&count)
	return count, err
}

func (r *reservationRepository) AggregateByRoomType(ctx context.Context, from, to time.Time) ([]domain.RoomTypeStats, error) {
	query := `SELECT rt.id, rt.key, rt.name, count(res.id), COALESCE(SUM(res.units), 0), COALESCE(SUM(res.total_cents), 0)
	          FROM room_types rt
	          LEFT JOIN reservations res ON res.room_type_id = rt.id
	               AND res.status = 'SUCCESS' AND res.created_on >= $1 AND res.created_on < $2
	          GROUP BY rt.id, rt.key, rt.name
	          ORDER BY rt.key`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.RoomTypeStats
	for rows.Next() {
		var s domain.RoomTypeStats
		if err := rows.Scan(&s.RoomTypeID, &s.RoomTypeKey, &s.RoomTypeName, &s.Bookings, &s.Units, &s.RevenueCents); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
