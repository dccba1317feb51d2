package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"suncrest-hotel-backend/internal/domain"
	"suncrest-hotel-backend/internal/repository"
)

type adminUserRepository struct {
	db *sql.DB
}

func NewAdminUserRepository(db *sql.DB) repository.AdminUserRepository {
	return &adminUserRepository{db: db}
}

func (r *adminUserRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	u := &domain.AdminUser{}
	query := `SELECT id, name, email, password_hash, role, created_on FROM admin_users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *adminUserRepository) Create(ctx context.Context, u *domain.AdminUser) error {
	query := `INSERT INTO admin_users (name, email, password_hash, role, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.Name, u.Email, u.PasswordHash, u.Role, time.Now()).Scan(&u.ID)
}
