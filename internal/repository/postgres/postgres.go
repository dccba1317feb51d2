package postgres

import (
	"database/sql"

	"suncrest-hotel-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RoomTypeRepository
	repository.ReservationRepository
	repository.NotificationRepository
	repository.AdminUserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		RoomTypeRepository:     NewRoomTypeRepository(db),
		ReservationRepository:  NewReservationRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		AdminUserRepository:    NewAdminUserRepository(db),
	}
}
