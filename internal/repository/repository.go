package repository

import (
	"context"
	"time"

	"suncrest-hotel-backend/internal/domain"
)

type RoomTypeRepository interface {
	Create(ctx context.Context, rt *domain.RoomType) error
	GetByID(ctx context.Context, id int32) (*domain.RoomType, error)
	GetByKey(ctx context.Context, key string) (*domain.RoomType, error)
	Update(ctx context.Context, rt *domain.RoomType) error
	SetStatus(ctx context.Context, id int32, status domain.RoomTypeStatus) error
	List(ctx context.Context, includeInactive bool) ([]domain.RoomType, error)
}

// ReservationFilter narrows admin listings.
type ReservationFilter struct {
	RoomTypeID int32
	Status     domain.PaymentStatus
}

type ReservationRepository interface {
	// SumHeldUnits returns the unit total of capacity-holding reservations for
	// a room type over the half-open interval [checkIn, checkOut): every
	// SUCCESS row, plus PENDING rows created strictly after holdCutoff.
	SumHeldUnits(ctx context.Context, roomTypeID int32, checkIn, checkOut time.Time, holdCutoff time.Time) (int32, error)

	// CreateIfAvailable atomically rechecks capacity and inserts the
	// reservation. It returns domain.ErrCapacityUnavailable when the held sum
	// plus the requested units would exceed capacity, including after a
	// serialization conflict that persists past one retry.
	CreateIfAvailable(ctx context.Context, res *domain.Reservation, capacity int32, holdCutoff time.Time) error

	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	GetByReference(ctx context.Context, reference string) (*domain.Reservation, error)
	GetByOrderID(ctx context.Context, orderID string) (*domain.Reservation, error)
	SetOrderID(ctx context.Context, id int32, orderID string) error

	// TransitionStatus moves the reservation from one status to another in a
	// single conditional write. It reports false without error when the row
	// was no longer in the expected status, so racing callers settle exactly
	// one winner per transition.
	TransitionStatus(ctx context.Context, id int32, from, to domain.PaymentStatus, paymentID *string) (bool, error)

	// UpdateStatus writes the status unconditionally. Admin override only;
	// payment transitions go through TransitionStatus.
	UpdateStatus(ctx context.Context, id int32, status domain.PaymentStatus, paymentID *string) error
	List(ctx context.Context, filter ReservationFilter, page, pageSize int32) ([]domain.Reservation, int32, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time, status domain.PaymentStatus) (int32, error)
	AggregateByRoomType(ctx context.Context, from, to time.Time) ([]domain.RoomTypeStats, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id int32) error
}

type AdminUserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	Create(ctx context.Context, u *domain.AdminUser) error
}
