package service

import (
	"context"
	"time"

	"suncrest-hotel-backend/internal/domain"
	"suncrest-hotel-backend/internal/gateway"
)

type AvailabilityService interface {
	// ComputeAvailability quotes free units and pricing for a room type over
	// the half-open interval [checkIn, checkOut). An unknown or inactive room
	// type yields a zero-availability quote with a reason, not an error.
	ComputeAvailability(ctx context.Context, roomTypeKey string, checkIn, checkOut time.Time) (*domain.AvailabilityQuote, error)
}

// CreateReservationInput carries the booking form submission. Guest fields are
// snapshotted onto the reservation.
type CreateReservationInput struct {
	RoomTypeKey string
	Units       int32
	CheckIn     time.Time
	CheckOut    time.Time
	GuestName   string
	GuestEmail  string
	GuestPhone  string
}

type ReservationService interface {
	Create(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error)
	OpenPaymentOrder(ctx context.Context, reference string) (*gateway.Order, error)
	ConfirmPayment(ctx context.Context, orderID, paymentID, signature string) (*domain.Reservation, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) error
	FailPayment(ctx context.Context, orderID, paymentID string) (*domain.Reservation, error)
	AdminOverride(ctx context.Context, reservationID int32, status domain.PaymentStatus) (*domain.Reservation, error)
	GetByReference(ctx context.Context, reference string) (*domain.Reservation, error)
}

type AdminService interface {
	CreateRoomType(ctx context.Context, rt *domain.RoomType) error
	UpdateRoomType(ctx context.Context, rt *domain.RoomType) error
	SetRoomTypeStatus(ctx context.Context, id int32, status domain.RoomTypeStatus) error
	ListRoomTypes(ctx context.Context, includeInactive bool) ([]domain.RoomType, error)
	ListReservations(ctx context.Context, roomTypeID int32, status domain.PaymentStatus, page, pageSize int32) ([]domain.Reservation, int32, error)
	GetBookingReport(ctx context.Context, from, to time.Time) (*domain.BookingReport, error)
	ListNotifications(ctx context.Context, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkNotificationRead(ctx context.Context, id int32) error
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.AdminUser, error)
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, res *domain.Reservation, roomTypeName string) error
	SendDailySummary(ctx context.Context, to string, report *domain.BookingReport) error
}
