package service

import (
	"context"
	"time"

	"suncrest-hotel-backend/internal/domain"
	"suncrest-hotel-backend/internal/repository"
)

type adminService struct {
	roomTypeRepo    repository.RoomTypeRepository
	reservationRepo repository.ReservationRepository
	noteRepo        repository.NotificationRepository
}

func NewAdminService(
	roomTypeRepo repository.RoomTypeRepository,
	reservationRepo repository.ReservationRepository,
	noteRepo repository.NotificationRepository,
) AdminService {
	return &adminService{
		roomTypeRepo:    roomTypeRepo,
		reservationRepo: reservationRepo,
		noteRepo:        noteRepo,
	}
}

func validateRoomType(rt *domain.RoomType) error {
	if rt.Key == "" {
		return domain.NewValidationError("key", "is required")
	}
	if rt.Name == "" {
		return domain.NewValidationError("name", "is required")
	}
	if rt.TotalUnits < 0 {
		return domain.NewValidationError("total_units", "must not be negative")
	}
	if rt.NightlyRateCents <= 0 {
		return domain.NewValidationError("nightly_rate_cents", "must be positive")
	}
	return nil
}

func (s *adminService) CreateRoomType(ctx context.Context, rt *domain.RoomType) error {
	if err := validateRoomType(rt); err != nil {
		return err
	}
	if rt.Status == "" {
		rt.Status = domain.RoomTypeStatusActive
	}
	return s.roomTypeRepo.Create(ctx, rt)
}

func (s *adminService) UpdateRoomType(ctx context.Context, rt *domain.RoomType) error {
	if err := validateRoomType(rt); err != nil {
		return err
	}
	if _, err := s.roomTypeRepo.GetByID(ctx, rt.ID); err != nil {
		return err
	}
	return s.roomTypeRepo.Update(ctx, rt)
}

// SetRoomTypeStatus deactivates or reactivates a room type. There is no hard
// delete; historical reservations keep their reference.
func (s *adminService) SetRoomTypeStatus(ctx context.Context, id int32, status domain.RoomTypeStatus) error {
	if status != domain.RoomTypeStatusActive && status != domain.RoomTypeStatusInactive {
		return domain.NewValidationError("status", "unknown room type status")
	}
	return s.roomTypeRepo.SetStatus(ctx, id, status)
}

func (s *adminService) ListRoomTypes(ctx context.Context, includeInactive bool) ([]domain.RoomType, error) {
	return s.roomTypeRepo.List(ctx, includeInactive)
}

func (s *adminService) ListReservations(ctx context.Context, roomTypeID int32, status domain.PaymentStatus, page, pageSize int32) ([]domain.Reservation, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	filter := repository.ReservationFilter{RoomTypeID: roomTypeID, Status: status}
	return s.reservationRepo.List(ctx, filter, page, pageSize)
}

func (s *adminService) GetBookingReport(ctx context.Context, from, to time.Time) (*domain.BookingReport, error) {
	if !to.After(from) {
		return nil, domain.NewValidationError("to", "must be after from")
	}

	stats, err := s.reservationRepo.AggregateByRoomType(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &domain.BookingReport{From: from, To: to, ByRoomType: stats}
	for _, s := range stats {
		report.TotalBookings += s.Bookings
		report.TotalRevenueCents += s.RevenueCents
	}

	if report.PendingCount, err = s.reservationRepo.CountCreatedBetween(ctx, from, to, domain.PaymentStatusPending); err != nil {
		return nil, err
	}
	if report.FailedCount, err = s.reservationRepo.CountCreatedBetween(ctx, from, to, domain.PaymentStatusFailed); err != nil {
		return nil, err
	}

	return report, nil
}

func (s *adminService) ListNotifications(ctx context.Context, page, pageSize int32) ([]domain.Notification, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.noteRepo.List(ctx, page, pageSize)
}

func (s *adminService) MarkNotificationRead(ctx context.Context, id int32) error {
	return s.noteRepo.MarkAsRead(ctx, id)
}
