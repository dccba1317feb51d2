package service

import (
	"context"
	"fmt"
	"time"

	"suncrest-hotel-backend/internal/domain"
	"suncrest-hotel-backend/internal/repository"
	"suncrest-hotel-backend/internal/utils"
)

type availabilityService struct {
	roomTypeRepo    repository.RoomTypeRepository
	reservationRepo repository.ReservationRepository
	holdWindow      time.Duration
}

func NewAvailabilityService(
	roomTypeRepo repository.RoomTypeRepository,
	reservationRepo repository.ReservationRepository,
	holdWindow time.Duration,
) AvailabilityService {
	return &availabilityService{
		roomTypeRepo:    roomTypeRepo,
		reservationRepo: reservationRepo,
		holdWindow:      holdWindow,
	}
}

func (s *availabilityService) ComputeAvailability(ctx context.Context, roomTypeKey string, checkIn, checkOut time.Time) (*domain.AvailabilityQuote, error) {
	if roomTypeKey == "" {
		return nil, domain.NewValidationError("room_type_key", "is required")
	}
	if !checkOut.After(checkIn) {
		return nil, domain.NewValidationError("check_out", "must be after check_in")
	}

	quote := &domain.AvailabilityQuote{
		RoomTypeKey: roomTypeKey,
		Nights:      utils.Nights(checkIn, checkOut),
	}

	rt, err := s.roomTypeRepo.GetByKey(ctx, roomTypeKey)
	if err == domain.ErrRoomTypeNotFound {
		quote.Reason = fmt.Sprintf("room type %q does not exist", roomTypeKey)
		return quote, nil
	}
	if err != nil {
		return nil, err
	}

	quote.RoomTypeID = rt.ID
	quote.TotalUnits = rt.TotalUnits
	quote.NightlyRateCents = rt.NightlyRateCents

	if rt.Status != domain.RoomTypeStatusActive {
		quote.Reason = fmt.Sprintf("room type %q is not open for booking", roomTypeKey)
		return quote, nil
	}

	// Pending reservations hold capacity only while created_on is strictly
	// after the cutoff; a row created exactly at now-holdWindow is expired.
	// The read alone enforces this, so abandoned holds release themselves.
	cutoff := time.Now().Add(-s.holdWindow)
	held, err := s.reservationRepo.SumHeldUnits(ctx, rt.ID, checkIn, checkOut, cutoff)
	if err != nil {
		return nil, err
	}

	quote.AvailableUnits = rt.TotalUnits - held
	return quote, nil
}
