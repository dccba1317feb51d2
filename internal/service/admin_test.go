package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"suncrest-hotel-backend/internal/domain"
	"suncrest-hotel-backend/internal/repository"
)

func TestRoomTypeManagement(t *testing.T) {
	ctx := context.Background()

	t.Run("create defaults status to active", func(t *testing.T) {
		roomRepo := new(mockRoomTypeRepo)
		svc := NewAdminService(roomRepo, new(mockReservationRepo), new(mockNotificationRepo))

		roomRepo.On("Create", ctx, mock.MatchedBy(func(rt *domain.RoomType) bool {
			return rt.Status == domain.RoomTypeStatusActive
		})).Return(nil)

		rt := &domain.RoomType{Key: "suite", Name: "Suite", TotalUnits: 4, NightlyRateCents: 9000}
		require.NoError(t, svc.CreateRoomType(ctx, rt))
		roomRepo.AssertExpectations(t)
	})

	t.Run("create validation", func(t *testing.T) {
		svc := NewAdminService(new(mockRoomTypeRepo), new(mockReservationRepo), new(mockNotificationRepo))

		tests := []struct {
			name string
			rt   domain.RoomType
		}{
			{"missing key", domain.RoomType{Name: "Suite", TotalUnits: 4, NightlyRateCents: 9000}},
			{"missing name", domain.RoomType{Key: "suite", TotalUnits: 4, NightlyRateCents: 9000}},
			{"negative units", domain.RoomType{Key: "suite", Name: "Suite", TotalUnits: -1, NightlyRateCents: 9000}},
			{"zero rate", domain.RoomType{Key: "suite", Name: "Suite", TotalUnits: 4}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rt := tt.rt
				assert.True(t, domain.IsValidation(svc.CreateRoomType(ctx, &rt)))
			})
		}
	})

	t.Run("deactivation is a status flip, never a delete", func(t *testing.T) {
		roomRepo := new(mockRoomTypeRepo)
		svc := NewAdminService(roomRepo, new(mockReservationRepo), new(mockNotificationRepo))

		roomRepo.On("SetStatus", ctx, int32(1), domain.RoomTypeStatusInactive).Return(nil)
		require.NoError(t, svc.SetRoomTypeStatus(ctx, 1, domain.RoomTypeStatusInactive))

		err := svc.SetRoomTypeStatus(ctx, 1, domain.RoomTypeStatus("DELETED"))
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("update requires an existing row", func(t *testing.T) {
		roomRepo := new(mockRoomTypeRepo)
		svc := NewAdminService(roomRepo, new(mockReservationRepo), new(mockNotificationRepo))

		roomRepo.On("GetByID", ctx, int32(9)).Return(nil, domain.ErrRoomTypeNotFound)

		rt := &domain.RoomType{ID: 9, Key: "suite", Name: "Suite", TotalUnits: 4, NightlyRateCents: 9000}
		assert.ErrorIs(t, svc.UpdateRoomType(ctx, rt), domain.ErrRoomTypeNotFound)
		roomRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestListReservationsClampsPaging(t *testing.T) {
	ctx := context.Background()
	resRepo := new(mockReservationRepo)
	svc := NewAdminService(new(mockRoomTypeRepo), resRepo, new(mockNotificationRepo))

	filter := repository.ReservationFilter{RoomTypeID: 1, Status: domain.PaymentStatusSuccess}
	resRepo.On("List", ctx, filter, int32(1), int32(20)).Return([]domain.Reservation{}, int32(0), nil)

	_, _, err := svc.ListReservations(ctx, 1, domain.PaymentStatusSuccess, 0, 500)
	require.NoError(t, err)
	resRepo.AssertExpectations(t)
}

func TestGetBookingReport(t *testing.T) {
	ctx := context.Background()
	from := parseTime(t, "2024-06-01T00:00:00Z")
	to := parseTime(t, "2024-06-02T00:00:00Z")

	t.Run("aggregates totals across room types", func(t *testing.T) {
		resRepo := new(mockReservationRepo)
		svc := NewAdminService(new(mockRoomTypeRepo), resRepo, new(mockNotificationRepo))

		resRepo.On("AggregateByRoomType", ctx, from, to).Return([]domain.RoomTypeStats{
			{RoomTypeID: 1, RoomTypeKey: "deluxe", Bookings: 3, Units: 4, RevenueCents: 20000},
			{RoomTypeID: 2, RoomTypeKey: "suite", Bookings: 1, Units: 1, RevenueCents: 9000},
		}, nil)
		resRepo.On("CountCreatedBetween", ctx, from, to, domain.PaymentStatusPending).Return(int32(2), nil)
		resRepo.On("CountCreatedBetween", ctx, from, to, domain.PaymentStatusFailed).Return(int32(1), nil)

		report, err := svc.GetBookingReport(ctx, from, to)
		require.NoError(t, err)

		assert.Equal(t, int32(4), report.TotalBookings)
		assert.Equal(t, int64(29000), report.TotalRevenueCents)
		assert.Equal(t, int32(2), report.PendingCount)
		assert.Equal(t, int32(1), report.FailedCount)
		assert.Len(t, report.ByRoomType, 2)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		svc := NewAdminService(new(mockRoomTypeRepo), new(mockReservationRepo), new(mockNotificationRepo))

		_, err := svc.GetBookingReport(ctx, to, from)
		assert.True(t, domain.IsValidation(err))
	})
}
