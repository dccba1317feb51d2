package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"suncrest-hotel-backend/internal/domain"
	"suncrest-hotel-backend/internal/gateway"
	"suncrest-hotel-backend/internal/repository"
)

type mockRoomTypeRepo struct {
	mock.Mock
}

func (m *mockRoomTypeRepo) Create(ctx context.Context, rt *domain.RoomType) error {
	return m.Called(ctx, rt).Error(0)
}

func (m *mockRoomTypeRepo) GetByID(ctx context.Context, id int32) (*domain.RoomType, error) {
	args := m.Called(ctx, id)
	if rt, ok := args.Get(0).(*domain.RoomType); ok {
		return rt, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomTypeRepo) GetByKey(ctx context.Context, key string) (*domain.RoomType, error) {
	args := m.Called(ctx, key)
	if rt, ok := args.Get(0).(*domain.RoomType); ok {
		return rt, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomTypeRepo) Update(ctx context.Context, rt *domain.RoomType) error {
	return m.Called(ctx, rt).Error(0)
}

func (m *mockRoomTypeRepo) SetStatus(ctx context.Context, id int32, status domain.RoomTypeStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockRoomTypeRepo) List(ctx context.Context, includeInactive bool) ([]domain.RoomType, error) {
	args := m.Called(ctx, includeInactive)
	if rts, ok := args.Get(0).([]domain.RoomType); ok {
		return rts, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockReservationRepo struct {
	mock.Mock
}

func (m *mockReservationRepo) SumHeldUnits(ctx context.Context, roomTypeID int32, checkIn, checkOut time.Time, holdCutoff time.Time) (int32, error) {
	args := m.Called(ctx, roomTypeID, checkIn, checkOut, holdCutoff)
	return args.Get(0).(int32), args.Error(1)
}

func (m *mockReservationRepo) CreateIfAvailable(ctx context.Context, res *domain.Reservation, capacity int32, holdCutoff time.Time) error {
	return m.Called(ctx, res, capacity, holdCutoff).Error(0)
}

func (m *mockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if res, ok := args.Get(0).(*domain.Reservation); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReservationRepo) GetByReference(ctx context.Context, reference string) (*domain.Reservation, error) {
	args := m.Called(ctx, reference)
	if res, ok := args.Get(0).(*domain.Reservation); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReservationRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.Reservation, error) {
	args := m.Called(ctx, orderID)
	if res, ok := args.Get(0).(*domain.Reservation); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReservationRepo) SetOrderID(ctx context.Context, id int32, orderID string) error {
	return m.Called(ctx, id, orderID).Error(0)
}

func (m *mockReservationRepo) TransitionStatus(ctx context.Context, id int32, from, to domain.PaymentStatus, paymentID *string) (bool, error) {
	args := m.Called(ctx, id, from, to, paymentID)
	return args.Bool(0), args.Error(1)
}

func (m *mockReservationRepo) UpdateStatus(ctx context.Context, id int32, status domain.PaymentStatus, paymentID *string) error {
	return m.Called(ctx, id, status, paymentID).Error(0)
}

func (m *mockReservationRepo) List(ctx context.Context, filter repository.ReservationFilter, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if list, ok := args.Get(0).([]domain.Reservation); ok {
		return list, args.Get(1).(int32), args.Error(2)
	}
	return nil, args.Get(1).(int32), args.Error(2)
}

func (m *mockReservationRepo) CountCreatedBetween(ctx context.Context, from, to time.Time, status domain.PaymentStatus) (int32, error) {
	args := m.Called(ctx, from, to, status)
	return args.Get(0).(int32), args.Error(1)
}

func (m *mockReservationRepo) AggregateByRoomType(ctx context.Context, from, to time.Time) ([]domain.RoomTypeStats, error) {
	args := m.Called(ctx, from, to)
	if stats, ok := args.Get(0).([]domain.RoomTypeStats); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockNotificationRepo struct {
	mock.Mock
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockNotificationRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, page, pageSize)
	if list, ok := args.Get(0).([]domain.Notification); ok {
		return list, args.Get(1).(int32), args.Error(2)
	}
	return nil, args.Get(1).(int32), args.Error(2)
}

func (m *mockNotificationRepo) MarkAsRead(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

type mockAdminUserRepo struct {
	mock.Mock
}

func (m *mockAdminUserRepo) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*domain.AdminUser); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAdminUserRepo) Create(ctx context.Context, u *domain.AdminUser) error {
	return m.Called(ctx, u).Error(0)
}

type mockGatewayClient struct {
	mock.Mock
}

func (m *mockGatewayClient) CreateOrder(ctx context.Context, amountCents int64, currency, receipt string) (*gateway.Order, error) {
	args := m.Called(ctx, amountCents, currency, receipt)
	if order, ok := args.Get(0).(*gateway.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendBookingConfirmation(ctx context.Context, res *domain.Reservation, roomTypeName string) error {
	return m.Called(ctx, res, roomTypeName).Error(0)
}

func (m *mockEmailService) SendDailySummary(ctx context.Context, to string, report *domain.BookingReport) error {
	return m.Called(ctx, to, report).Error(0)
}
