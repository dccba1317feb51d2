package service

import (
	"context"
	"sync"
	"time"

	"suncrest-hotel-backend/internal/domain"
	"suncrest-hotel-backend/internal/repository"
)

// memRoomRepo and memResStore back concurrency and hold-window tests with real
// locking semantics instead of mock expectations.
type memRoomRepo struct {
	mu    sync.RWMutex
	byKey map[string]*domain.RoomType
}

func newMemRoomRepo(rts ...*domain.RoomType) *memRoomRepo {
	r := &memRoomRepo{byKey: make(map[string]*domain.RoomType)}
	for _, rt := range rts {
		r.byKey[rt.Key] = rt
	}
	return r
}

func (r *memRoomRepo) Create(ctx context.Context, rt *domain.RoomType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byKey[rt.Key] = rt
	return nil
}

func (r *memRoomRepo) GetByID(ctx context.Context, id int32) (*domain.RoomType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rt := range r.byKey {
		if rt.ID == id {
			return rt, nil
		}
	}
	return nil, domain.ErrRoomTypeNotFound
}

func (r *memRoomRepo) GetByKey(ctx context.Context, key string) (*domain.RoomType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if rt, ok := r.byKey[key]; ok {
		return rt, nil
	}
	return nil, domain.ErrRoomTypeNotFound
}

func (r *memRoomRepo) Update(ctx context.Context, rt *domain.RoomType) error { return nil }

func (r *memRoomRepo) SetStatus(ctx context.Context, id int32, status domain.RoomTypeStatus) error {
	return nil
}

func (r *memRoomRepo) List(ctx context.Context, includeInactive bool) ([]domain.RoomType, error) {
	return nil, nil
}

type memResStore struct {
	mu           sync.Mutex
	nextID       int32
	reservations []*domain.Reservation
}

func newMemResStore(seed ...*domain.Reservation) *memResStore {
	s := &memResStore{nextID: 1000}
	s.reservations = append(s.reservations, seed...)
	return s
}

// holdsCapacity mirrors the read-path rule: SUCCESS always holds, PENDING
// holds only while created strictly after the cutoff.
func holdsCapacity(r *domain.Reservation, cutoff time.Time) bool {
	switch r.Status {
	case domain.PaymentStatusSuccess:
		return true
	case domain.PaymentStatusPending:
		return r.CreatedOn.After(cutoff)
	default:
		return false
	}
}

func (s *memResStore) sumHeldLocked(roomTypeID int32, checkIn, checkOut, cutoff time.Time) int32 {
	var held int32
	for _, r := range s.reservations {
		if r.RoomTypeID != roomTypeID {
			continue
		}
		// half-open overlap: [a, b) meets [c, d) iff a < d && b > c
		if !(r.CheckIn.Before(checkOut) && r.CheckOut.After(checkIn)) {
			continue
		}
		if holdsCapacity(r, cutoff) {
			held += r.Units
		}
	}
	return held
}

func (s *memResStore) SumHeldUnits(ctx context.Context, roomTypeID int32, checkIn, checkOut time.Time, holdCutoff time.Time) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sumHeldLocked(roomTypeID, checkIn, checkOut, holdCutoff), nil
}

func (s *memResStore) CreateIfAvailable(ctx context.Context, res *domain.Reservation, capacity int32, holdCutoff time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	held := s.sumHeldLocked(res.RoomTypeID, res.CheckIn, res.CheckOut, holdCutoff)
	if held+res.Units > capacity {
		return domain.ErrCapacityUnavailable
	}

	s.nextID++
	res.ID = s.nextID
	if res.CreatedOn.IsZero() {
		res.CreatedOn = time.Now()
	}
	stored := *res
	s.reservations = append(s.reservations, &stored)
	return nil
}

// getters return copies so callers observe a snapshot, the way a row scan
// would, rather than sharing the stored struct
func (s *memResStore) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reservations {
		if r.ID == id {
			c := *r
			return &c, nil
		}
	}
	return nil, domain.ErrReservationNotFound
}

func (s *memResStore) GetByReference(ctx context.Context, reference string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reservations {
		if r.Reference == reference {
			c := *r
			return &c, nil
		}
	}
	return nil, domain.ErrReservationNotFound
}

func (s *memResStore) GetByOrderID(ctx context.Context, orderID string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reservations {
		if r.OrderID != nil && *r.OrderID == orderID {
			c := *r
			return &c, nil
		}
	}
	return nil, domain.ErrReservationNotFound
}

func (s *memResStore) SetOrderID(ctx context.Context, id int32, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reservations {
		if r.ID == id {
			r.OrderID = &orderID
			return nil
		}
	}
	return domain.ErrReservationNotFound
}

func (s *memResStore) TransitionStatus(ctx context.Context, id int32, from, to domain.PaymentStatus, paymentID *string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reservations {
		if r.ID == id {
			if r.Status != from {
				return false, nil
			}
			r.Status = to
			if paymentID != nil {
				r.PaymentID = paymentID
			}
			return true, nil
		}
	}
	return false, domain.ErrReservationNotFound
}

func (s *memResStore) UpdateStatus(ctx context.Context, id int32, status domain.PaymentStatus, paymentID *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reservations {
		if r.ID == id {
			r.Status = status
			if paymentID != nil {
				r.PaymentID = paymentID
			}
			return nil
		}
	}
	return domain.ErrReservationNotFound
}

func (s *memResStore) List(ctx context.Context, filter repository.ReservationFilter, page, pageSize int32) ([]domain.Reservation, int32, error) {
	return nil, 0, nil
}

func (s *memResStore) CountCreatedBetween(ctx context.Context, from, to time.Time, status domain.PaymentStatus) (int32, error) {
	return 0, nil
}

func (s *memResStore) AggregateByRoomType(ctx context.Context, from, to time.Time) ([]domain.RoomTypeStats, error) {
	return nil, nil
}

func (s *memResStore) countByStatus(status domain.PaymentStatus) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.reservations {
		if r.Status == status {
			n++
		}
	}
	return n
}
