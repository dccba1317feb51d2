package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"suncrest-hotel-backend/internal/domain"
	"suncrest-hotel-backend/internal/gateway"
	"suncrest-hotel-backend/internal/logger"
	"suncrest-hotel-backend/internal/repository"
)

const (
	webhookEventCaptured = "payment.captured"
	webhookEventFailed   = "payment.failed"
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	roomTypeRepo    repository.RoomTypeRepository
	noteRepo        repository.NotificationRepository
	availability    AvailabilityService
	gatewayClient   gateway.Client
	signer          *gateway.Signer
	emailSvc        EmailService
	currency        string
	holdWindow      time.Duration
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	roomTypeRepo repository.RoomTypeRepository,
	noteRepo repository.NotificationRepository,
	availability AvailabilityService,
	gatewayClient gateway.Client,
	signer *gateway.Signer,
	emailSvc EmailService,
	currency string,
	holdWindow time.Duration,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		roomTypeRepo:    roomTypeRepo,
		noteRepo:        noteRepo,
		availability:    availability,
		gatewayClient:   gatewayClient,
		signer:          signer,
		emailSvc:        emailSvc,
		currency:        currency,
		holdWindow:      holdWindow,
	}
}

func validateCreateInput(in CreateReservationInput) error {
	if in.RoomTypeKey == "" {
		return domain.NewValidationError("room_type_key", "is required")
	}
	if in.Units < 1 {
		return domain.NewValidationError("units", "must be at least 1")
	}
	if !in.CheckOut.After(in.CheckIn) {
		return domain.NewValidationError("check_out", "must be after check_in")
	}
	if in.GuestName == "" {
		return domain.NewValidationError("guest_name", "is required")
	}
	if _, err := mail.ParseAddress(in.GuestEmail); err != nil {
		return domain.NewValidationError("guest_email", "is not a valid email address")
	}
	return nil
}

// Create inserts a Pending reservation after a fresh availability recheck.
// The earlier quote shown to the guest is never trusted; the repository
// repeats the capacity check inside the same transaction as the insert, so
// racing creations for the last unit cannot both land.
func (s *reservationService) Create(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error) {
	if err := validateCreateInput(in); err != nil {
		return nil, err
	}

	quote, err := s.availability.ComputeAvailability(ctx, in.RoomTypeKey, in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if quote.Reason != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrCapacityUnavailable, quote.Reason)
	}
	if !quote.IsAvailable(in.Units) {
		return nil, fmt.Errorf("%w: %d unit(s) requested, %d free", domain.ErrCapacityUnavailable, in.Units, quote.DisplayUnits())
	}

	res := &domain.Reservation{
		Reference:        uuid.NewString(),
		RoomTypeID:       quote.RoomTypeID,
		Units:            in.Units,
		CheckIn:          in.CheckIn,
		CheckOut:         in.CheckOut,
		Nights:           quote.Nights,
		NightlyRateCents: quote.NightlyRateCents,
		// Price comes from the calculator, never from client input.
		TotalCents: quote.TotalCents(in.Units),
		GuestName:  in.GuestName,
		GuestEmail: in.GuestEmail,
		GuestPhone: in.GuestPhone,
		Status:     domain.PaymentStatusPending,
	}

	cutoff := time.Now().Add(-s.holdWindow)
	if err := s.reservationRepo.CreateIfAvailable(ctx, res, quote.TotalUnits, cutoff); err != nil {
		return nil, err
	}

	logger.Info("reservation created", "reference", res.Reference, "room_type", in.RoomTypeKey, "units", res.Units, "total_cents", res.TotalCents)
	return res, nil
}

func (s *reservationService) OpenPaymentOrder(ctx context.Context, reference string) (*gateway.Order, error) {
	res, err := s.reservationRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.PaymentStatusPending {
		return nil, fmt.Errorf("%w: reservation is %s", domain.ErrInvalidState, res.Status)
	}

	order, err := s.gatewayClient.CreateOrder(ctx, res.TotalCents, s.currency, res.Reference)
	if err != nil {
		return nil, err
	}

	if err := s.reservationRepo.SetOrderID(ctx, res.ID, order.ID); err != nil {
		return nil, err
	}

	logger.Info("payment order opened", "reference", res.Reference, "order_id", order.ID)
	return order, nil
}

// ConfirmPayment is the synchronous verification path. The webhook path
// converges on the same applyPaymentSuccess transition, so delivery order
// between the two is irrelevant.
func (s *reservationService) ConfirmPayment(ctx context.Context, orderID, paymentID, signature string) (*domain.Reservation, error) {
	if !s.signer.VerifyPaymentSignature(orderID, paymentID, signature) {
		logger.SecurityAlert("payment signature mismatch", "order_id", orderID, "payment_id", paymentID)
		return nil, domain.ErrSignatureInvalid
	}

	res, err := s.reservationRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.applyPaymentSuccess(ctx, res, paymentID)
}

// applyPaymentSuccess moves Pending → Success exactly once. The write is a
// conditional transition, so when the sync verify and the webhook race on the
// same order only one of them lands the row and sends the notification; the
// other re-reads and reports the settled result.
func (s *reservationService) applyPaymentSuccess(ctx context.Context, res *domain.Reservation, paymentID string) (*domain.Reservation, error) {
	switch res.Status {
	case domain.PaymentStatusSuccess:
		return res, nil
	case domain.PaymentStatusPending:
		// proceed
	default:
		return nil, fmt.Errorf("%w: reservation is %s", domain.ErrInvalidState, res.Status)
	}

	moved, err := s.reservationRepo.TransitionStatus(ctx, res.ID, domain.PaymentStatusPending, domain.PaymentStatusSuccess, &paymentID)
	if err != nil {
		return nil, err
	}
	if !moved {
		// lost the race: another delivery settled the row after our read
		current, err := s.reservationRepo.GetByID(ctx, res.ID)
		if err != nil {
			return nil, err
		}
		if current.Status == domain.PaymentStatusSuccess {
			return current, nil
		}
		return nil, fmt.Errorf("%w: reservation is %s", domain.ErrInvalidState, current.Status)
	}
	res.Status = domain.PaymentStatusSuccess
	res.PaymentID = &paymentID

	s.notifyConfirmed(ctx, res)
	return res, nil
}

// notifyConfirmed sends the one guest confirmation and records an admin
// notification. Failures are logged, never rolled back into the transition.
func (s *reservationService) notifyConfirmed(ctx context.Context, res *domain.Reservation) {
	roomTypeName := ""
	if rt, err := s.roomTypeRepo.GetByID(ctx, res.RoomTypeID); err == nil {
		roomTypeName = rt.Name
	}

	if err := s.emailSvc.SendBookingConfirmation(ctx, res, roomTypeName); err != nil {
		logger.Error("failed to send booking confirmation", "reference", res.Reference, "error", err)
	}

	notif := &domain.Notification{
		Title:   "Booking Confirmed",
		Message: fmt.Sprintf("%s booked %d × %s, %s to %s", res.GuestName, res.Units, roomTypeName, res.CheckIn.Format("2006-01-02"), res.CheckOut.Format("2006-01-02")),
		Attributes: map[string]string{
			"type":      "BOOKING_CONFIRMED",
			"reference": res.Reference,
		},
	}
	if err := s.noteRepo.Create(ctx, notif); err != nil {
		logger.Error("failed to record admin notification", "reference", res.Reference, "error", err)
	}
}

type webhookPayload struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// HandleWebhook processes an asynchronous gateway delivery. The raw body is
// verified against the webhook secret before any parsing.
func (s *reservationService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if !s.signer.VerifyWebhookSignature(body, signature) {
		logger.SecurityAlert("webhook signature mismatch")
		return domain.ErrSignatureInvalid
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.NewValidationError("body", "malformed webhook payload")
	}

	orderID := payload.Payload.Payment.Entity.OrderID
	paymentID := payload.Payload.Payment.Entity.ID

	switch payload.Event {
	case webhookEventCaptured:
		res, err := s.reservationRepo.GetByOrderID(ctx, orderID)
		if err != nil {
			return err
		}
		_, err = s.applyPaymentSuccess(ctx, res, paymentID)
		return err
	case webhookEventFailed:
		_, err := s.FailPayment(ctx, orderID, paymentID)
		return err
	default:
		logger.Debug("ignoring webhook event", "event", payload.Event)
		return nil
	}
}

func (s *reservationService) FailPayment(ctx context.Context, orderID, paymentID string) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch res.Status {
	case domain.PaymentStatusFailed:
		return res, nil // repeat failure delivery
	case domain.PaymentStatusPending:
		// proceed
	default:
		return nil, fmt.Errorf("%w: reservation is %s", domain.ErrInvalidState, res.Status)
	}

	var pid *string
	if paymentID != "" {
		pid = &paymentID
	}
	moved, err := s.reservationRepo.TransitionStatus(ctx, res.ID, domain.PaymentStatusPending, domain.PaymentStatusFailed, pid)
	if err != nil {
		return nil, err
	}
	if !moved {
		// the row settled since our read; a captured payment must not be
		// overwritten by a late failure delivery
		current, err := s.reservationRepo.GetByID(ctx, res.ID)
		if err != nil {
			return nil, err
		}
		if current.Status == domain.PaymentStatusFailed {
			return current, nil
		}
		return nil, fmt.Errorf("%w: reservation is %s", domain.ErrInvalidState, current.Status)
	}
	res.Status = domain.PaymentStatusFailed
	res.PaymentID = pid

	logger.Info("payment failed", "reference", res.Reference, "order_id", orderID)
	return res, nil
}

// AdminOverride sets the state directly, bypassing transition rules. Manual
// reconciliation only.
func (s *reservationService) AdminOverride(ctx context.Context, reservationID int32, status domain.PaymentStatus) (*domain.Reservation, error) {
	if !domain.ValidPaymentStatus(status) {
		return nil, domain.NewValidationError("status", "unknown payment status")
	}

	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if err := s.reservationRepo.UpdateStatus(ctx, res.ID, status, nil); err != nil {
		return nil, err
	}

	logger.Warn("admin override applied", "reservation_id", reservationID, "from", res.Status, "to", status)
	res.Status = status
	return res, nil
}

func (s *reservationService) GetByReference(ctx context.Context, reference string) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if rt, err := s.roomTypeRepo.GetByID(ctx, res.RoomTypeID); err == nil {
		res.RoomType = rt
	} else if !errors.Is(err, domain.ErrRoomTypeNotFound) {
		return nil, err
	}
	return res, nil
}
