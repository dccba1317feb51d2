package http

import (
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"suncrest-hotel-backend/internal/domain"
	"suncrest-hotel-backend/internal/service"
)

// BookingHandler serves the guest-facing booking flow: availability quotes,
// reservation creation, payment order opening, verification and lookup.
type BookingHandler struct {
	availability service.AvailabilityService
	reservations service.ReservationService
}

func NewBookingHandler(availability service.AvailabilityService, reservations service.ReservationService) *BookingHandler {
	return &BookingHandler{
		availability: availability,
		reservations: reservations,
	}
}

type availabilityResponse struct {
	RoomTypeKey      string `json:"room_type_key"`
	AvailableUnits   int32  `json:"available_units"`
	Nights           int32  `json:"nights"`
	NightlyRateCents int64  `json:"nightly_rate_cents"`
	Reason           string `json:"reason,omitempty"`
}

// GetAvailability handles GET /api/availability?room_type=deluxe&check_in=...&check_out=...
func (h *BookingHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	roomTypeKey := r.URL.Query().Get("room_type")

	checkIn, err := time.Parse(time.RFC3339, r.URL.Query().Get("check_in"))
	if err != nil {
		writeError(w, domain.NewValidationError("check_in", "must be an RFC3339 timestamp"))
		return
	}
	checkOut, err := time.Parse(time.RFC3339, r.URL.Query().Get("check_out"))
	if err != nil {
		writeError(w, domain.NewValidationError("check_out", "must be an RFC3339 timestamp"))
		return
	}

	quote, err := h.availability.ComputeAvailability(r.Context(), roomTypeKey, checkIn, checkOut)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, availabilityResponse{
		RoomTypeKey:      quote.RoomTypeKey,
		AvailableUnits:   quote.DisplayUnits(),
		Nights:           quote.Nights,
		NightlyRateCents: quote.NightlyRateCents,
		Reason:           quote.Reason,
	})
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := h.reservations.Create(r.Context(), service.CreateReservationInput{
		RoomTypeKey: req.RoomTypeKey,
		Units:       req.Units,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		GuestName:   req.GuestName,
		GuestEmail:  req.GuestEmail,
		GuestPhone:  req.GuestPhone,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// GetBooking handles GET /api/bookings/{reference}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	res, err := h.reservations.GetByReference(r.Context(), reference)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// OpenPaymentOrder handles POST /api/bookings/{reference}/order
func (h *BookingHandler) OpenPaymentOrder(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	order, err := h.reservations.OpenPaymentOrder(r.Context(), reference)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// VerifyPayment handles POST /api/payments/verify, the synchronous
// confirmation path after the guest completes checkout.
func (h *BookingHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req verifyPaymentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := h.reservations.ConfirmPayment(r.Context(), req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// FailPayment handles POST /api/payments/fail, the gateway-reported failure
// path for the synchronous flow.
func (h *BookingHandler) FailPayment(w http.ResponseWriter, r *http.Request) {
	var req failPaymentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := h.reservations.FailPayment(r.Context(), req.OrderID, req.PaymentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleWebhook handles POST /api/webhooks/payment. The body is read raw so
// the signature covers exactly the delivered bytes.
func (h *BookingHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(w, domain.NewValidationError("body", "unreadable webhook body"))
		return
	}

	signature := r.Header.Get("X-Webhook-Signature")
	if err := h.reservations.HandleWebhook(r.Context(), body, signature); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
