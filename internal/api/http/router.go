package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"suncrest-hotel-backend/internal/security"
)

// NewRouter wires the public booking flow, the gateway webhook and the
// token-gated admin surface.
func NewRouter(
	booking *BookingHandler,
	admin *AdminHandler,
	auth *AuthHandler,
	tokenManager security.TokenManager,
) *mux.Router {
	r := mux.NewRouter()

	// Guest-facing booking flow
	r.HandleFunc("/api/availability", booking.GetAvailability).Methods(http.MethodGet)
	r.HandleFunc("/api/bookings", booking.CreateBooking).Methods(http.MethodPost)
	r.HandleFunc("/api/bookings/{reference}", booking.GetBooking).Methods(http.MethodGet)
	r.HandleFunc("/api/bookings/{reference}/order", booking.OpenPaymentOrder).Methods(http.MethodPost)
	r.HandleFunc("/api/payments/verify", booking.VerifyPayment).Methods(http.MethodPost)
	r.HandleFunc("/api/payments/fail", booking.FailPayment).Methods(http.MethodPost)

	// Gateway webhook (signature-verified, no session)
	r.HandleFunc("/api/webhooks/payment", booking.HandleWebhook).Methods(http.MethodPost)

	// Admin
	r.HandleFunc("/api/admin/login", auth.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/room-types", AdminOnly(tokenManager, admin.CreateRoomType)).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/room-types", AdminOnly(tokenManager, admin.ListRoomTypes)).Methods(http.MethodGet)
	r.HandleFunc("/api/admin/room-types/{id}", AdminOnly(tokenManager, admin.UpdateRoomType)).Methods(http.MethodPut)
	r.HandleFunc("/api/admin/room-types/{id}/status", AdminOnly(tokenManager, admin.SetRoomTypeStatus)).Methods(http.MethodPut)
	r.HandleFunc("/api/admin/reservations", AdminOnly(tokenManager, admin.ListReservations)).Methods(http.MethodGet)
	r.HandleFunc("/api/admin/reservations/{id}/status", AdminOnly(tokenManager, admin.OverrideReservationStatus)).Methods(http.MethodPut)
	r.HandleFunc("/api/admin/reports/bookings", AdminOnly(tokenManager, admin.GetBookingReport)).Methods(http.MethodGet)
	r.HandleFunc("/api/admin/notifications", AdminOnly(tokenManager, admin.ListNotifications)).Methods(http.MethodGet)
	r.HandleFunc("/api/admin/notifications/{id}/read", AdminOnly(tokenManager, admin.MarkNotificationRead)).Methods(http.MethodPut)

	return r
}
