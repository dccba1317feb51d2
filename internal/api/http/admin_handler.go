package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"suncrest-hotel-backend/internal/domain"
	"suncrest-hotel-backend/internal/service"
)

// AdminHandler serves the back-office CRUD and reporting surface. Every route
// sits behind the admin-role middleware.
type AdminHandler struct {
	adminSvc       service.AdminService
	reservationSvc service.ReservationService
}

func NewAdminHandler(adminSvc service.AdminService, reservationSvc service.ReservationService) *AdminHandler {
	return &AdminHandler{
		adminSvc:       adminSvc,
		reservationSvc: reservationSvc,
	}
}

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, domain.NewValidationError("id", "must be an integer")
	}
	return int32(id), nil
}

func queryInt32(r *http.Request, name string, fallback int32) int32 {
	if v := r.URL.Query().Get(name); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			return int32(n)
		}
	}
	return fallback
}

func (h *AdminHandler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	var req roomTypeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	rt := &domain.RoomType{
		Key:              req.Key,
		Name:             req.Name,
		Description:      req.Description,
		TotalUnits:       req.TotalUnits,
		NightlyRateCents: req.NightlyRateCents,
		MaxGuests:        req.MaxGuests,
		Status:           domain.RoomTypeStatusActive,
	}
	if err := h.adminSvc.CreateRoomType(r.Context(), rt); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rt)
}

func (h *AdminHandler) UpdateRoomType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req roomTypeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	rt := &domain.RoomType{
		ID:               id,
		Key:              req.Key,
		Name:             req.Name,
		Description:      req.Description,
		TotalUnits:       req.TotalUnits,
		NightlyRateCents: req.NightlyRateCents,
		MaxGuests:        req.MaxGuests,
		Status:           domain.RoomTypeStatusActive,
	}
	if err := h.adminSvc.UpdateRoomType(r.Context(), rt); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

// SetRoomTypeStatus deactivates or reactivates a room type; soft flag only.
func (h *AdminHandler) SetRoomTypeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req roomTypeStatusRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.adminSvc.SetRoomTypeStatus(r.Context(), id, domain.RoomTypeStatus(req.Status)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

func (h *AdminHandler) ListRoomTypes(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("include_inactive") == "true"
	types, err := h.adminSvc.ListRoomTypes(r.Context(), includeInactive)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"room_types": types})
}

func (h *AdminHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	roomTypeID := queryInt32(r, "room_type_id", 0)
	status := domain.PaymentStatus(r.URL.Query().Get("status"))
	if status != "" && !domain.ValidPaymentStatus(status) {
		writeError(w, domain.NewValidationError("status", "unknown payment status"))
		return
	}
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)

	reservations, total, err := h.adminSvc.ListReservations(r.Context(), roomTypeID, status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reservations": reservations,
		"total":        total,
		"page":         page,
		"page_size":    pageSize,
	})
}

// OverrideReservationStatus is the manual reconciliation escape hatch.
func (h *AdminHandler) OverrideReservationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req overrideStatusRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := h.reservationSvc.AdminOverride(r.Context(), id, domain.PaymentStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GetBookingReport handles GET /api/admin/reports/bookings?from=...&to=...
func (h *AdminHandler) GetBookingReport(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse(time.RFC3339, r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, domain.NewValidationError("from", "must be an RFC3339 timestamp"))
		return
	}
	to, err := time.Parse(time.RFC3339, r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, domain.NewValidationError("to", "must be an RFC3339 timestamp"))
		return
	}

	report, err := h.adminSvc.GetBookingReport(r.Context(), from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *AdminHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)

	notifications, total, err := h.adminSvc.ListNotifications(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": notifications,
		"total":         total,
	})
}

func (h *AdminHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.adminSvc.MarkNotificationRead(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
