package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"suncrest-hotel-backend/internal/domain"
	"suncrest-hotel-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps typed errors to HTTP statuses. Handlers never inspect
// message text.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "VALIDATION"})
	case errors.Is(err, domain.ErrCapacityUnavailable):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Code: "CAPACITY_UNAVAILABLE"})
	case errors.Is(err, domain.ErrInvalidState):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Code: "INVALID_STATE"})
	case errors.Is(err, domain.ErrSignatureInvalid):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "SIGNATURE_INVALID"})
	case errors.Is(err, domain.ErrGatewayUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error(), Code: "GATEWAY_UNAVAILABLE"})
	case errors.Is(err, domain.ErrRoomTypeNotFound), errors.Is(err, domain.ErrReservationNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Code: "NOT_FOUND"})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error(), Code: "UNAUTHORIZED"})
	default:
		logger.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error", Code: "INTERNAL"})
	}
}
