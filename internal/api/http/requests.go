package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"suncrest-hotel-backend/internal/domain"
)

var validate = validator.New()

func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("body", "malformed JSON")
	}
	if err := validate.Struct(dst); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return domain.NewValidationError(verrs[0].Field(), "failed validation rule "+verrs[0].Tag())
		}
		return domain.NewValidationError("body", err.Error())
	}
	return nil
}

type createBookingRequest struct {
	RoomTypeKey string    `json:"room_type_key" validate:"required"`
	Units       int32     `json:"units" validate:"required,min=1"`
	CheckIn     time.Time `json:"check_in" validate:"required"`
	CheckOut    time.Time `json:"check_out" validate:"required"`
	GuestName   string    `json:"guest_name" validate:"required"`
	GuestEmail  string    `json:"guest_email" validate:"required,email"`
	GuestPhone  string    `json:"guest_phone"`
}

type verifyPaymentRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

type failPaymentRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type roomTypeRequest struct {
	Key              string `json:"key" validate:"required"`
	Name             string `json:"name" validate:"required"`
	Description      string `json:"description"`
	TotalUnits       int32  `json:"total_units" validate:"min=0"`
	NightlyRateCents int64  `json:"nightly_rate_cents" validate:"required,gt=0"`
	MaxGuests        int32  `json:"max_guests" validate:"min=0"`
}

type overrideStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING SUCCESS FAILED REFUNDED"`
}

type roomTypeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}
