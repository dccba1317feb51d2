package domain

import (
	"errors"
	"fmt"
)

// Business and security errors are typed so the HTTP layer can map them to
// status codes without inspecting message text.
var (
	ErrCapacityUnavailable = errors.New("requested capacity is not available")
	ErrInvalidState        = errors.New("reservation is not in a valid state for this operation")
	ErrSignatureInvalid    = errors.New("payment signature verification failed")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable, retry later")
	ErrRoomTypeNotFound    = errors.New("room type not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrUnauthorized        = errors.New("unauthorized")
)

// ValidationError rejects malformed input before it reaches the state machine.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
