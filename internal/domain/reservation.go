package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusSuccess  PaymentStatus = "SUCCESS"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// ValidPaymentStatus reports whether s is one of the four reservation states.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSuccess, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

type Reservation struct {
	ID         int32     `json:"id"`
	Reference  string    `json:"reference"` // externally shareable, used by the gateway and guest lookups
	RoomTypeID int32     `json:"room_type_id"`
	RoomType   *RoomType `json:"room_type,omitempty"` // populated when fetching details

	Units    int32     `json:"units"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
	Nights   int32     `json:"nights"`

	// Price snapshot fields, captured from the room type at creation time.
	// All later reads use these snapshots, not live room-type rates.
	NightlyRateCents int64 `json:"nightly_rate_cents"`
	TotalCents       int64 `json:"total_cents"`

	// Guest snapshot, copied at creation so later profile edits never alter
	// historical bookings.
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	GuestPhone string `json:"guest_phone"`

	Status    PaymentStatus `json:"status"`
	OrderID   *string       `json:"order_id,omitempty"`
	PaymentID *string       `json:"payment_id,omitempty"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}
