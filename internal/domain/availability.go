package domain

// AvailabilityQuote is the result of an availability computation for one room
// type over a half-open interval. AvailableUnits may be negative internally
// when an admin override oversells; DisplayUnits clamps it for callers.
type AvailabilityQuote struct {
	RoomTypeKey      string `json:"room_type_key"`
	RoomTypeID       int32  `json:"-"`
	TotalUnits       int32  `json:"-"`
	AvailableUnits   int32  `json:"available_units"`
	Nights           int32  `json:"nights"`
	NightlyRateCents int64  `json:"nightly_rate_cents"`
	Reason           string `json:"reason,omitempty"` // set when the room type cannot be booked at all
}

// IsAvailable reports whether the requested number of units fits.
func (q *AvailabilityQuote) IsAvailable(units int32) bool {
	return q.Reason == "" && units >= 1 && q.AvailableUnits >= units
}

// TotalCents is the bookable price for the requested units over the quoted
// nights.
func (q *AvailabilityQuote) TotalCents(units int32) int64 {
	return q.NightlyRateCents * int64(units) * int64(q.Nights)
}

// DisplayUnits never reports a negative count.
func (q *AvailabilityQuote) DisplayUnits() int32 {
	if q.AvailableUnits < 0 {
		return 0
	}
	return q.AvailableUnits
}
