package utils

import (
	"time"
)

const nightDuration = 24 * time.Hour

// Nights returns the number of chargeable nights for a half-open stay
// interval [checkIn, checkOut). Partial days round up, and every stay is
// charged at least one night: a same-day booking is a 1-night charge.
func Nights(checkIn, checkOut time.Time) int32 {
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 1
	}
	nights := int64(d / nightDuration)
	if d%nightDuration > 0 {
		nights++
	}
	if nights < 1 {
		nights = 1
	}
	return int32(nights)
}

// StayTotalCents computes rate × units × nights for the interval.
func StayTotalCents(nightlyRateCents int64, units int32, checkIn, checkOut time.Time) int64 {
	return nightlyRateCents * int64(units) * int64(Nights(checkIn, checkOut))
}
