package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int32
	}{
		{"one night, late checkin early checkout", "2024-01-01T12:00:00Z", "2024-01-02T11:00:00Z", 1},
		{"same day minimum charge", "2024-01-01T12:00:00Z", "2024-01-01T18:00:00Z", 1},
		{"exactly 24 hours", "2024-01-01T12:00:00Z", "2024-01-02T12:00:00Z", 1},
		{"just over 24 hours rounds up", "2024-01-01T12:00:00Z", "2024-01-02T12:00:01Z", 2},
		{"two full days", "2024-01-01T12:00:00Z", "2024-01-03T12:00:00Z", 2},
		{"week stay", "2024-01-01T14:00:00Z", "2024-01-08T11:00:00Z", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(ts(tt.checkIn), ts(tt.checkOut)))
		})
	}
}

func TestStayTotalCents(t *testing.T) {
	// 2 units for a 1-night stay at 2500 per night
	total := StayTotalCents(2500, 2, ts("2024-01-01T12:00:00Z"), ts("2024-01-02T11:00:00Z"))
	assert.Equal(t, int64(5000), total)

	// same-day interval still charges one night
	total = StayTotalCents(2500, 1, ts("2024-01-01T12:00:00Z"), ts("2024-01-01T18:00:00Z"))
	assert.Equal(t, int64(2500), total)

	// 3 nights, 2 units
	total = StayTotalCents(1000, 2, ts("2024-01-01T12:00:00Z"), ts("2024-01-04T11:00:00Z"))
	assert.Equal(t, int64(6000), total)
}
