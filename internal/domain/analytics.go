package domain

import "time"

// RoomTypeStats aggregates confirmed bookings for one room type over a
// reporting period.
type RoomTypeStats struct {
	RoomTypeID   int32  `json:"room_type_id"`
	RoomTypeKey  string `json:"room_type_key"`
	RoomTypeName string `json:"room_type_name"`
	Bookings     int32  `json:"bookings"`
	Units        int32  `json:"units"`
	RevenueCents int64  `json:"revenue_cents"`
}

// BookingReport is the admin analytics view for a date range.
type BookingReport struct {
	From              time.Time       `json:"from"`
	To                time.Time       `json:"to"`
	TotalBookings     int32           `json:"total_bookings"`
	TotalRevenueCents int64           `json:"total_revenue_cents"`
	PendingCount      int32           `json:"pending_count"`
	FailedCount       int32           `json:"failed_count"`
	ByRoomType        []RoomTypeStats `json:"by_room_type"`
}
