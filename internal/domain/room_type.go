package domain

import "time"

type RoomTypeStatus string

const (
	RoomTypeStatusActive   RoomTypeStatus = "ACTIVE"
	RoomTypeStatusInactive RoomTypeStatus = "INACTIVE"
)

// RoomType is the inventory unit: a category of bookable rooms sharing a
// nightly rate and a total unit count. Deactivation is a status flag, never a
// row delete, so historical reservations keep a valid reference.
type RoomType struct {
	ID               int32          `json:"id"`
	Key              string         `json:"key"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	TotalUnits       int32          `json:"total_units"`
	NightlyRateCents int64          `json:"nightly_rate_cents"`
	MaxGuests        int32          `json:"max_guests"`
	Status           RoomTypeStatus `json:"status"`
	CreatedOn        time.Time      `json:"created_on"`
	UpdatedOn        time.Time      `json:"updated_on"`
}
