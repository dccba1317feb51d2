package domain

import "time"

// Notification is an in-app record for the admin panel, written when a
// booking is confirmed.
type Notification struct {
	ID         int32             `json:"id"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	Attributes map[string]string `json:"attributes,omitempty"`
	IsRead     bool              `json:"is_read"`
	CreatedOn  time.Time         `json:"created_on"`
}
