package domain

import "time"

const RoleAdmin = "admin"

// AdminUser is a back-office account. Guests never have accounts; their
// contact info lives as a snapshot on each reservation.
type AdminUser struct {
	ID           int32     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedOn    time.Time `json:"created_on"`
}
