package models

import "time"

// AdminUser is a row in admin_users. There is a single privilege level:
// any admin that can log in can manage the whole catalog.
type AdminUser struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
