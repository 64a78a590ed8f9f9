package models

import "time"

// Service is a government/CSC service listing shown on the public site.
// Optional columns are nullable in the database and stay pointers here so
// the JSON output mirrors the stored row.
type Service struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         *string   `json:"description"`
	DetailedDescription *string   `json:"detailed_description"`
	Icon                *string   `json:"icon"`
	Category            *string   `json:"category"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ServiceUpdate carries a partial update. A nil field means "leave the
// stored value unchanged"; there is intentionally no way to null out a
// populated column through the API.
type ServiceUpdate struct {
	Name                *string
	Description         *string
	DetailedDescription *string
	Icon                *string
	Category            *string
	IsActive            *bool
}
