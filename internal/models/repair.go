package models

import "time"

// RepairService is a mobile repair offering. Price range and estimated
// time are free-text as entered by the admin ("₹500 - ₹2000", "2-3 hours").
type RepairService struct {
	ID                 string    `json:"id"`
	ServiceName        string    `json:"service_name"`
	Description        *string   `json:"description"`
	PriceRange         *string   `json:"price_range"`
	EstimatedTime      *string   `json:"estimated_time"`
	BrandCompatibility *string   `json:"brand_compatibility"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// RepairServiceUpdate carries a partial update; nil fields are left unchanged.
type RepairServiceUpdate struct {
	ServiceName        *string
	Description        *string
	PriceRange         *string
	EstimatedTime      *string
	BrandCompatibility *string
	IsActive           *bool
}
