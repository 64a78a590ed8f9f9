package dto

import "github.com/shopspring/decimal"

// Create payloads. Required fields are plain values; everything optional is
// a pointer so absent keys survive decoding as nil.

type CreateServiceRequest struct {
	Name                string  `json:"name"`
	Description         *string `json:"description"`
	DetailedDescription *string `json:"detailed_description"`
	Icon                *string `json:"icon"`
	Category            *string `json:"category"`
}

type CreateAccessoryRequest struct {
	Name        string           `json:"name"`
	Brand       *string          `json:"brand"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url"`
	Category    *string          `json:"category"`
	StockStatus *string          `json:"stock_status"`
}

type CreateRepairRequest struct {
	ServiceName        string  `json:"service_name"`
	Description        *string `json:"description"`
	PriceRange         *string `json:"price_range"`
	EstimatedTime      *string `json:"estimated_time"`
	BrandCompatibility *string `json:"brand_compatibility"`
}

// Update payloads. Every field except id is a pointer: nil means "leave the
// stored value alone", so a partial body only touches what it names.

type UpdateServiceRequest struct {
	ID                  string  `json:"id"`
	Name                *string `json:"name"`
	Description         *string `json:"description"`
	DetailedDescription *string `json:"detailed_description"`
	Icon                *string `json:"icon"`
	Category            *string `json:"category"`
	IsActive            *bool   `json:"is_active"`
}

type UpdateAccessoryRequest struct {
	ID          string           `json:"id"`
	Name        *string          `json:"name"`
	Brand       *string          `json:"brand"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url"`
	Category    *string          `json:"category"`
	StockStatus *string          `json:"stock_status"`
	IsActive    *bool            `json:"is_active"`
}

type UpdateRepairRequest struct {
	ID                 string  `json:"id"`
	ServiceName        *string `json:"service_name"`
	Description        *string `json:"description"`
	PriceRange         *string `json:"price_range"`
	EstimatedTime      *string `json:"estimated_time"`
	BrandCompatibility *string `json:"brand_compatibility"`
	IsActive           *bool   `json:"is_active"`
}
