package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock status values accepted for accessories.
const (
	StockStatusInStock    = "in_stock"
	StockStatusLowStock   = "low_stock"
	StockStatusOutOfStock = "out_of_stock"
)

// Accessory is a mobile accessory product. Price is a fixed-point decimal
// end to end; it never passes through a float.
type Accessory struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       *string         `json:"brand"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"image_url"`
	Category    *string         `json:"category"`
	StockStatus string          `json:"stock_status"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// AccessoryUpdate carries a partial update; nil fields are left unchanged.
type AccessoryUpdate struct {
	Name        *string
	Brand       *string
	Description *string
	Price       *decimal.Decimal
	ImageURL    *string
	Category    *string
	StockStatus *string
	IsActive    *bool
}
