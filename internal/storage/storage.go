package storage

import (
	"context"
	"errors"

	"github.com/skmobile/csc-center-api/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// AdminStore holds the administrator credential rows.
type AdminStore interface {
	FindAdminByUsername(ctx context.Context, username string) (models.AdminUser, error)
	// UpsertAdmin creates the admin row or, if the username already exists,
	// replaces its password hash. Used by bootstrap and password resets.
	UpsertAdmin(ctx context.Context, username, passwordHash string) (models.AdminUser, error)
}

// ServiceStore wraps the csc_services table.
type ServiceStore interface {
	ListActiveServices(ctx context.Context) ([]models.Service, error)
	CreateService(ctx context.Context, svc models.Service) (models.Service, error)
	UpdateService(ctx context.Context, id string, upd models.ServiceUpdate) (models.Service, error)
	DeleteService(ctx context.Context, id string) error
}

// AccessoryStore wraps the mobile_accessories table.
type AccessoryStore interface {
	ListActiveAccessories(ctx context.Context) ([]models.Accessory, error)
	CreateAccessory(ctx context.Context, acc models.Accessory) (models.Accessory, error)
	UpdateAccessory(ctx context.Context, id string, upd models.AccessoryUpdate) (models.Accessory, error)
	DeleteAccessory(ctx context.Context, id string) error
}

// RepairStore wraps the mobile_repairing table.
type RepairStore interface {
	ListActiveRepairs(ctx context.Context) ([]models.RepairService, error)
	CreateRepair(ctx context.Context, rep models.RepairService) (models.RepairService, error)
	UpdateRepair(ctx context.Context, id string, upd models.RepairServiceUpdate) (models.RepairService, error)
	DeleteRepair(ctx context.Context, id string) error
}

// Store is everything the HTTP layer needs from persistence.
type Store interface {
	AdminStore
	ServiceStore
	AccessoryStore
	RepairStore
}
