package handlers

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/skmobile/csc-center-api/internal/models"
	"github.com/skmobile/csc-center-api/internal/storage"
)

// In-memory stores for handler tests. They mirror the ordering and
// filtering the Postgres store performs so endpoint behavior can be
// asserted end to end without a database.

type fakeAdminStore struct {
	admins map[string]models.AdminUser
}

func (f *fakeAdminStore) FindAdminByUsername(_ context.Context, username string) (models.AdminUser, error) {
	admin, ok := f.admins[username]
	if !ok {
		return models.AdminUser{}, storage.ErrNotFound
	}
	return admin, nil
}

func (f *fakeAdminStore) UpsertAdmin(_ context.Context, username, passwordHash string) (models.AdminUser, error) {
	admin, ok := f.admins[username]
	if !ok {
		admin = models.AdminUser{
			ID:        fmt.Sprintf("admin-%d", len(f.admins)+1),
			Username:  username,
			CreatedAt: time.Now(),
		}
	}
	admin.PasswordHash = passwordHash
	admin.UpdatedAt = time.Now()
	f.admins[username] = admin
	return admin, nil
}

type fakeServiceStore struct {
	services []models.Service
	nextID   int
	now      time.Time
}

func newFakeServiceStore() *fakeServiceStore {
	return &fakeServiceStore{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeServiceStore) tick() time.Time {
	f.now = f.now.Add(time.Minute)
	return f.now
}

func (f *fakeServiceStore) ListActiveServices(context.Context) ([]models.Service, error) {
	out := make([]models.Service, 0)
	for _, svc := range f.services {
		if svc.IsActive {
			out = append(out, svc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeServiceStore) CreateService(_ context.Context, svc models.Service) (models.Service, error) {
	f.nextID++
	ts := f.tick()
	svc.ID = fmt.Sprintf("svc-%d", f.nextID)
	svc.IsActive = true
	svc.CreatedAt = ts
	svc.UpdatedAt = ts
	f.services = append(f.services, svc)
	return svc, nil
}

func (f *fakeServiceStore) UpdateService(_ context.Context, id string, upd models.ServiceUpdate) (models.Service, error) {
	for i := range f.services {
		if f.services[i].ID != id {
			continue
		}
		svc := &f.services[i]
		if upd.Name != nil {
			svc.Name = *upd.Name
		}
		if upd.Description != nil {
			svc.Description = upd.Description
		}
		if upd.DetailedDescription != nil {
			svc.DetailedDescription = upd.DetailedDescription
		}
		if upd.Icon != nil {
			svc.Icon = upd.Icon
		}
		if upd.Category != nil {
			svc.Category = upd.Category
		}
		if upd.IsActive != nil {
			svc.IsActive = *upd.IsActive
		}
		svc.UpdatedAt = f.tick()
		return *svc, nil
	}
	return models.Service{}, storage.ErrNotFound
}

func (f *fakeServiceStore) DeleteService(_ context.Context, id string) error {
	for i := range f.services {
		if f.services[i].ID == id {
			f.services = append(f.services[:i], f.services[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeAccessoryStore struct {
	accessories []models.Accessory
	nextID      int
	now         time.Time
}

func newFakeAccessoryStore() *fakeAccessoryStore {
	return &fakeAccessoryStore{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeAccessoryStore) tick() time.Time {
	f.now = f.now.Add(time.Minute)
	return f.now
}

func (f *fakeAccessoryStore) ListActiveAccessories(context.Context) ([]models.Accessory, error) {
	out := make([]models.Accessory, 0)
	for _, acc := range f.accessories {
		if acc.IsActive {
			out = append(out, acc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ci, cj := strDeref(out[i].Category), strDeref(out[j].Category)
		if ci != cj {
			return ci < cj
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (f *fakeAccessoryStore) CreateAccessory(_ context.Context, acc models.Accessory) (models.Accessory, error) {
	f.nextID++
	ts := f.tick()
	acc.ID = fmt.Sprintf("acc-%d", f.nextID)
	acc.IsActive = true
	acc.CreatedAt = ts
	acc.UpdatedAt = ts
	f.accessories = append(f.accessories, acc)
	return acc, nil
}

func (f *fakeAccessoryStore) UpdateAccessory(_ context.Context, id string, upd models.AccessoryUpdate) (models.Accessory, error) {
	for i := range f.accessories {
		if f.accessories[i].ID != id {
			continue
		}
		acc := &f.accessories[i]
		if upd.Name != nil {
			acc.Name = *upd.Name
		}
		if upd.Brand != nil {
			acc.Brand = upd.Brand
		}
		if upd.Description != nil {
			acc.Description = upd.Description
		}
		if upd.Price != nil {
			acc.Price = *upd.Price
		}
		if upd.ImageURL != nil {
			acc.ImageURL = upd.ImageURL
		}
		if upd.Category != nil {
			acc.Category = upd.Category
		}
		if upd.StockStatus != nil {
			acc.StockStatus = *upd.StockStatus
		}
		if upd.IsActive != nil {
			acc.IsActive = *upd.IsActive
		}
		acc.UpdatedAt = f.tick()
		return *acc, nil
	}
	return models.Accessory{}, storage.ErrNotFound
}

func (f *fakeAccessoryStore) DeleteAccessory(_ context.Context, id string) error {
	for i := range f.accessories {
		if f.accessories[i].ID == id {
			f.accessories = append(f.accessories[:i], f.accessories[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeRepairStore struct {
	repairs []models.RepairService
	nextID  int
	now     time.Time
}

func newFakeRepairStore() *fakeRepairStore {
	return &fakeRepairStore{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeRepairStore) tick() time.Time {
	f.now = f.now.Add(time.Minute)
	return f.now
}

func (f *fakeRepairStore) ListActiveRepairs(context.Context) ([]models.RepairService, error) {
	out := make([]models.RepairService, 0)
	for _, rep := range f.repairs {
		if rep.IsActive {
			out = append(out, rep)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRepairStore) CreateRepair(_ context.Context, rep models.RepairService) (models.RepairService, error) {
	f.nextID++
	ts := f.tick()
	rep.ID = fmt.Sprintf("rep-%d", f.nextID)
	rep.IsActive = true
	rep.CreatedAt = ts
	rep.UpdatedAt = ts
	f.repairs = append(f.repairs, rep)
	return rep, nil
}

func (f *fakeRepairStore) UpdateRepair(_ context.Context, id string, upd models.RepairServiceUpdate) (models.RepairService, error) {
	for i := range f.repairs {
		if f.repairs[i].ID != id {
			continue
		}
		rep := &f.repairs[i]
		if upd.ServiceName != nil {
			rep.ServiceName = *upd.ServiceName
		}
		if upd.Description != nil {
			rep.Description = upd.Description
		}
		if upd.PriceRange != nil {
			rep.PriceRange = upd.PriceRange
		}
		if upd.EstimatedTime != nil {
			rep.EstimatedTime = upd.EstimatedTime
		}
		if upd.BrandCompatibility != nil {
			rep.BrandCompatibility = upd.BrandCompatibility
		}
		if upd.IsActive != nil {
			rep.IsActive = *upd.IsActive
		}
		rep.UpdatedAt = f.tick()
		return *rep, nil
	}
	return models.RepairService{}, storage.ErrNotFound
}

func (f *fakeRepairStore) DeleteRepair(_ context.Context, id string) error {
	for i := range f.repairs {
		if f.repairs[i].ID == id {
			f.repairs = append(f.repairs[:i], f.repairs[i+1:]...)
			return nil
		}
	}
	return nil
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
