package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/skmobile/csc-center-api/internal/http/respond"
	"github.com/skmobile/csc-center-api/internal/models"
	"github.com/skmobile/csc-center-api/internal/models/dto"
	"github.com/skmobile/csc-center-api/internal/storage"
)

// AccessoryHandler exposes CRUD for mobile accessory products.
type AccessoryHandler struct {
	store  storage.AccessoryStore
	logger *zap.Logger
}

// NewAccessoryHandler constructs the handler.
func NewAccessoryHandler(store storage.AccessoryStore, logger *zap.Logger) *AccessoryHandler {
	return &AccessoryHandler{store: store, logger: logger}
}

// Register attaches the mobile-accessories routes.
func (h *AccessoryHandler) Register(r chi.Router, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/mobile-accessories", func(r chi.Router) {
		r.MethodNotAllowed(MethodNotAllowed)
		r.Get("/", h.list)
		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)
			r.Post("/", h.create)
			r.Put("/", h.update)
			r.Delete("/", h.delete)
		})
	})
}

func (h *AccessoryHandler) list(w http.ResponseWriter, r *http.Request) {
	accessories, err := h.store.ListActiveAccessories(r.Context())
	if err != nil {
		h.logger.Error("list accessories failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"accessories": accessories})
}

func (h *AccessoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccessoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	// The admin form posts price as a string; decimal accepts both that
	// and a bare number. Zero and negative prices are rejected outright.
	if strings.TrimSpace(req.Name) == "" || req.Price == nil || req.Price.Sign() <= 0 {
		respond.Error(w, http.StatusBadRequest, "Name and price are required")
		return
	}

	stockStatus := models.StockStatusInStock
	if req.StockStatus != nil && strings.TrimSpace(*req.StockStatus) != "" {
		stockStatus = *req.StockStatus
	}

	created, err := h.store.CreateAccessory(r.Context(), models.Accessory{
		Name:        req.Name,
		Brand:       req.Brand,
		Description: req.Description,
		Price:       *req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		StockStatus: stockStatus,
	})
	if err != nil {
		h.logger.Error("create accessory failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.JSON(w, http.StatusCreated, map[string]any{"accessory": created})
}

func (h *AccessoryHandler) update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAccessoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		respond.Error(w, http.StatusBadRequest, "Accessory ID is required")
		return
	}
	if req.Price != nil && req.Price.Sign() <= 0 {
		respond.Error(w, http.StatusBadRequest, "Name and price are required")
		return
	}

	updated, err := h.store.UpdateAccessory(r.Context(), req.ID, models.AccessoryUpdate{
		Name:        req.Name,
		Brand:       req.Brand,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		StockStatus: req.StockStatus,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Accessory not found")
			return
		}
		h.logger.Error("update accessory failed", zap.String("id", req.ID), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"accessory": updated})
}

func (h *AccessoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respond.Error(w, http.StatusBadRequest, "Accessory ID is required")
		return
	}
	if err := h.store.DeleteAccessory(r.Context(), id); err != nil {
		h.logger.Error("delete accessory failed", zap.String("id", id), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"success": true})
}
