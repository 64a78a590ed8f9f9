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

// RepairHandler exposes CRUD for mobile repair service listings. The wire
// shape uses the "services"/"service" keys, which the repair pages share
// with the rest of the site.
type RepairHandler struct {
	store  storage.RepairStore
	logger *zap.Logger
}

// NewRepairHandler constructs the handler.
func NewRepairHandler(store storage.RepairStore, logger *zap.Logger) *RepairHandler {
	return &RepairHandler{store: store, logger: logger}
}

// Register attaches the mobile-repairing routes.
func (h *RepairHandler) Register(r chi.Router, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/mobile-repairing", func(r chi.Router) {
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

func (h *RepairHandler) list(w http.ResponseWriter, r *http.Request) {
	repairs, err := h.store.ListActiveRepairs(r.Context())
	if err != nil {
		h.logger.Error("list repairs failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"services": repairs})
}

func (h *RepairHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRepairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.ServiceName) == "" {
		respond.Error(w, http.StatusBadRequest, "Service name is required")
		return
	}

	created, err := h.store.CreateRepair(r.Context(), models.RepairService{
		ServiceName:        req.ServiceName,
		Description:        req.Description,
		PriceRange:         req.PriceRange,
		EstimatedTime:      req.EstimatedTime,
		BrandCompatibility: req.BrandCompatibility,
	})
	if err != nil {
		h.logger.Error("create repair failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.JSON(w, http.StatusCreated, map[string]any{"service": created})
}

func (h *RepairHandler) update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateRepairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		respond.Error(w, http.StatusBadRequest, "Service ID is required")
		return
	}

	updated, err := h.store.UpdateRepair(r.Context(), req.ID, models.RepairServiceUpdate{
		ServiceName:        req.ServiceName,
		Description:        req.Description,
		PriceRange:         req.PriceRange,
		EstimatedTime:      req.EstimatedTime,
		BrandCompatibility: req.BrandCompatibility,
		IsActive:           req.IsActive,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Service not found")
			return
		}
		h.logger.Error("update repair failed", zap.String("id", req.ID), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"service": updated})
}

func (h *RepairHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respond.Error(w, http.StatusBadRequest, "Service ID is required")
		return
	}
	if err := h.store.DeleteRepair(r.Context(), id); err != nil {
		h.logger.Error("delete repair failed", zap.String("id", id), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"success": true})
}
