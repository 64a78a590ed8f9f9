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

// ServiceHandler exposes CRUD for government/CSC service listings.
// Listing is public; everything else sits behind the admin guard.
type ServiceHandler struct {
	store  storage.ServiceStore
	logger *zap.Logger
}

// NewServiceHandler constructs the handler.
func NewServiceHandler(store storage.ServiceStore, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{store: store, logger: logger}
}

// Register attaches the csc-services routes. requireAdmin wraps the
// mutating verbs only.
func (h *ServiceHandler) Register(r chi.Router, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/csc-services", func(r chi.Router) {
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

func (h *ServiceHandler) list(w http.ResponseWriter, r *http.Request) {
	services, err := h.store.ListActiveServices(r.Context())
	if err != nil {
		h.logger.Error("list services failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"services": services})
}

func (h *ServiceHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respond.Error(w, http.StatusBadRequest, "Service name is required")
		return
	}

	created, err := h.store.CreateService(r.Context(), models.Service{
		Name:                req.Name,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
		Icon:                req.Icon,
		Category:            req.Category,
	})
	if err != nil {
		h.logger.Error("create service failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.JSON(w, http.StatusCreated, map[string]any{"service": created})
}

func (h *ServiceHandler) update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		respond.Error(w, http.StatusBadRequest, "Service ID is required")
		return
	}

	updated, err := h.store.UpdateService(r.Context(), req.ID, models.ServiceUpdate{
		Name:                req.Name,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
		Icon:                req.Icon,
		Category:            req.Category,
		IsActive:            req.IsActive,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Service not found")
			return
		}
		h.logger.Error("update service failed", zap.String("id", req.ID), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"service": updated})
}

func (h *ServiceHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respond.Error(w, http.StatusBadRequest, "Service ID is required")
		return
	}
	if err := h.store.DeleteService(r.Context(), id); err != nil {
		h.logger.Error("delete service failed", zap.String("id", id), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"success": true})
}
