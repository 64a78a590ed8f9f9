package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/skmobile/csc-center-api/internal/auth"
	"github.com/skmobile/csc-center-api/internal/http/respond"
	"github.com/skmobile/csc-center-api/internal/models/dto"
	"github.com/skmobile/csc-center-api/internal/storage"
)

// LoginHandler authenticates admins and hands out bearer tokens.
type LoginHandler struct {
	admins storage.AdminStore
	tokens *auth.TokenManager
	logger *zap.Logger
}

// NewLoginHandler constructs the handler.
func NewLoginHandler(admins storage.AdminStore, tokens *auth.TokenManager, logger *zap.Logger) *LoginHandler {
	return &LoginHandler{admins: admins, tokens: tokens, logger: logger}
}

// Register attaches the login route.
func (h *LoginHandler) Register(r chi.Router) {
	r.Post("/admin-login", h.handleLogin)
}

func (h *LoginHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Username and password required")
		return
	}

	admin, err := h.admins.FindAdminByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error("login: fetch admin failed", zap.String("username", username), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !auth.CheckPassword(req.Password, admin.PasswordHash) {
		respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokens.Issue(admin.ID, admin.Username)
	if err != nil {
		h.logger.Error("login: issue token failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.JSON(w, http.StatusOK, dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    dto.AdminSummary{ID: admin.ID, Username: admin.Username},
	})
}
