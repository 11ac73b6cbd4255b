package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fortune-auction/gateway/internal/model"
	"github.com/fortune-auction/gateway/internal/service"
	"github.com/fortune-auction/gateway/pkg/logger"
)

type AuthHandler struct {
	svc service.AuthServicer
	log *logger.Logger
}

func NewAuthHandler(svc service.AuthServicer, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		svc: svc,
		log: log,
	}
}

// Login proxies credentials upstream and returns the session token alongside
// the authenticated user, which the browser keeps for the tab's lifetime.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, user, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			RespondErrorJSON(w, r, http.StatusUnauthorized, ErrAuthFailed.Error(), "Invalid email or password", nil)
			return
		}
		h.log.Errorw("[AUTH] login failed", "error", err)
		RespondErrorJSON(w, r, http.StatusBadGateway, ErrBackend.Error(), "Login is unavailable right now", nil)
		return
	}

	resp := map[string]any{
		"session_token": token,
		"user":          user,
	}
	RespondSuccessJSON(w, r, http.StatusOK, "Login successful", resp)
}

// Logout tears the session down; an already-dead token is not an error.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := BearerToken(r)
	if token == "" {
		RespondErrorJSON(w, r, http.StatusUnauthorized, ErrMissingToken.Error(), "Missing token in the Authorization header", nil)
		return
	}

	if err := h.svc.Logout(r.Context(), token); err != nil {
		h.log.Errorw("[AUTH] logout failed", "error", err)
		RespondErrorJSON(w, r, http.StatusInternalServerError, ErrInternalServer.Error(), "Failed to close session", nil)
		return
	}
	RespondSuccessJSON(w, r, http.StatusOK, "Logged out", "")
}

// BearerToken extracts the token of an "Authorization: Bearer ..." header,
// empty when absent or malformed.
func BearerToken(r *http.Request) string {
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}
