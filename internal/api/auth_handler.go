package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/tutor-api/internal/api/shared"
	"github.com/phrazzld/tutor-api/internal/config"
	"github.com/phrazzld/tutor-api/internal/service/auth"
)

// AuthHandler handles the access-key-for-token exchange.
type AuthHandler struct {
	jwtService  auth.JWTService
	keyVerifier auth.PasswordVerifier
	authConfig  *config.AuthConfig
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	jwtService auth.JWTService,
	keyVerifier auth.PasswordVerifier,
	authConfig *config.AuthConfig,
) *AuthHandler {
	return &AuthHandler{
		jwtService:  jwtService,
		keyVerifier: keyVerifier,
		authConfig:  authConfig,
	}
}

// Token handles the /api/auth/token endpoint. It compares the submitted
// access key against the configured bcrypt hash and issues a session token
// on a match. Failed comparisons always produce the same 401 so the
// response does not leak whether a key was close.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.keyVerifier.Compare(h.authConfig.AccessKeyHash, req.AccessKey); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid access key")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context())
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate session token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}
