package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/intellihealth/api/internal/api/shared"
	"github.com/intellihealth/api/internal/service"
	"github.com/intellihealth/api/internal/service/auth"
	"github.com/intellihealth/api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	identity   *service.IdentityService
	jwtService auth.JWTService
	validator  *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(identity *service.IdentityService, jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{
		identity:   identity,
		jwtService: jwtService,
		validator:  validator.New(),
	}
}

// Register handles the /auth/register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Please fill all fields")
		return
	}

	if err := h.identity.Register(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Username already exists")
			return
		}
		slog.Error("failed to register user", "error", err, "username", req.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create account")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]string{
		"message": "Account created successfully! Please login.",
	})
}

// Login handles the /auth/login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Please fill all fields")
		return
	}

	sess, err := h.identity.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same rejection for unknown usernames and wrong passwords.
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		slog.Error("failed to log in user", "error", err, "username", req.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), sess.Username, sess.ID)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "username", sess.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Username: sess.Username,
		Token:    token,
	})
}

// Logout handles the /auth/logout endpoint. It destroys the assessment
// session, discarding cached scores; the session's token stops working
// immediately.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := getSession(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not logged in")
		return
	}

	h.identity.Logout(r.Context(), sess)

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
		"message": "Logged out",
	})
}
