package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/intellihealth/api/internal/api/shared"
	"github.com/intellihealth/api/internal/service"
	"github.com/intellihealth/api/internal/service/auth"
)

// AuthMiddleware provides JWT session authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
	sessions   *service.SessionRegistry
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, sessions *service.SessionRegistry) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		sessions:   sessions,
	}
}

// Authenticate validates the bearer token from the Authorization header,
// resolves the live assessment session it names, and adds the session to
// the request context. Tokens whose session has been destroyed (logout) are
// rejected even when the token itself is still within its lifetime.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		sess, err := m.sessions.Get(claims.SessionID)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Session has ended; log in again")
			return
		}

		ctx := context.WithValue(r.Context(), shared.SessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSession extracts the assessment session from the request context.
// Returns the session and a boolean indicating if it was found.
func GetSession(r *http.Request) (*service.Session, bool) {
	sess, ok := r.Context().Value(shared.SessionContextKey).(*service.Session)
	return sess, ok
}
