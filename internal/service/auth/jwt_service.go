package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT session tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT session token binding a username to
	// an assessment session ID.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, username string, sessionID uuid.UUID) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns the claims if the token is valid, or an error if validation
	// fails (expired, invalid signature, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the session tokens.
// It extends standard JWT registered claims with application-specific fields.
type Claims struct {
	// Username is the account the token was issued for.
	Username string `json:"sub,omitempty"`

	// SessionID identifies the assessment session created at login.
	SessionID uuid.UUID `json:"sid,omitempty"`

	// Standard registered JWT claims
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
