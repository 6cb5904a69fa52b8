// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair represents an access/refresh token pair forming a session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents the identity carried by a validated token.
type TokenClaims struct {
	UserID    uuid.UUID
	Username  string
	ExpiresAt time.Time
}

// TokenService defines the interface for session token operations.
type TokenService interface {
	// GenerateTokenPair issues a new access and refresh token pair bound to
	// the user's identity. The refresh token is persisted for invalidation.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, username string) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken validates a refresh token, checking both the
	// signature and that it has not been invalidated.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// InvalidateRefreshToken marks a refresh token as no longer usable.
	InvalidateRefreshToken(ctx context.Context, token string) error
}
