package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

// fakeTokenRepository is an in-memory refresh token store.
type fakeTokenRepository struct {
	tokens  map[string]time.Time
	revoked map[string]bool
}

func newFakeTokenRepository() *fakeTokenRepository {
	return &fakeTokenRepository{
		tokens:  make(map[string]time.Time),
		revoked: make(map[string]bool),
	}
}

func (f *fakeTokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	f.tokens[token] = expiresAt
	return nil
}

func (f *fakeTokenRepository) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	expiresAt, ok := f.tokens[token]
	if !ok || f.revoked[token] {
		return false, nil
	}
	return time.Now().UTC().Before(expiresAt), nil
}

func (f *fakeTokenRepository) InvalidateRefreshToken(ctx context.Context, token string) error {
	f.revoked[token] = true
	return nil
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTokenRepository()
	service := NewTokenService("test-secret", repo)

	userID := uuid.New()

	t.Run("generated pair validates", func(t *testing.T) {
		pair, err := service.GenerateTokenPair(ctx, userID, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pair.AccessToken == "" || pair.RefreshToken == "" {
			t.Fatal("expected both tokens to be issued")
		}

		claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user ID %s, got %s", userID, claims.UserID)
		}
		if claims.Username != "alice" {
			t.Errorf("expected username alice, got %s", claims.Username)
		}

		if _, err := service.ValidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Errorf("expected refresh token to validate: %v", err)
		}
	})

	t.Run("token types are not interchangeable", func(t *testing.T) {
		pair, err := service.GenerateTokenPair(ctx, userID, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
			t.Error("refresh token must not pass access validation")
		}
		if _, err := service.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
			t.Error("access token must not pass refresh validation")
		}
	})

	t.Run("invalidated refresh token rejected", func(t *testing.T) {
		pair, err := service.GenerateTokenPair(ctx, userID, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := service.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := service.ValidateRefreshToken(ctx, pair.RefreshToken); err == nil {
			t.Error("expected revoked token to be rejected")
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		pair, err := service.GenerateTokenPair(ctx, userID, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		other := NewTokenService("different-secret", repo)
		if _, err := other.ValidateAccessToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected token signed with another secret to be rejected")
		}
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		if _, err := service.ValidateAccessToken(ctx, "not.a.token"); err == nil {
			t.Error("expected malformed token to be rejected")
		}
	})
}
