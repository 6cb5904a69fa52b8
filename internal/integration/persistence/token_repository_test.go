package persistence

import (
	"context"
	"testing"
	"time"
)

func TestTokenRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "tokenuser")

	t.Run("saved token is valid", func(t *testing.T) {
		err := repo.SaveRefreshToken(ctx, "token-a", user.ID, time.Now().UTC().Add(time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !valid {
			t.Error("expected token to be valid")
		}
	})

	t.Run("invalidated token is rejected", func(t *testing.T) {
		if err := repo.InvalidateRefreshToken(ctx, "token-a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected token to be invalid after revocation")
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		err := repo.SaveRefreshToken(ctx, "token-b", user.ID, time.Now().UTC().Add(-time.Minute))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected expired token to be invalid")
		}
	})

	t.Run("unknown token is rejected without error", func(t *testing.T) {
		valid, err := repo.IsRefreshTokenValid(ctx, "never-issued")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected unknown token to be invalid")
		}
	})

	t.Run("invalidating unknown token is a no-op", func(t *testing.T) {
		if err := repo.InvalidateRefreshToken(ctx, "never-issued"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
