package auth_test

import (
	"context"
	"testing"
	"time"

	"tracker/auth"
)

func TestMemoryTokenStoreRevoke(t *testing.T) {
	store := auth.NewMemoryTokenStore()
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "some-token")
	if err != nil {
		t.Fatalf("IsRevoked() error: %v", err)
	}
	if revoked {
		t.Error("unknown token should not be revoked")
	}

	if err := store.Revoke(ctx, "some-token", time.Hour); err != nil {
		t.Fatalf("Revoke() error: %v", err)
	}

	revoked, err = store.IsRevoked(ctx, "some-token")
	if err != nil {
		t.Fatalf("IsRevoked() error: %v", err)
	}
	if !revoked {
		t.Error("revoked token should be reported as revoked")
	}
}

func TestMemoryTokenStoreExpiry(t *testing.T) {
	store := auth.NewMemoryTokenStore()
	ctx := context.Background()

	// A revocation with no remaining lifetime is a no-op
	if err := store.Revoke(ctx, "expired-token", 0); err != nil {
		t.Fatalf("Revoke() error: %v", err)
	}
	revoked, err := store.IsRevoked(ctx, "expired-token")
	if err != nil {
		t.Fatalf("IsRevoked() error: %v", err)
	}
	if revoked {
		t.Error("a token revoked with zero ttl should not be tracked")
	}

	// Entries past their expiry fall out of the store
	if err := store.Revoke(ctx, "short-token", time.Millisecond); err != nil {
		t.Fatalf("Revoke() error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	revoked, err = store.IsRevoked(ctx, "short-token")
	if err != nil {
		t.Fatalf("IsRevoked() error: %v", err)
	}
	if revoked {
		t.Error("an expired revocation should no longer be reported")
	}
}
