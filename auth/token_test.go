package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"tracker/auth"
	"tracker/errs"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	userID := uuid.New()

	token, err := issuer.Issue(userID)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	got, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if got != userID {
		t.Errorf("Verify() = %v, want %v", got, userID)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	other := auth.NewTokenIssuer("other-secret", time.Hour)

	token, err := issuer.Issue(uuid.New())
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	if _, err := other.Verify(token); err == nil {
		t.Fatal("Verify() should reject a token signed with a different secret")
	} else if !errors.Is(err, errs.ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want invalid token", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue(uuid.New())
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	if _, err := issuer.Verify(token); err == nil {
		t.Fatal("Verify() should reject an expired token")
	} else if !errors.Is(err, errs.ErrExpiredToken) {
		t.Errorf("Verify() error = %v, want expired token", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := issuer.Verify(token); err == nil {
			t.Errorf("Verify(%q) should fail", token)
		}
	}
}
