package auth_test

import (
	"testing"

	"tracker/auth"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("hash should not equal the plaintext")
	}

	if !auth.CheckPasswordHash("correct horse battery", hash) {
		t.Error("CheckPasswordHash should accept the original password")
	}
	if auth.CheckPasswordHash("wrong password", hash) {
		t.Error("CheckPasswordHash should reject a different password")
	}
	if auth.CheckPasswordHash("correct horse battery", "not-a-bcrypt-hash") {
		t.Error("CheckPasswordHash should reject a malformed hash")
	}
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	first, err := auth.HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	second, err := auth.HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password should differ")
	}
}
