package services

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !strings.Contains(hash, "$") {
		t.Fatalf("expected salt$hash encoding, got %q", hash)
	}

	ok, err := VerifyPassword(hash, "Sup3rSecret")
	if err != nil {
		t.Fatalf("VerifyPassword failed: %v", err)
	}
	if !ok {
		t.Error("correct password did not verify")
	}

	ok, err = VerifyPassword(hash, "WrongPassword1")
	if err != nil {
		t.Fatalf("VerifyPassword failed: %v", err)
	}
	if ok {
		t.Error("wrong password verified")
	}
}

func TestHashesAreSalted(t *testing.T) {
	first, _ := HashPassword("Sup3rSecret")
	second, _ := HashPassword("Sup3rSecret")
	if first == second {
		t.Error("two hashes of the same password should differ")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("not-an-encoded-hash", "anything"); err == nil {
		t.Error("expected an error for a malformed hash")
	}
}
