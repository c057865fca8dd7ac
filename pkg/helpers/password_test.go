package helpers

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := &BcryptHasher{Cost: bcrypt.MinCost}

	d1, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	d2, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if d1 == d2 {
		t.Fatalf("digests should differ by salt")
	}
	if d1 == "secret" {
		t.Fatalf("digest equals plaintext")
	}
	if !h.Verify(d1, "secret") || !h.Verify(d2, "secret") {
		t.Fatalf("verify failed for correct password")
	}
	if h.Verify(d1, "Secret") {
		t.Fatalf("verify accepted wrong password")
	}
	if h.Verify("not-a-digest", "secret") {
		t.Fatalf("verify accepted malformed digest")
	}
}

func TestDefaultCost(t *testing.T) {
	d, err := NewBcryptHasher().Hash("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(d))
	if err != nil || cost != PasswordCost {
		t.Fatalf("cost = %d, %v; want %d", cost, err, PasswordCost)
	}
}
