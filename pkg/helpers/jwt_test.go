package helpers

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	issued := time.Date(2025, 9, 19, 10, 0, 0, 0, time.UTC)
	m := NewJWTManager("test-secret")
	m.now = func() time.Time { return issued }

	token, exp, err := m.GenerateToken("64f0c0ffee0000000000abcd", "company")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if want := issued.Add(7 * 24 * time.Hour); !exp.Equal(want) {
		t.Fatalf("expiry = %v, want %v", exp, want)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "64f0c0ffee0000000000abcd" || claims.Role != "company" {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.Subject != claims.UserID {
		t.Fatalf("subject = %q", claims.Subject)
	}
	if got := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time); got != TokenTTL {
		t.Fatalf("lifetime = %v, want %v", got, TokenTTL)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	issued := time.Date(2025, 9, 19, 10, 0, 0, 0, time.UTC)
	m := NewJWTManager("test-secret")
	m.now = func() time.Time { return issued }
	token, _, err := m.GenerateToken("u1", "youth")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	m.now = func() time.Time { return issued.Add(TokenTTL + time.Minute) }
	if _, err := m.ParseToken(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestParseTokenRejectsOtherSecret(t *testing.T) {
	token, _, err := NewJWTManager("a").GenerateToken("u1", "youth")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := NewJWTManager("b").ParseToken(token); err == nil {
		t.Fatalf("expected signature mismatch")
	}
}
