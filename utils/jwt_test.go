package utils

import (
	"testing"
	"time"
)

func TestGenerateAndExtractClaims(t *testing.T) {
	token, err := GenerateToken("user-1", "a@x.com", "admin", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ExtractClaims(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("expected subject %q, got %q", "user-1", claims.Subject)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("expected email %q, got %q", "a@x.com", claims.Email)
	}
	if claims.Role != "admin" {
		t.Fatalf("expected role %q, got %q", "admin", claims.Role)
	}
}

func TestExtractClaims_ExpiredToken(t *testing.T) {
	token, err := GenerateToken("user-1", "a@x.com", "", -time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ExtractClaims(token); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestExtractClaims_Garbage(t *testing.T) {
	if _, err := ExtractClaims("not.a.token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}
