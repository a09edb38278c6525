package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	j := NewJWTAuth("test-secret", time.Hour)

	token, err := j.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := j.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("username = %q, want alice", claims.Username)
	}
	if claims.Issuer != "cipherlab" {
		t.Errorf("issuer = %q, want cipherlab", claims.Issuer)
	}
}

func TestExpiredToken(t *testing.T) {
	j := NewJWTAuth("test-secret", -time.Hour)
	token, err := j.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := j.ValidateToken(token); err != ErrExpiredToken {
		t.Errorf("ValidateToken = %v, want ErrExpiredToken", err)
	}
}

func TestWrongSecret(t *testing.T) {
	a := NewJWTAuth("secret-a", time.Hour)
	b := NewJWTAuth("secret-b", time.Hour)
	token, err := a.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := b.ValidateToken(token); err != ErrInvalidToken {
		t.Errorf("ValidateToken = %v, want ErrInvalidToken", err)
	}
}

func TestGarbageToken(t *testing.T) {
	j := NewJWTAuth("test-secret", time.Hour)
	for _, tok := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		if _, err := j.ValidateToken(tok); err != ErrInvalidToken {
			t.Errorf("ValidateToken(%q) = %v, want ErrInvalidToken", tok, err)
		}
	}
}
