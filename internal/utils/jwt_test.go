package utils

import (
	"errors"
	"testing"
	"time"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.GenerateJWT("admin@heminfotech.in")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := issuer.ValidateJWT(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Email != "admin@heminfotech.in" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := NewTokenIssuer("other", time.Hour).GenerateJWT("a@b.c")
		if _, err := issuer.ValidateJWT(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		token, _ := NewTokenIssuer("secret", -time.Minute).GenerateJWT("a@b.c")
		if _, err := issuer.ValidateJWT(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := issuer.ValidateJWT("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
