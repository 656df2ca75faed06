// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("super-secret", time.Hour)

	tok, err := issuer.Issue(42, "alice@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if strings.Count(tok, ".") != 2 {
		t.Errorf("Issue() should return a JWT, got %q", tok)
	}

	claims, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "alice@x.com" {
		t.Errorf("Email = %q, want alice@x.com", claims.Email)
	}
	if claims.Subject != "42" {
		t.Errorf("Subject = %q, want 42", claims.Subject)
	}
	if claims.ID == "" {
		t.Error("expected a jti")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now().Add(59*time.Minute)) {
		t.Errorf("ExpiresAt = %v, want about one hour from now", claims.ExpiresAt)
	}
}

func TestIssue_UniqueTokens(t *testing.T) {
	issuer := NewTokenIssuer("s", time.Hour)
	t1, _ := issuer.Issue(1, "a@x.com")
	t2, _ := issuer.Issue(1, "a@x.com")
	if t1 == t2 {
		t.Error("two tokens for the same user should differ by jti")
	}
}

func TestVerify_Expired(t *testing.T) {
	issuer := NewTokenIssuer("secret", -time.Minute)

	tok, err := issuer.Issue(1, "u@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = issuer.Verify(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("Verify() error = %v, want ErrTokenExpired", err)
	}
}

func TestVerify_ExpiresWithClock(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	start := time.Now()
	issuer.now = func() time.Time { return start }

	tok, _ := issuer.Issue(7, "u@x.com")

	issuer.now = func() time.Time { return start.Add(59 * time.Minute) }
	if _, err := issuer.Verify(tok); err != nil {
		t.Errorf("token should be valid before expiry: %v", err)
	}

	issuer.now = func() time.Time { return start.Add(61 * time.Minute) }
	if _, err := issuer.Verify(tok); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Verify() after expiry = %v, want ErrTokenExpired", err)
	}
}

func TestVerify_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("right-secret", time.Hour)
	other := NewTokenIssuer("wrong-secret", time.Hour)
	good, _ := other.Issue(2, "u@x.com")

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 3}).SignedString([]byte("right-secret"))
	noneAlg, _ := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID:           4,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	noUser, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("right-secret"))

	tests := []struct {
		name  string
		token string
	}{
		{"wrong secret", good},
		{"malformed", "not.a.jwt"},
		{"empty", ""},
		{"no expiry", noExp},
		{"alg none", noneAlg},
		{"no user id", noUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.Verify(tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}
