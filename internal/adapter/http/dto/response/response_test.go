package response

import (
	"testing"
	"time"

	"sklad/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenResponse_ToCredential(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("expiry from exp claim", func(t *testing.T) {
		exp := now.Add(30 * time.Minute).Truncate(time.Second)
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(exp),
		}).SignedString([]byte("any-key"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}

		c := TokenResponse{AccessToken: token, TokenType: "Bearer"}.ToCredential("admin", now)
		if !c.ExpiresAt.Equal(exp) {
			t.Fatalf("expected %v, got %v", exp, c.ExpiresAt)
		}
		if c.TokenType != "bearer" || c.Username != "admin" {
			t.Fatalf("unexpected credential %+v", c)
		}
	})

	t.Run("opaque token falls back to default ttl", func(t *testing.T) {
		c := TokenResponse{AccessToken: "opaque"}.ToCredential("", now)
		if !c.ExpiresAt.Equal(now.Add(DefaultTokenTTL)) {
			t.Fatalf("expected default ttl, got %v", c.ExpiresAt)
		}
	})
}

func TestDecodeImport(t *testing.T) {
	t.Run("report", func(t *testing.T) {
		r, err := DecodeImport(entities.ImportToStock, []byte(`{"created":["a"],"updated":["b","c"],"skipped":[],"errors":[]}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Summary() != "1 created, 2 updated, 0 skipped, 0 failed" {
			t.Fatalf("unexpected summary %q", r.Summary())
		}
	})

	t.Run("estimate", func(t *testing.T) {
		r, err := DecodeImport(entities.ImportAsEstimate, []byte(`{"id": 7, "estimate_number": "ИМП-7", "status": "Черновик", "items": []}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Estimate == nil || r.Estimate.ID != 7 {
			t.Fatalf("unexpected estimate %+v", r.Estimate)
		}
		if r.Summary() != "estimate ИМП-7 created" {
			t.Fatalf("unexpected summary %q", r.Summary())
		}
	})
}
