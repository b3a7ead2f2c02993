package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

func TestTokenRoundTrip(t *testing.T) {
	viper.Set("security.jwt_secret", "unit-test-secret")

	token, err := NewToken(Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Nick: "Alice",
	})
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}

	claims, err := ReadToken(token)
	if err != nil {
		t.Fatalf("ReadToken: %v", err)
	}
	if claims.Subject != "alice" {
		t.Errorf("subject = %q, want alice", claims.Subject)
	}
	if claims.Nick != "Alice" {
		t.Errorf("nick = %q, want Alice", claims.Nick)
	}
}

func TestReadTokenRejections(t *testing.T) {
	viper.Set("security.jwt_secret", "unit-test-secret")

	if _, err := ReadToken("not-a-token"); err == nil {
		t.Errorf("garbage token accepted")
	}

	// Signed with a different key
	viper.Set("security.jwt_secret", "another-secret")
	forged, err := NewToken(Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "mallory"},
	})
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	viper.Set("security.jwt_secret", "unit-test-secret")
	if _, err := ReadToken(forged); err == nil {
		t.Errorf("token with the wrong signature accepted")
	}

	// No subject
	empty, err := NewToken(Claims{})
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	if _, err := ReadToken(empty); err == nil {
		t.Errorf("token without a subject accepted")
	}

	// Expired
	expired, err := NewToken(Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	if _, err := ReadToken(expired); err == nil {
		t.Errorf("expired token accepted")
	}
}
