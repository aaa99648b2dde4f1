package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func sign(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestDecodeJWT(t *testing.T) {
	token := sign(t, jwt.MapClaims{"sub": "scraper", "exp": time.Now().Add(time.Hour).Unix()}, "s3cret")

	claims, err := DecodeJWT(token, []byte("s3cret"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims["sub"] != "scraper" {
		t.Fatalf("unexpected claims %v", claims)
	}
}

func TestDecodeJWTRejectsWrongSecret(t *testing.T) {
	token := sign(t, jwt.MapClaims{"sub": "scraper"}, "s3cret")

	if _, err := DecodeJWT(token, []byte("other")); err == nil {
		t.Fatal("expected an error for a token signed with another secret")
	}
}

func TestDecodeJWTRejectsExpired(t *testing.T) {
	token := sign(t, jwt.MapClaims{"sub": "scraper", "exp": time.Now().Add(-time.Minute).Unix()}, "s3cret")

	if _, err := DecodeJWT(token, []byte("s3cret")); err == nil {
		t.Fatal("expected an error for an expired token")
	}
}
