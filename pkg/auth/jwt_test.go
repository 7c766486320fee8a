package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Saurav-S-Mehta-07/RetailEdge/config"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken(42)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.ShopkeeperID != 42 {
		t.Errorf("shopkeeper id = %d, want 42", claims.ShopkeeperID)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	claims := auth.Claims{
		ShopkeeperID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppKey()))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := auth.ValidateToken(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestValidateTokenRejectsOtherSigningMethods(t *testing.T) {
	// A token signed with a different method must not pass even when the
	// signature itself checks out against the shared secret.
	claims := auth.Claims{
		ShopkeeperID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).
		SignedString([]byte(config.AppKey()))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := auth.ValidateToken(token); err == nil {
		t.Error("HS512 token accepted, want HS256 only")
	}
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Error("hash equals plain text")
	}
	if !auth.CheckPassword(hash, "secret123") {
		t.Error("correct password rejected")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
