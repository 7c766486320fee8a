// Package auth provides password hashing and the JWT tokens used by the
// JSON API surface. Browser sessions are handled by pkg/session; JWTs exist
// only for /api clients (the dashboard front-end).
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Saurav-S-Mehta-07/RetailEdge/config"
)

// Claims holds the typed JWT payload.
type Claims struct {
	ShopkeeperID uint `json:"shopkeeper_id"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.AppKey())
}

// GenerateToken creates a signed 24h JWT for the given shopkeeper.
func GenerateToken(shopkeeperID uint) (string, error) {
	claims := Claims{
		ShopkeeperID: shopkeeperID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ValidateToken parses and validates a JWT string. Only HS256 tokens
// are accepted.
func ValidateToken(t string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return secret(), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
