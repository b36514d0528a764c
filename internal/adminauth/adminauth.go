package adminauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const issuer = "shiba-api"

var ErrInvalidToken = errors.New("invalid admin token")

// Claims identify an analytics/audit operator.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs an HS256 admin token for subject valid for ttl.
func Issue(secret, subject string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("admin secret is empty")
	}
	now := time.Now()
	claims := Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Verify parses token and checks signature, expiry, issuer and role.
func Verify(secret, token string) (*Claims, error) {
	if secret == "" || token == "" {
		return nil, ErrInvalidToken
	}
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Issuer != issuer || claims.Role != "admin" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
