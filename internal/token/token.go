package token

import (
	"fmt"  // Error formatting
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// Lifetime is how long an issued credential stays valid. Expiry is the
// only invalidation mechanism, there is no revocation list.
const Lifetime = 60 * 24 * time.Hour // 60 days

// Claims carried by every issued credential
type Claims struct {
	UserID               uint `json:"user_id"` // Subject user ID
	jwt.RegisteredClaims      // Standard JWT claims (exp, iat)
}

// Issue creates a signed credential for the given user ID
func Issue(userID uint, secret string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(Lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Parse verifies a credential's signature and expiry and returns its
// claims. It does not check that the subject still exists in storage;
// that is the request gate's job.
func Parse(tokenStr, secret string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		// Only symmetric MAC signing is accepted, never "none"
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := t.Claims.(*Claims); ok && t.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
