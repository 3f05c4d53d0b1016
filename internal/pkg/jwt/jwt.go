package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenMalformed = errors.New("token is malformed")
)

// Claims represents the subset of bearer-token claims the client cares about.
// The token is opaque to this layer in the sense that it is never verified
// here; the backend owns the signing key. Decoding is used only to report a
// locally known expiry before wasting a round trip.
type Claims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

type rawClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Inspect decodes a bearer token without verifying its signature and
// returns the claims this client uses.
func Inspect(tokenString string) (*Claims, error) {
	parser := jwt.NewParser()

	var raw rawClaims
	if _, _, err := parser.ParseUnverified(tokenString, &raw); err != nil {
		return nil, ErrTokenMalformed
	}

	claims := &Claims{
		Subject: raw.Subject,
		Role:    raw.Role,
	}
	if raw.ExpiresAt != nil {
		claims.ExpiresAt = raw.ExpiresAt.Time
	}
	return claims, nil
}

// IsExpired reports whether the token carries an exp claim in the past.
// Tokens that cannot be decoded, or carry no expiry, are not reported as
// expired; the backend is the authority and will answer 401 if they are.
func IsExpired(tokenString string) bool {
	claims, err := Inspect(tokenString)
	if err != nil {
		return false
	}
	if claims.ExpiresAt.IsZero() {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
