package session

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// IsTokenExpired reports whether a JWT carries an exp claim in the past.
// The signature is not verified; the backend is the authority on token
// validity, this only inspects the claim the client can already read.
//
// The request gate checks token presence only and does not call this.
// Callers that want a hard expiry check (e.g. proactive logout) opt in.
func IsTokenExpired(tokenString string) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		// Unparseable tokens are treated as expired
		return true
	}

	if claims.ExpiresAt == nil {
		return false
	}

	return claims.ExpiresAt.Before(time.Now())
}

// TokenRemainingValidity returns how long until the exp claim, zero when
// expired or when no exp claim is present.
func TokenRemainingValidity(tokenString string) time.Duration {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return 0
	}

	if claims.ExpiresAt == nil {
		return 0
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 0 {
		return 0
	}
	return remaining
}
