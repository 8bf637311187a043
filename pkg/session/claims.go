package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of token claims worth showing to the user.
type Claims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// Expired reports whether the token's expiry lies in the past.
// Zero expiry (no exp claim) never counts as expired.
func (c Claims) Expired() bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(time.Now())
}

// ParseClaims decodes the stored bearer token WITHOUT verifying its
// signature. The backend is the only verifier; this exists purely so the
// CLI can display who is logged in and until when.
func ParseClaims(token string) (Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, fmt.Errorf("failed to decode token: %w", err)
	}
	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, fmt.Errorf("unexpected claim format")
	}

	var claims Claims
	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, nil
}
