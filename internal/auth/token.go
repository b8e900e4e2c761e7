package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// stubTokenPrefix marks tokens synthesized for registrations, where the
// provider returns no session credential. The prefix keeps stubs
// distinguishable from genuine tokens everywhere downstream.
const stubTokenPrefix = "streambox-stub-"

// NewStubToken synthesizes a placeholder session token embedding the current
// unix timestamp and a random UUID. It is a stand-in for a missing backend
// capability and is never accepted as a bearer credential.
func NewStubToken() string {
	return fmt.Sprintf("%s%d-%s", stubTokenPrefix, time.Now().Unix(), uuid.NewString())
}

// IsStubToken reports whether the token was synthesized by NewStubToken.
func IsStubToken(token string) bool {
	return strings.HasPrefix(token, stubTokenPrefix)
}

// TokenExpiry extracts the expiry claim from a JWT session token without
// verifying its signature. The client holds no signing key; the claim is
// used for display only, never for an authorization decision. Returns the
// zero time for stub tokens and anything else that is not a JWT.
func TokenExpiry(token string) time.Time {
	if token == "" || IsStubToken(token) {
		return time.Time{}
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
