package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestStubTokenRoundTrip(t *testing.T) {
	token := NewStubToken()
	if !IsStubToken(token) {
		t.Fatalf("IsStubToken(%q) = false, want true", token)
	}
	if !strings.HasPrefix(token, "streambox-stub-") {
		t.Fatalf("token = %q, want streambox-stub- prefix", token)
	}
	if IsStubToken("eyJhbGciOiJIUzI1NiJ9.e30.sig") {
		t.Fatal("JWT-shaped token misidentified as stub")
	}

	// Two stubs must not collide.
	if other := NewStubToken(); other == token {
		t.Fatalf("two stub tokens collided: %q", token)
	}
}

func TestTokenExpiryFromJWT(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	claims := jwt.MapClaims{"exp": exp.Unix(), "sub": "1"}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-key"))
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}

	got := TokenExpiry(signed)
	if !got.Equal(exp) {
		t.Fatalf("TokenExpiry = %v, want %v", got, exp)
	}
}

func TestTokenExpiryZeroForNonJWT(t *testing.T) {
	cases := []string{"", NewStubToken(), "not-a-jwt", "a.b"}
	for _, token := range cases {
		if got := TokenExpiry(token); !got.IsZero() {
			t.Fatalf("TokenExpiry(%q) = %v, want zero time", token, got)
		}
	}
}
