// Package auth issues and verifies the HS256 ID tokens of the PawMart dev
// server.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// Issuer is the iss claim of issued tokens.
	Issuer = "pawmart-devserver"
	// TTL is the lifetime of issued tokens.
	TTL = time.Hour
)

// ErrMissingBearer is returned when a request carries no bearer token.
var ErrMissingBearer = errors.New("missing bearer token")

// Claims are carried by dev server ID tokens. Subject is the user ID.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 ID tokens.
type Tokens struct {
	secret []byte
	now    func() time.Time
}

// NewTokens creates a token issuer keyed by secret.
func NewTokens(secret string, now func() time.Time) *Tokens {
	if now == nil {
		now = time.Now
	}
	return &Tokens{secret: []byte(secret), now: now}
}

// Issue signs an ID token for the user and returns it with its expiry.
func (t *Tokens) Issue(uid, email, name string) (string, time.Time, error) {
	issued := t.now()
	exp := issued.Add(TTL)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := tok.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}
	return signed, exp, nil
}

// Verify checks the signature, issuer and expiry of raw.
func (t *Tokens) Verify(raw string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, fmt.Errorf("verifying token: %w", err)
	}
	return &claims, nil
}

// FromHeader verifies the token of an "Authorization: Bearer" header.
func (t *Tokens) FromHeader(header string) (*Claims, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, ErrMissingBearer
	}
	return t.Verify(strings.TrimSpace(raw))
}
