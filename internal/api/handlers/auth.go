package handlers

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pawmart/pawmart/internal/api/auth"
)

// Verifier resolves the Authorization header of a write request to the
// caller's claims.
type Verifier interface {
	FromHeader(header string) (*auth.Claims, error)
}

// caller verifies header and returns the caller's email.
func caller(v Verifier, header string) (string, error) {
	claims, err := v.FromHeader(header)
	if err != nil {
		return "", huma.Error401Unauthorized("a valid bearer token is required")
	}
	return claims.Email, nil
}

// ownerEmail settles the owner of a record written by the caller. An empty
// email defaults to the caller's; any other email must match it.
func ownerEmail(callerEmail, bodyEmail string) (string, error) {
	if strings.TrimSpace(bodyEmail) == "" {
		return callerEmail, nil
	}
	if !strings.EqualFold(bodyEmail, callerEmail) {
		return "", huma.Error403Forbidden("email does not match the signed-in user")
	}
	return callerEmail, nil
}
