package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the fields the storefront reads from a backend-issued
// token. They are decoded without verifying the signature and only serve as
// hints; identity is always confirmed by asking the backend for the customer.
type TokenClaims struct {
	ActorID        string `json:"actor_id"`
	ActorType      string `json:"actor_type"`
	AuthIdentityID string `json:"auth_identity_id"`
	Email          string `json:"email"`
	GivenName      string `json:"given_name"`
	FamilyName     string `json:"family_name"`
	Name           string `json:"name"`
	jwt.RegisteredClaims
}

func DecodeUnverified(raw string) (*TokenClaims, error) {
	var c TokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(raw), &c); err != nil {
		return nil, err
	}
	return &c, nil
}
