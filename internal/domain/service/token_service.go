package service

import "time"

// Claims is the validated content of an access token.
type Claims struct {
	Subject   string
	Roles     []string
	ExpiresAt time.Time
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken signs a token for subject carrying roles.
	GenerateAccessToken(subject string, roles []string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks signature, expiry and token type.
	ValidateToken(tokenString string) (*Claims, error)
}
