package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"coffeeshop/config"
	"coffeeshop/internal/domain/service"
)

const accessTokenType = "access"

var (
	ErrMissingSecret    = errors.New("jwt access secret must be provided")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidTokenType = errors.New("invalid token type")
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string
	accessTTL    time.Duration
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.AccessSecret == "" {
		return nil, ErrMissingSecret
	}

	return &jwtService{
		accessSecret: cfg.Auth.AccessSecret,
		accessTTL:    cfg.Auth.AccessTokenTTL,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken creates a signed access token for subject and roles.
func (s *jwtService) GenerateAccessToken(subject string, roles []string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.accessTTL)

	claims := jwt.MapClaims{
		"sub":   subject,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
		"type":  accessTokenType,
		"roles": roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// ValidateToken checks the signature and expiry of an access token and extracts its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.accessSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if tokenType, _ := mapClaims["type"].(string); tokenType != accessTokenType {
		return nil, ErrInvalidTokenType
	}

	subject, err := mapClaims.GetSubject()
	if err != nil || subject == "" {
		return nil, ErrInvalidToken
	}

	claims := &service.Claims{Subject: subject}

	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	if rawRoles, ok := mapClaims["roles"].([]any); ok {
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				claims.Roles = append(claims.Roles, role)
			}
		}
	}

	return claims, nil
}
