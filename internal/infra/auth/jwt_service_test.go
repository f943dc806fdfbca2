package auth

import (
	"testing"
	"time"

	"coffeeshop/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{
		AccessSecret:   "test_access_secret_key_very_long_for_testing",
		AccessTokenTTL: ttl,
	}})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	token, expiresAt, err := svc.GenerateAccessToken("manager", []string{"manager"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "manager", claims.Subject)
	assert.Equal(t, []string{"manager"}, claims.Roles)
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = NewJWTService(&config.Config{})
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)
	issued := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issued }

	token, _, err := svc.GenerateAccessToken("manager", []string{"manager"})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	token, _, err := svc.GenerateAccessToken("manager", nil)
	require.NoError(t, err)

	other := newTestJWTService(t, time.Hour)
	other.accessSecret = "another_secret"

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_RejectsOtherTokenType(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "manager",
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": "refresh",
	})
	signed, err := token.SignedString([]byte(svc.accessSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	_, err := svc.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}
