package impl

import (
	"context"
	"testing"
	"time"

	"coffeeshop/config"
	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	mockSvc "coffeeshop/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthConfig(secret, hash string) *config.Config {
	cfg := newTestConfig()
	cfg.Auth.ManagerSecret = secret
	cfg.Auth.ManagerSecretHash = hash

	return cfg
}

func TestNewAuthService_HashesPlaintextSecret(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash("s3cret").Return("$2a$hash", nil)

	srv, err := NewAuthService(AuthServiceParams{
		Hasher:       hasher,
		TokenService: mockSvc.NewMockTokenService(t),
		Config:       newAuthConfig("s3cret", ""),
		Logger:       newDiscardLogger(),
	})
	require.NoError(t, err)
	assert.Equal(t, "$2a$hash", srv.(*authService).secretHash)
}

func TestNewAuthService_RequiresSecret(t *testing.T) {
	_, err := NewAuthService(AuthServiceParams{
		Hasher:       mockSvc.NewMockPasswordHasher(t),
		TokenService: mockSvc.NewMockTokenService(t),
		Config:       newAuthConfig("", ""),
		Logger:       newDiscardLogger(),
	})
	assert.ErrorIs(t, err, errManagerSecretMissing)
}

func TestAuthService_ManagerLogin(t *testing.T) {
	expiresAt := testNow.Add(time.Hour)

	tests := []struct {
		name      string
		secret    string
		setup     func(hasher *mockSvc.MockPasswordHasher, tokens *mockSvc.MockTokenService)
		expectErr error
	}{
		{
			name:   "valid secret",
			secret: "s3cret",
			setup: func(hasher *mockSvc.MockPasswordHasher, tokens *mockSvc.MockTokenService) {
				hasher.EXPECT().Check("s3cret", "$2a$hash").Return(true)
				tokens.EXPECT().GenerateAccessToken(managerSubject, []string{"manager"}).Return("jwt-token", expiresAt, nil)
			},
		},
		{
			name:   "wrong secret",
			secret: "guess",
			setup: func(hasher *mockSvc.MockPasswordHasher, _ *mockSvc.MockTokenService) {
				hasher.EXPECT().Check("guess", "$2a$hash").Return(false)
			},
			expectErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name:      "empty secret",
			secret:    "",
			setup:     func(*mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {},
			expectErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name:   "token failure",
			secret: "s3cret",
			setup: func(hasher *mockSvc.MockPasswordHasher, tokens *mockSvc.MockTokenService) {
				hasher.EXPECT().Check("s3cret", "$2a$hash").Return(true)
				tokens.EXPECT().GenerateAccessToken(managerSubject, []string{"manager"}).Return("", time.Time{}, errors.New("signing failed"))
			},
			expectErr: domainerrors.ErrTokenGenerationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := mockSvc.NewMockPasswordHasher(t)
			tokens := mockSvc.NewMockTokenService(t)
			tt.setup(hasher, tokens)

			srv, err := NewAuthService(AuthServiceParams{
				Hasher:       hasher,
				TokenService: tokens,
				Config:       newAuthConfig("", "$2a$hash"),
				Logger:       newDiscardLogger(),
			})
			require.NoError(t, err)

			out, err := srv.ManagerLogin(context.Background(), tt.secret)
			if tt.expectErr != nil {
				assert.True(t, errors.Is(err, tt.expectErr), "got %v", err)
				assert.Nil(t, out)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "jwt-token", out.AccessToken)
			assert.Equal(t, expiresAt, out.ExpiresAt)
			assert.Equal(t, entity.Roles{entity.RoleManager}, out.Roles)
		})
	}
}
