package impl

import (
	"context"
	"log/slog"

	"coffeeshop/config"
	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/service"
	"coffeeshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// managerSubject is the token subject of the shared manager login.
const managerSubject = "manager"

var errManagerSecretMissing = errors.New("auth.managerSecretHash or auth.managerSecret must be configured")

// authService implements the AuthUsecase interface.
type authService struct {
	hasher       service.PasswordHasher
	tokenService service.TokenService
	secretHash   string
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. A plaintext manager secret in the config
// is hashed once here so that logins only ever compare against a hash.
func NewAuthService(params AuthServiceParams) (usecase.AuthUsecase, error) {
	if params.Config == nil || params.Config.Auth == nil {
		return nil, errManagerSecretMissing
	}

	secretHash := params.Config.Auth.ManagerSecretHash
	if secretHash == "" {
		if params.Config.Auth.ManagerSecret == "" {
			return nil, errManagerSecretMissing
		}

		hashed, err := params.Hasher.Hash(params.Config.Auth.ManagerSecret)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash manager secret")
		}
		secretHash = hashed
	}

	return &authService{
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		secretHash:   secretHash,
		logger:       params.Logger,
	}, nil
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ManagerLogin exchanges the manager secret for an access token carrying the manager role.
func (srv *authService) ManagerLogin(ctx context.Context, secret string) (*usecase.LoginOutput, error) {
	if secret == "" || !srv.hasher.Check(secret, srv.secretHash) {
		srv.log(ctx).Warn("Manager login rejected")

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	roles := entity.Roles{entity.RoleManager}
	token, expiresAt, err := srv.tokenService.GenerateAccessToken(managerSubject, roles.ToStrings())
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenGenerationFailed, err.Error())
	}

	srv.log(ctx).Info("Manager logged in", slog.Time("expiresAt", expiresAt))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Roles:       roles,
	}, nil
}
