package middleware

import (
	"strings"

	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/delivery/http/response"
	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware validates access tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a valid Bearer token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := deliverycontext.GetRoles(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}

			if !roles.Contains(required) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+required.String()+"' role")
			}

			return next(c)
		}
	}
}
