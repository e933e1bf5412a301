package middleware

import (
	"strings"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates requests with the session token.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	cfg    *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC, cfg: cfg}
}

// Authenticate resolves the session token to an account and stores it on the context.
// The cookie wins over the Authorization header when both are present.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		account, err := m.authUC.Authenticate(c.Request().Context(), m.extractToken(c))
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetAccount(c, account)

		return next(c)
	}
}

func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cfg.Cookie.Name); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(authHeader, bearerPrefix); ok {
		return strings.TrimSpace(token)
	}

	return ""
}
