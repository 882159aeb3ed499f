package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/domain/auth"
	"github.com/x-xyz/rentableft/domain/session"
)

type AuthMiddleware struct {
	auth auth.Usecase
}

func New(auth auth.Usecase) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// Auth requires a valid bearer token and stores its session on the echo context
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

// OptionalAuth parses a bearer token when one is sent
func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			return len(c.Request().Header.Get(echo.HeaderAuthorization)) == 0
		},
		Validator: m.validateAuthToken,
	})
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	s, err := m.auth.ParseToken(ctx, key)
	if err != nil {
		ctx.WithField("err", err).Warn("auth.ParseToken failed")
		return false, nil
	}
	c.Set(session.ContextKey, s)
	return true, nil
}

// SessionOf returns the session set by Auth/OptionalAuth, or a disconnected one
func SessionOf(c echo.Context) session.Session {
	if s, ok := c.Get(session.ContextKey).(session.Session); ok {
		return s
	}
	return session.Session{}
}
