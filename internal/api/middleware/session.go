package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sporthub/webapp/internal/core/ports"
)

// Context keys populated by Session for downstream handlers.
const (
	CtxToken  = "token"
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// Session resolves the ambient session once per request and injects the
// handle into the echo context, so views receive an explicit session instead
// of reaching for a global.
func Session(sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, user := sessions.Current()
			if token != "" && user != nil {
				c.Set(CtxToken, token)
				c.Set(CtxUserID, user.ID)
				c.Set(CtxRole, user.Role)
			}
			return next(c)
		}
	}
}

// RequireAuth rejects requests that carry no authenticated session. It runs
// after Session has populated the context.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, _ := c.Get(CtxToken).(string)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}
