package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/ezcheckout/internal/auth"
)

const (
	// SessionCookie carries the session token, HttpOnly.
	SessionCookie = "ezcheckout_session"

	ctxUserID       = "userID"
	ctxSessionToken = "sessionToken"
)

// RequireSession rejects requests without a valid session cookie with 401,
// the cookie-redirect behavior is not wanted on a JSON API.
func RequireSession(authService *auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}

			userID, err := authService.ResolveSession(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, auth.ErrNoSession) {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
				}
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
			}

			c.Set(ctxUserID, userID)
			c.Set(ctxSessionToken, cookie.Value)

			return next(c)
		}
	}
}
