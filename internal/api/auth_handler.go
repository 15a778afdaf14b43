package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/ezcheckout/internal/auth"
	"github.com/nikolayk812/ezcheckout/internal/domain"
	"github.com/nikolayk812/ezcheckout/internal/dto"
	"github.com/rs/zerolog"
)

const rememberMeMaxAge = 7 * 24 * time.Hour

type AuthHandler struct {
	auth   *auth.Service
	logger zerolog.Logger
}

func NewAuthHandler(authService *auth.Service, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   authService,
		logger: logger,
	}
}

// Login logs in a user --> POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	token, err := h.auth.Login(c.Request().Context(), req.Username, req.Password, req.RememberMe)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]any{
				"success": false,
				"message": "Invalid login attempt",
			})
		}
		h.logger.Error().Err(err).Str("username", req.Username).Msg("login failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	c.SetCookie(sessionCookie(token, req.RememberMe))
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
	})
}

// Register registers a new user and signs it in --> POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	user := domain.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	_, token, err := h.auth.Register(c.Request().Context(), user, req.Password)
	if err != nil {
		var validationErr *auth.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, map[string]any{
				"success": false,
				"errors":  validationErr.Messages,
			})
		}
		h.logger.Error().Err(err).Str("username", req.Username).Msg("registration failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	// Registration signs the user in right away.
	c.SetCookie(sessionCookie(token, false))
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Registration successful",
	})
}

// Logout logs out the current user --> POST /api/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get(ctxSessionToken).(string)

	if err := h.auth.Logout(c.Request().Context(), token); err != nil {
		h.logger.Error().Err(err).Msg("logout failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	c.SetCookie(expiredSessionCookie())
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Logout successful",
	})
}

// CurrentUser gets the profile of the current user --> GET /api/auth/user
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	userID, _ := c.Get(ctxUserID).(int)

	user, err := h.auth.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Int("user_id", userID).Msg("failed to get current user")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"username":  user.Username,
		"email":     user.Email,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
	})
}

func sessionCookie(token string, remember bool) *http.Cookie {
	cookie := &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	// Without remember-me the cookie lives only for the browser session.
	if remember {
		cookie.MaxAge = int(rememberMeMaxAge.Seconds())
	}

	return cookie
}

func expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}
