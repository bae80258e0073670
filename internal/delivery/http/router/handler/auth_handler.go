// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"noteboard/config"
	"noteboard/internal/delivery/http/response"
	domainerrors "noteboard/internal/domain/errors"
	"noteboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for signup, login and session handlers.
type AuthHandler struct {
	uc      usecase.AuthUsecase
	logger  *slog.Logger
	session *config.SessionConfig
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		uc:      uc,
		logger:  logger,
		session: cfg.Session,
	}
}

// Signup handles account registration. Success establishes a session.
func (h *AuthHandler) Signup(c echo.Context) error {
	// Bind into a value so an empty or null body yields a zero struct for
	// the validator rather than a nil input.
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.ErrorList(c, http.StatusBadRequest, "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return response.ErrorList(c, http.StatusBadRequest, "Username, password, and password confirmation are required")
	}

	output, err := h.uc.Signup(c.Request().Context(), &input)
	if err != nil {
		return h.renderAuthError(c, err)
	}

	h.setSessionCookie(c, output.Token)

	return response.JSON(c, http.StatusCreated, response.NewUserResponse(output.User))
}

// Login handles credential verification. Success rotates the session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.ErrorList(c, http.StatusBadRequest, "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return response.ErrorList(c, http.StatusBadRequest, "Username and password are required")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return h.renderAuthError(c, err)
	}

	h.setSessionCookie(c, output.Token)

	return response.JSON(c, http.StatusOK, response.NewUserResponse(output.User))
}

// CheckSession resolves the session cookie to the current user. Every failure
// mode answers 401 with an empty object body.
func (h *AuthHandler) CheckSession(c echo.Context) error {
	cookie, err := c.Cookie(h.session.CookieName)
	if err != nil || cookie.Value == "" {
		return response.Empty(c, http.StatusUnauthorized)
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), cookie.Value)
	if err != nil {
		return response.Empty(c, http.StatusUnauthorized)
	}

	return response.JSON(c, http.StatusOK, response.NewUserResponse(user))
}

// Logout destroys the session and expires the cookie. Logging out without a
// session is not an error.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.session.CookieName); err == nil && cookie.Value != "" {
		if err := h.uc.Logout(c.Request().Context(), cookie.Value); err != nil {
			h.logger.Warn("Logout failed to destroy session", slog.Any("error", err))
		}
	}

	h.clearSessionCookie(c)

	return c.NoContent(http.StatusNoContent)
}

// renderAuthError maps usecase errors to the auth-endpoint failure shape.
func (h *AuthHandler) renderAuthError(c echo.Context, err error) error {
	var dbErr *domainerrors.DatabaseExecuteError
	if errors.As(err, &dbErr) {
		return response.ErrorList(c, http.StatusUnprocessableEntity, dbErr.Details())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.ErrorList(c, appErr.HTTPCode(), appErr.Message())
	}

	h.logger.Error("Auth request failed", slog.Any("error", err))

	return response.ErrorList(c, http.StatusInternalServerError, "Internal server error")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     h.session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.session.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
