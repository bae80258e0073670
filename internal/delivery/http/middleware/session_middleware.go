package middleware

import (
	"net/http"

	"noteboard/config"
	"noteboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by the session middleware for handlers to use.
const (
	ContextKeyUserID      = "userID"
	ContextKeyCurrentUser = "currentUser"
)

// SessionMiddleware authenticates requests through the session cookie.
type SessionMiddleware struct {
	authUsecase usecase.AuthUsecase
	cookieName  string
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(authUsecase usecase.AuthUsecase, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		authUsecase: authUsecase,
		cookieName:  cfg.Session.CookieName,
	}
}

// Authenticate resolves the session cookie to a live user. A missing cookie,
// an unknown token and a deleted user are all reported identically.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}

		user, err := m.authUsecase.CurrentUser(c.Request().Context(), cookie.Value)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyCurrentUser, user)

		return next(c)
	}
}
