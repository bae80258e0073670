// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"noteboard/internal/delivery/http/middleware"
	"noteboard/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	NoteHandler       *handler.NoteHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	noteHandler       *handler.NoteHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		noteHandler:       params.NoteHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes; check_session and logout handle the cookie themselves.
	e.POST("/signup", r.authHandler.Signup)
	e.POST("/login", r.authHandler.Login)
	e.GET("/check_session", r.authHandler.CheckSession)
	e.DELETE("/logout", r.authHandler.Logout)

	// Note routes require an authenticated session.
	noteGroup := e.Group("/notes")
	noteGroup.Use(r.sessionMiddleware.Authenticate)
	{
		noteGroup.GET("", r.noteHandler.List)
		noteGroup.POST("", r.noteHandler.Create)
		noteGroup.GET("/:id", r.noteHandler.Get)
		noteGroup.PATCH("/:id", r.noteHandler.Update)
		noteGroup.DELETE("/:id", r.noteHandler.Delete)
	}
}
