// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"moosage/internal/delivery/api/middleware"
	"moosage/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	MoosageHandler    *handler.MoosageHandler
	HealthHandler     *handler.HealthHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	moosageHandler    *handler.MoosageHandler
	healthHandler     *handler.HealthHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		moosageHandler:    params.MoosageHandler,
		healthHandler:     params.HealthHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/verify", r.authHandler.Verify)
	}

	postsGroup := e.Group("/posts")
	postsGroup.Use(r.sessionMiddleware.Authenticate)
	{
		postsGroup.GET("", r.moosageHandler.List)
		postsGroup.POST("", r.moosageHandler.Create)
		postsGroup.GET("/:id", r.moosageHandler.Get)
		postsGroup.PUT("/:id", r.moosageHandler.Update)
		postsGroup.DELETE("/:id", r.moosageHandler.Delete)
		postsGroup.POST("/:id/like", r.moosageHandler.ToggleLike)
	}
}
