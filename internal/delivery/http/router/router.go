// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"watchdesk/internal/delivery/http/middleware"
	"watchdesk/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DashboardHandler  *handler.DashboardHandler
	APIHandler        *handler.APIHandler
	SessionHandler    *handler.SessionHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	dashboardHandler  *handler.DashboardHandler
	apiHandler        *handler.APIHandler
	sessionHandler    *handler.SessionHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		dashboardHandler:  params.DashboardHandler,
		apiHandler:        params.APIHandler,
		sessionHandler:    params.SessionHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes
	e.GET("/login", r.sessionHandler.LoginPage)
	e.POST("/login", r.sessionHandler.Login)
	e.POST("/logout", r.sessionHandler.Logout)

	// Dashboard pages and fragments, behind the session gate
	e.GET("/", r.dashboardHandler.Page, r.sessionMiddleware.Authenticate)

	dashboardGroup := e.Group("/dashboard")
	dashboardGroup.Use(r.sessionMiddleware.Authenticate)
	{
		dashboardGroup.GET("/tab/:tab", r.dashboardHandler.Tab)
		dashboardGroup.GET("/stats", r.dashboardHandler.Stats)
		dashboardGroup.GET("/stream", r.dashboardHandler.Stream)
		dashboardGroup.GET("/case/:id/modal", r.dashboardHandler.CaseModal)
		dashboardGroup.GET("/alert/:id/modal", r.dashboardHandler.AlertModal)
	}

	// JSON API, behind the session gate
	apiGroup := e.Group("/api")
	apiGroup.Use(r.sessionMiddleware.Authenticate)
	{
		apiGroup.GET("/cases", r.apiHandler.ListCases)
		apiGroup.GET("/alerts", r.apiHandler.ListAlerts)
		apiGroup.GET("/stats", r.apiHandler.GetStats)
		apiGroup.POST("/cases/:id/resolve", r.apiHandler.ResolveCase)
		apiGroup.POST("/alerts/:id/resolve", r.apiHandler.ResolveAlert)
	}
}
