// Package devserver is an in-memory stand-in for the portal backend. It
// implements the full REST surface the client consumes so that `portalctl
// dev` and the end-to-end tests run without any external service. It is
// not a production server: nothing survives a restart.
package devserver

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/plantdesk/portalctl/internal/core/domain"
)

// Options configures the stub server.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds the Echo instance with all routes registered. The
// caller owns the listener lifecycle.
func NewRouter(store *Store, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = newValidator()
	e.HTTPErrorHandler = newHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	// A per-router registry keeps repeated NewRouter calls (tests) from
	// colliding on the global one.
	registry := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "portal_dev",
		Registerer: registry,
	}))
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: registry,
	}))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// --- Dependencies ---
	authHandler := NewAuthHandler(store, opts.JWTSecret, opts.TokenTTL, log)
	portalHandler := NewPortalHandler(store, log)
	requireAuth := authMiddleware(store, opts.JWTSecret)

	api := e.Group("/api")

	// --- Public routes: login, the submission form, and the plant list
	// the form needs. ---
	api.POST("/auth/login", authHandler.Login)
	api.POST("/submissions", portalHandler.CreateSubmission)
	api.GET("/plants", portalHandler.Plants)
	api.GET("/plants/:id", portalHandler.Plant)

	// --- Authenticated routes ---
	authed := api.Group("", requireAuth)
	authed.POST("/auth/logout", authHandler.Logout)
	authed.POST("/auth/logout-all", authHandler.LogoutAll)
	authed.GET("/auth/sessions", authHandler.Sessions)
	authed.GET("/auth/profile", authHandler.Profile)
	authed.POST("/auth/change-password", authHandler.ChangePassword)
	authed.GET("/admin/users/plant/:id", authHandler.AdminsByPlant)
	authed.GET("/submissions", portalHandler.Submissions)
	authed.GET("/submissions/plant/:id", portalHandler.SubmissionsByPlant)
	authed.GET("/submissions/:id", portalHandler.Submission)
	authed.POST("/export", portalHandler.Export)

	// --- Super-admin routes ---
	super := api.Group("", requireAuth, requireRole(domain.RoleSuperAdmin))
	super.POST("/auth/register", authHandler.Register)
	super.GET("/admin/users", authHandler.Admins)
	super.DELETE("/admin/users/:id", authHandler.DeleteAdmin)
	super.POST("/admin/reset-password/:id", authHandler.ResetPassword)

	return e
}
