package api

import (
	"questfs/internal/server/config"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupRouter creates and configures the echo router with all routes and middleware.
func SetupRouter(handler *Handler, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))
	e.Use(RequestLogger())

	// Rate limiter on the endpoints a player can hammer
	limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Health & challenge catalog
	e.GET("/health", handler.HandleHealth)
	e.GET("/api/challenges", handler.HandleListChallenges)

	// Sessions
	e.POST("/api/sessions", handler.HandleCreateSession, limiter.Middleware())
	e.GET("/api/sessions/:id", handler.HandleGetSession)
	e.POST("/api/sessions/:id/exec", handler.HandleExec, limiter.Middleware())
	e.POST("/api/sessions/:id/solve", handler.HandleSolve, limiter.Middleware())
	e.GET("/api/sessions/:id/archive", handler.HandleArchive)
	e.DELETE("/api/sessions/:id", handler.HandleDeleteSession)

	return e
}
