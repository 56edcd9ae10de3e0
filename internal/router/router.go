// Package router sets up all HTTP routes for the API.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/video-summarizer-api/internal/handlers"
	"github.com/Shimizu-Technology/video-summarizer-api/internal/middleware"
)

// Setup creates and configures the Gin router with all routes.
func Setup(h *handlers.Handler, allowedOrigins []string, staticDir string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS(allowedOrigins))

	r.GET("/api/v1/health", h.HealthCheck)
	r.POST("/api/v1/summarize", h.Summarize)
	r.POST("/api/v1/export", h.Export)

	// The form UI: one URL field, one trigger, transcript + summary panes.
	if staticDir != "" {
		r.StaticFile("/", staticDir+"/index.html")
		r.Static("/static", staticDir)
	}

	return r
}
