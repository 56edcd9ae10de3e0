// Package handlers contains HTTP handler functions for the API.
//
// Handlers are grouped on a struct holding shared dependencies, so tests
// can construct a Handler around stub services.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/video-summarizer-api/internal/models"
	"github.com/Shimizu-Technology/video-summarizer-api/internal/pipeline"
)

// Version is reported by the health endpoint; overridden at build time.
var Version = "1.0.0"

// Runner runs the summarization pipeline for one video. Satisfied by
// *pipeline.Runner; tests substitute a stub.
type Runner interface {
	Run(ctx context.Context, videoID string) (*pipeline.Result, error)
}

// Handler holds shared dependencies for all HTTP handlers.
type Handler struct {
	Pipeline             Runner
	SummarizerConfigured bool
}

// NewHandler creates a new handler with all dependencies.
func NewHandler(p Runner, summarizerConfigured bool) *Handler {
	return &Handler{
		Pipeline:             p,
		SummarizerConfigured: summarizerConfigured,
	}
}

// HealthCheck returns the API health status.
// GET /api/v1/health
func (h *Handler) HealthCheck(c *gin.Context) {
	summarizer := "configured"
	if !h.SummarizerConfigured {
		summarizer = "missing api key"
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:     "ok",
		Version:    Version,
		Summarizer: summarizer,
	})
}
