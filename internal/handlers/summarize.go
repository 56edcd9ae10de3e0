// summarize.go handles the pipeline-trigger endpoint.
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/video-summarizer-api/internal/models"
	"github.com/Shimizu-Technology/video-summarizer-api/internal/pipeline"
	"github.com/Shimizu-Technology/video-summarizer-api/internal/services/transcript"
)

// Summarize runs the full pipeline for a YouTube video and returns both the
// transcript and the generated summary.
// POST /api/v1/summarize
//
// Request body:
//
//	{"url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}
//
// The pipeline runs synchronously within the request: captions first, then
// the audio fallback, then summarization. A slow remote service holds the
// request open until the client's context is cancelled.
func (h *Handler) Summarize(c *gin.Context) {
	var req models.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Provide 'url' in the request body",
			Code:    http.StatusBadRequest,
		})
		return
	}

	_, videoID, err := transcript.ParseYouTubeURL(req.URL)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_url",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	result, err := h.Pipeline.Run(c.Request.Context(), videoID)
	if err != nil {
		h.renderPipelineError(c, result, err)
		return
	}

	c.JSON(http.StatusOK, models.SummarizeResponse{
		VideoID:    result.VideoID,
		Transcript: result.Transcript,
		Summary:    result.Summary,
		Source:     result.Source,
	})
}

// renderPipelineError maps the two terminal failure states onto responses.
// Stage warnings are folded into the message so the user sees what actually
// went wrong, not just that something did.
func (h *Handler) renderPipelineError(c *gin.Context, result *pipeline.Result, err error) {
	message := func(base string) string {
		if result != nil && len(result.Warnings) > 0 {
			return base + " (" + strings.Join(result.Warnings, "; ") + ")"
		}
		return base
	}

	switch {
	case errors.Is(err, pipeline.ErrNoSource):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "could_not_process",
			Message: message("Could not process video. Please check URL or try another video."),
			Code:    http.StatusUnprocessableEntity,
		})
	case errors.Is(err, pipeline.ErrSummaryFailed):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "summary_failed",
			Message: message("Failed to generate summary"),
			Code:    http.StatusBadGateway,
		})
	default:
		log.Printf("❌ Pipeline failed for %s: %v", c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "pipeline_error",
			Message: message("Could not process video. Please check URL or try another video."),
			Code:    http.StatusInternalServerError,
		})
	}
}
