// export.go handles the plain-text download endpoints.
//
// Nothing is stored server-side, so the client sends the text back and the
// server turns it into an attachment. Filenames are fixed: transcript.txt
// for transcripts, summary.txt for summaries.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/video-summarizer-api/internal/models"
)

// exportFilenames maps the export kind to its download filename.
var exportFilenames = map[string]string{
	"transcript": "transcript.txt",
	"summary":    "summary.txt",
}

// Export returns the posted text as a plain-text file download.
// POST /api/v1/export
//
// Request body:
//
//	{"kind": "transcript", "content": "full transcript text..."}
//
// Response headers are set for file download:
//   - Content-Type: text/plain
//   - Content-Disposition: attachment with the fixed filename
func (h *Handler) Export(c *gin.Context) {
	var req models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Provide 'kind' (transcript or summary) and non-empty 'content'",
			Code:    http.StatusBadRequest,
		})
		return
	}

	filename := exportFilenames[req.Kind]

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(req.Content))
}
