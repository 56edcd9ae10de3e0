// Package models defines the data structures used throughout the application.
//
// Everything here is transient — a value lives for exactly one pipeline
// invocation and is never persisted. The structs are plain data containers
// with JSON tags; the `binding` tags are consumed by Gin's validator.
package models

// TranscriptSource records which pipeline path produced the transcript.
type TranscriptSource string

const (
	// SourceCaptions means the transcript came from YouTube's caption track.
	SourceCaptions TranscriptSource = "captions"
	// SourceAudio means captions were unavailable and the transcript came
	// from Whisper transcription of the downloaded audio.
	SourceAudio TranscriptSource = "audio"
)

// --- Request/Response DTOs ---

// SummarizeRequest is the JSON body for POST /api/v1/summarize.
type SummarizeRequest struct {
	URL string `json:"url" binding:"required"`
}

// SummarizeResponse is the successful pipeline result: the full transcript,
// the generated bullet summary, and which path produced the transcript.
type SummarizeResponse struct {
	VideoID    string           `json:"video_id"`
	Transcript string           `json:"transcript"`
	Summary    string           `json:"summary"`
	Source     TranscriptSource `json:"source"`
}

// ExportRequest is the JSON body for POST /api/v1/export.
// The client holds the text (nothing is stored server-side), so the download
// endpoint echoes it back as a plain-text attachment.
type ExportRequest struct {
	Kind    string `json:"kind" binding:"required,oneof=transcript summary"`
	Content string `json:"content" binding:"required"`
}

// ErrorResponse is a standard error format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Summarizer string `json:"summarizer"` // "configured" or "missing api key"
}
