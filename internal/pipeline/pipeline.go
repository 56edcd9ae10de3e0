// Package pipeline runs the transcript-then-summary pipeline for one video.
//
// Control flow is a single synchronous pass with one fallback edge:
//
//	fetch captions → (if absent) download audio → transcribe → summarize
//
// Stages never run concurrently; each stage's output is the next stage's
// sole input. There is no retry edge — a failed invocation is re-run only
// by the user triggering it again.
//
// Every stage failure is caught at the stage boundary: expected absences
// (no captions, no audio stream) silently drive the fallback, while real
// failures are recorded as user-visible warnings and converted to absence
// for control-flow purposes. Nothing escapes as a panic.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/Shimizu-Technology/video-summarizer-api/internal/models"
	"github.com/Shimizu-Technology/video-summarizer-api/internal/services/audio"
	"github.com/Shimizu-Technology/video-summarizer-api/internal/services/summary"
	"github.com/Shimizu-Technology/video-summarizer-api/internal/services/transcript"
)

// ErrNoSource reports that both transcript paths are exhausted: the video
// has no captions and no transcribable audio. Terminal, no retry.
var ErrNoSource = errors.New("could not obtain a transcript from captions or audio")

// ErrSummaryFailed reports that a transcript was obtained but the summary
// could not be generated. Terminal, no retry.
var ErrSummaryFailed = errors.New("summary generation failed")

// Result is the outcome of one pipeline invocation. It exists only for the
// request/response cycle — nothing is persisted.
type Result struct {
	VideoID    string
	Transcript string
	Summary    string
	Source     models.TranscriptSource

	// Warnings collects stage failure messages that were converted to
	// absence. They are shown to the user alongside the final outcome.
	Warnings []string
}

// Runner orchestrates the four pipeline stages. All stages are injected as
// interfaces so the control flow is testable without any remote service.
type Runner struct {
	fetcher     transcript.Fetcher
	extractor   audio.Extractor
	transcriber audio.Transcriber
	summarizer  summary.Summarizer
}

// NewRunner wires the pipeline stages together.
func NewRunner(f transcript.Fetcher, e audio.Extractor, t audio.Transcriber, s summary.Summarizer) *Runner {
	return &Runner{
		fetcher:     f,
		extractor:   e,
		transcriber: t,
		summarizer:  s,
	}
}

// Run executes the full pipeline for a video ID.
//
// On ErrSummaryFailed the returned Result still carries the transcript, so
// the caller can show it even though summarization fell over. On ErrNoSource
// the Result carries only the video ID and any warnings.
func (r *Runner) Run(ctx context.Context, videoID string) (*Result, error) {
	result := &Result{VideoID: videoID}

	text := r.fetchCaptions(ctx, videoID, result)

	if text == "" {
		var err error
		text, err = r.transcribeAudio(ctx, videoID, result)
		if err != nil {
			return result, err
		}
		result.Source = models.SourceAudio
	}

	result.Transcript = text

	log.Printf("🤖 Summarizing transcript for %s (%d chars, source: %s)", videoID, len(text), result.Source)
	summaryText, err := r.summarizer.Summarize(ctx, text)
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error())
		return result, fmt.Errorf("%w: %v", ErrSummaryFailed, err)
	}

	result.Summary = summaryText
	return result, nil
}

// fetchCaptions runs the primary path. An empty return means "try the audio
// fallback" — either the captions are legitimately absent or the fetch
// failed and was recorded as a warning.
func (r *Runner) fetchCaptions(ctx context.Context, videoID string, result *Result) string {
	log.Printf("📝 Fetching captions for %s", videoID)

	text, err := r.fetcher.Fetch(ctx, videoID)
	if err != nil {
		if !errors.Is(err, transcript.ErrNoTranscript) {
			result.Warnings = append(result.Warnings, err.Error())
		}
		return ""
	}

	result.Source = models.SourceCaptions
	return text
}

// transcribeAudio runs the fallback path: download the audio-only stream and
// send it to speech-to-text. The scratch file is removed on every exit path,
// success or failure.
func (r *Runner) transcribeAudio(ctx context.Context, videoID string, result *Result) (string, error) {
	log.Printf("🎧 No captions for %s, falling back to audio transcription", videoID)

	path, err := r.extractor.Download(ctx, videoID)
	if err != nil {
		if !errors.Is(err, audio.ErrNoAudioStream) {
			result.Warnings = append(result.Warnings, err.Error())
		}
		return "", ErrNoSource
	}

	defer func() {
		if err := os.Remove(path); err != nil {
			log.Printf("⚠️  Failed to remove scratch audio %s: %v", path, err)
		}
	}()

	text, err := r.transcriber.Transcribe(ctx, path)
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error())
		return "", ErrNoSource
	}

	return text, nil
}
