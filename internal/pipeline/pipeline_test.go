// pipeline_test.go exercises the fallback policy and artifact cleanup with
// stub stages — no remote service is ever touched.
package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Shimizu-Technology/video-summarizer-api/internal/models"
	"github.com/Shimizu-Technology/video-summarizer-api/internal/services/audio"
	"github.com/Shimizu-Technology/video-summarizer-api/internal/services/transcript"
)

type stubFetcher struct {
	text  string
	err   error
	calls int
}

func (s *stubFetcher) Fetch(ctx context.Context, videoID string) (string, error) {
	s.calls++
	return s.text, s.err
}

type stubExtractor struct {
	path  string
	err   error
	calls int
}

func (s *stubExtractor) Download(ctx context.Context, videoID string) (string, error) {
	s.calls++
	return s.path, s.err
}

type stubTranscriber struct {
	text    string
	err     error
	gotPath string
}

func (s *stubTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	s.gotPath = path
	return s.text, s.err
}

type stubSummarizer struct {
	text string
	err  error
	got  string
}

func (s *stubSummarizer) Summarize(ctx context.Context, transcriptText string) (string, error) {
	s.got = transcriptText
	return s.text, s.err
}

// scratchFile creates a throwaway audio artifact for the fallback path.
func scratchFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audio.m4a")
	if err := os.WriteFile(path, []byte("fake audio"), 0o644); err != nil {
		t.Fatalf("failed to create scratch file: %v", err)
	}
	return path
}

func TestRun_CaptionsPath(t *testing.T) {
	const transcriptText = "Hello world this is a test."
	const stubSummary = "- greeting\n- test video"

	fetcher := &stubFetcher{text: transcriptText}
	extractor := &stubExtractor{}
	summarizer := &stubSummarizer{text: stubSummary}

	runner := NewRunner(fetcher, extractor, &stubTranscriber{}, summarizer)

	result, err := runner.Run(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if extractor.calls != 0 {
		t.Errorf("audio fallback invoked %d times, want 0", extractor.calls)
	}
	if summarizer.got != transcriptText {
		t.Errorf("summarizer received %q, want %q", summarizer.got, transcriptText)
	}
	if result.Transcript != transcriptText {
		t.Errorf("result.Transcript = %q, want %q", result.Transcript, transcriptText)
	}
	if result.Summary != stubSummary {
		t.Errorf("result.Summary = %q, want %q", result.Summary, stubSummary)
	}
	if result.Source != models.SourceCaptions {
		t.Errorf("result.Source = %q, want %q", result.Source, models.SourceCaptions)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestRun_AudioFallback(t *testing.T) {
	path := scratchFile(t)

	fetcher := &stubFetcher{err: transcript.ErrNoTranscript}
	extractor := &stubExtractor{path: path}
	transcriber := &stubTranscriber{text: "spoken words"}
	summarizer := &stubSummarizer{text: "- spoken words"}

	runner := NewRunner(fetcher, extractor, transcriber, summarizer)

	result, err := runner.Run(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if extractor.calls != 1 {
		t.Errorf("audio fallback invoked %d times, want exactly 1", extractor.calls)
	}
	if transcriber.gotPath != path {
		t.Errorf("transcriber received %q, want %q", transcriber.gotPath, path)
	}
	if result.Source != models.SourceAudio {
		t.Errorf("result.Source = %q, want %q", result.Source, models.SourceAudio)
	}
	if result.Transcript != "spoken words" {
		t.Errorf("result.Transcript = %q", result.Transcript)
	}

	// Cleanup must happen on the success path.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("scratch audio %s still exists after successful transcription", path)
	}

	// Expected absence of captions is silent — no warning.
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestRun_CleanupOnTranscriptionFailure(t *testing.T) {
	path := scratchFile(t)

	fetcher := &stubFetcher{err: transcript.ErrNoTranscript}
	extractor := &stubExtractor{path: path}
	transcriber := &stubTranscriber{err: errors.New("whisper exploded")}

	runner := NewRunner(fetcher, extractor, transcriber, &stubSummarizer{})

	result, err := runner.Run(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, ErrNoSource) {
		t.Fatalf("Run() error = %v, want ErrNoSource", err)
	}

	// Cleanup must happen on the failure path too.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("scratch audio %s still exists after failed transcription", path)
	}

	if len(result.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(result.Warnings), result.Warnings)
	}
}

func TestRun_NoSourceAtAll(t *testing.T) {
	fetcher := &stubFetcher{err: transcript.ErrNoTranscript}
	extractor := &stubExtractor{err: audio.ErrNoAudioStream}

	runner := NewRunner(fetcher, extractor, &stubTranscriber{}, &stubSummarizer{})

	result, err := runner.Run(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, ErrNoSource) {
		t.Fatalf("Run() error = %v, want ErrNoSource", err)
	}
	if extractor.calls != 1 {
		t.Errorf("audio fallback invoked %d times, want exactly 1", extractor.calls)
	}

	// Both absences are expected conditions, not failures.
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestRun_FetchFailureStillFallsBack(t *testing.T) {
	path := scratchFile(t)

	fetcher := &stubFetcher{err: errors.New("youtube returned 500")}
	extractor := &stubExtractor{path: path}
	transcriber := &stubTranscriber{text: "recovered text"}
	summarizer := &stubSummarizer{text: "- recovered"}

	runner := NewRunner(fetcher, extractor, transcriber, summarizer)

	result, err := runner.Run(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	// The hard failure is surfaced as a warning, then the fallback saves the run.
	if len(result.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(result.Warnings), result.Warnings)
	}
	if result.Transcript != "recovered text" {
		t.Errorf("result.Transcript = %q", result.Transcript)
	}
}

func TestRun_SummaryFailureKeepsTranscript(t *testing.T) {
	fetcher := &stubFetcher{text: "Hello world this is a test."}
	summarizer := &stubSummarizer{err: errors.New("model unavailable")}

	runner := NewRunner(fetcher, &stubExtractor{}, &stubTranscriber{}, summarizer)

	result, err := runner.Run(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, ErrSummaryFailed) {
		t.Fatalf("Run() error = %v, want ErrSummaryFailed", err)
	}

	// The transcript was obtained and should survive the summary failure.
	if result.Transcript != "Hello world this is a test." {
		t.Errorf("result.Transcript = %q", result.Transcript)
	}
	if result.Summary != "" {
		t.Errorf("result.Summary = %q, want empty", result.Summary)
	}
}
