// Package audio provides the caption fallback path: downloading a video's
// audio-only stream and transcribing it via OpenAI's Whisper API.
package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/kkdai/youtube/v2"
)

// ErrNoAudioStream reports that the video exposes no audio-only MP4 stream.
// Like transcript.ErrNoTranscript, this is an expected absence, not a failure.
var ErrNoAudioStream = errors.New("no audio-only stream available for this video")

// Extractor defines the interface for downloading a video's audio track.
type Extractor interface {
	Download(ctx context.Context, videoID string) (string, error)
}

// StreamExtractor downloads audio-only streams into a scratch directory.
type StreamExtractor struct {
	client     *youtube.Client
	scratchDir string
}

// NewStreamExtractor creates an extractor that writes into scratchDir.
func NewStreamExtractor(scratchDir string) *StreamExtractor {
	return &StreamExtractor{
		client:     &youtube.Client{},
		scratchDir: scratchDir,
	}
}

// Download picks the first audio-only MP4-family stream for the video and
// saves it under the scratch directory. The caller owns the returned file
// and must remove it when done.
//
// Returns ErrNoAudioStream when the video has no matching stream.
func (e *StreamExtractor) Download(ctx context.Context, videoID string) (string, error) {
	video, err := e.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve video %s: %w", videoID, err)
	}

	format := selectAudioFormat(video.Formats)
	if format == nil {
		return "", ErrNoAudioStream
	}

	if err := os.MkdirAll(e.scratchDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}

	stream, _, err := e.client.GetStreamContext(ctx, video, format)
	if err != nil {
		return "", fmt.Errorf("failed to open audio stream: %w", err)
	}
	defer stream.Close()

	// uuid-named files keep concurrent invocations from colliding in the
	// shared scratch directory.
	path := filepath.Join(e.scratchDir, uuid.NewString()+".m4a")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create audio file: %w", err)
	}

	if _, err := io.Copy(file, stream); err != nil {
		file.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to download audio: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to finalize audio file: %w", err)
	}

	return path, nil
}

// selectAudioFormat returns the first audio-only format in the MP4 family,
// or nil if the video has none. "Audio-only" means the format carries audio
// channels but no video dimensions.
func selectAudioFormat(formats youtube.FormatList) *youtube.Format {
	for i := range formats {
		f := &formats[i]
		if f.AudioChannels == 0 {
			continue
		}
		if f.Width != 0 || f.Height != 0 {
			continue
		}
		if !strings.HasPrefix(f.MimeType, "audio/mp4") {
			continue
		}
		return f
	}
	return nil
}
