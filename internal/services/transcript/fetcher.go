// Package transcript fetches YouTube caption transcripts.
//
// This is the primary pipeline path: if the video carries an English caption
// track we never touch audio at all. A video with captions disabled (or with
// no usable track) is an expected condition, reported as ErrNoTranscript so
// the caller can fall back to audio transcription — it is not a failure.
package transcript

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kkdai/youtube/v2"
)

// ErrNoTranscript reports that the video has no usable English captions.
// Callers should treat this as "try the audio fallback", not as an error
// to surface.
var ErrNoTranscript = errors.New("no transcript available for this video")

// language is the only caption locale this service requests.
const language = "en"

// Fetcher defines the interface for caption transcript retrieval.
type Fetcher interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}

// CaptionFetcher retrieves caption tracks through the YouTube client.
type CaptionFetcher struct {
	client *youtube.Client
}

// NewCaptionFetcher creates a caption-based transcript fetcher.
func NewCaptionFetcher() *CaptionFetcher {
	return &CaptionFetcher{client: &youtube.Client{}}
}

// Fetch returns the English transcript for a video as a single string:
// all caption segments in original order, joined with single spaces.
//
// Returns ErrNoTranscript when captions are disabled or the track is empty;
// any other error is a genuine fetch failure.
func (f *CaptionFetcher) Fetch(ctx context.Context, videoID string) (string, error) {
	video, err := f.client.GetVideoContext(ctx, watchURL(videoID))
	if err != nil {
		return "", fmt.Errorf("failed to resolve video %s: %w", videoID, err)
	}

	segments, err := f.client.GetTranscriptCtx(ctx, video, language)
	if err != nil {
		if errors.Is(err, youtube.ErrTranscriptDisabled) {
			return "", ErrNoTranscript
		}
		return "", fmt.Errorf("failed to fetch captions for %s: %w", videoID, err)
	}

	text := JoinSegments(segments)
	if text == "" {
		return "", ErrNoTranscript
	}
	return text, nil
}

// JoinSegments concatenates caption segment texts in their original order
// with single-space separators.
func JoinSegments(segments []youtube.TranscriptSegment) string {
	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.Text == "" {
			continue
		}
		texts = append(texts, seg.Text)
	}
	return strings.Join(texts, " ")
}
