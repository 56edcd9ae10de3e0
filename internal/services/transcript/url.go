package transcript

import (
	"fmt"
	"regexp"
	"strings"
)

// videoIDPattern matches a bare 11-character YouTube video ID.
var videoIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// urlPatterns cover the YouTube URL shapes users actually paste.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/shorts/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/live/)([a-zA-Z0-9_-]{11})`),
}

// ParseYouTubeURL extracts the video ID from various YouTube URL formats.
// Supports:
//   - https://www.youtube.com/watch?v=VIDEO_ID (with or without extra params)
//   - https://youtu.be/VIDEO_ID
//   - https://youtube.com/embed/VIDEO_ID, /v/VIDEO_ID
//   - https://youtube.com/shorts/VIDEO_ID, /live/VIDEO_ID
//   - Just the video ID itself (11 characters)
//
// Returns the canonical watch URL and the video ID.
func ParseYouTubeURL(input string) (string, string, error) {
	input = strings.TrimSpace(input)

	if videoIDPattern.MatchString(input) {
		return watchURL(input), input, nil
	}

	for _, pattern := range urlPatterns {
		if matches := pattern.FindStringSubmatch(input); len(matches) >= 2 {
			return watchURL(matches[1]), matches[1], nil
		}
	}

	return "", "", fmt.Errorf("invalid YouTube URL or video ID: %s", input)
}

func watchURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)
}
