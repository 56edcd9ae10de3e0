package audio

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Transcriber defines the interface for speech-to-text transcription.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

// WhisperTranscriber sends audio files to OpenAI's Whisper API.
// Whisper accepts files up to 25MB; a typical audio-only MP4 stream for a
// video under an hour stays well inside that.
type WhisperTranscriber struct {
	client *openai.Client
}

// NewWhisperTranscriber creates a transcriber backed by the given client.
func NewWhisperTranscriber(client *openai.Client) *WhisperTranscriber {
	return &WhisperTranscriber{client: client}
}

// Transcribe sends the audio file at path to Whisper and returns the text.
// It never removes the file — cleanup is the caller's responsibility, and
// the pipeline guarantees it on every exit path.
func (t *WhisperTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: path,
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcription failed: %w", err)
	}

	if resp.Text == "" {
		return "", fmt.Errorf("whisper returned an empty transcription")
	}
	return resp.Text, nil
}
