package summary

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Tokenizer measures and cuts text in model-specific tokens. The summarizer
// takes it as an interface so tests can supply a fixed-ratio fake instead of
// loading BPE data.
type Tokenizer interface {
	Count(text string) int
	Truncate(text string, maxTokens int) string
}

// tiktokenTokenizer wraps the tiktoken encoding for a chat model.
type tiktokenTokenizer struct {
	enc *tiktoken.Tiktoken
}

// NewTokenizer returns a Tokenizer using the encoding for the given model
// (e.g. "gpt-3.5-turbo").
func NewTokenizer(model string) (Tokenizer, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer for %s: %w", model, err)
	}
	return &tiktokenTokenizer{enc: enc}, nil
}

func (t *tiktokenTokenizer) Count(text string) int {
	return len(t.enc.Encode(text, nil, nil))
}

// Truncate cuts text at an exact token boundary, keeping the first maxTokens
// tokens. Returns the input unchanged when it already fits.
func (t *tiktokenTokenizer) Truncate(text string, maxTokens int) string {
	tokens := t.enc.Encode(text, nil, nil)
	if len(tokens) <= maxTokens {
		return text
	}
	return t.enc.Decode(tokens[:maxTokens])
}
