// Package summary generates AI bullet summaries of video transcripts via
// the OpenAI chat completions API.
package summary

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// TokenBudget is the ceiling on tokenized input length. Transcripts
	// above it are truncated before being sent for summarization.
	TokenBudget = 3000

	// charsPerToken is the empirical character-per-token ratio used to cap
	// the truncated text's character length at TokenBudget × 3.5.
	charsPerToken = 3.5

	// maxSummaryTokens caps the model's output length.
	maxSummaryTokens = 500

	// temperature keeps the summary close to the source material.
	temperature = 0.3

	systemPrompt = "You are a helpful assistant that summarizes video transcripts."
	userPrompt   = "Create a detailed summary with key points in bullet format:\n\n"
)

// Summarizer defines the interface for transcript summarization.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

// Service generates summaries through a chat completion model.
type Service struct {
	client    *openai.Client
	model     string
	tokenizer Tokenizer
}

// New creates a summary service for the given chat model.
func New(client *openai.Client, model string, tokenizer Tokenizer) *Service {
	return &Service{
		client:    client,
		model:     model,
		tokenizer: tokenizer,
	}
}

// Summarize sends the transcript to the chat model with a fixed two-message
// prompt and returns the first completion's text. Input over the token
// budget is truncated first; input under it goes through unmodified.
func (s *Service) Summarize(ctx context.Context, transcript string) (string, error) {
	if transcript == "" {
		return "", fmt.Errorf("cannot summarize an empty transcript")
	}

	text := s.truncateToBudget(transcript)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt + text},
		},
		Temperature: temperature,
		MaxTokens:   maxSummaryTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion returned by model")
	}

	return resp.Choices[0].Message.Content, nil
}

// truncateToBudget returns the transcript unchanged when it fits the token
// budget. Over budget, it cuts at the exact token boundary and then clamps
// to TokenBudget × charsPerToken characters, so the character ceiling holds
// even for token sequences that decode long.
func (s *Service) truncateToBudget(transcript string) string {
	if s.tokenizer.Count(transcript) <= TokenBudget {
		return transcript
	}

	text := s.tokenizer.Truncate(transcript, TokenBudget)

	maxChars := int(TokenBudget * charsPerToken)
	if len(text) > maxChars {
		text = text[:maxChars]
	}
	return text
}
