// Package ai wraps the Gemini generative-language API used as the chat
// pipeline's final resolution tier.
package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/defnotwig/portfolio/backend/internal/config"
)

// Service sends grounded prompts to Gemini. Construct it only when a
// credential is configured; callers treat a nil *Service as "provider
// unavailable" and fall back to deterministic mock replies.
type Service struct {
	client *genai.Client
	model  string
}

// NewService creates a Gemini-backed completion service.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("GEMINI_API_KEY is not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Service{client: client, model: cfg.Model}, nil
}

// Model returns the configured model name, for startup logging.
func (s *Service) Model() string {
	return s.model
}

// Complete sends the user message, prefixed with the grounding facts, as a
// single generateContent request and returns the first candidate's trimmed
// text. An empty string with a nil error means the provider answered with
// no usable candidate; the caller decides the presentation text.
//
// One request, no retry; cancellation and deadlines ride on ctx.
func (s *Service) Complete(ctx context.Context, message string) (string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(BuildPrompt(message)), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generateContent: %w", err)
	}

	return strings.TrimSpace(firstCandidateText(resp)), nil
}

func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}
	part := candidate.Content.Parts[0]
	if part == nil {
		return ""
	}
	return part.Text
}
