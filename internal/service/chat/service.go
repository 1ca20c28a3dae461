// Package chat implements the layered chat-response pipeline: editable FAQ
// override, rule-based intents, then the external completion provider.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/defnotwig/portfolio/backend/internal/analysis/intent"
	chatmodel "github.com/defnotwig/portfolio/backend/internal/model/chat"
	"github.com/defnotwig/portfolio/backend/internal/model/kb"
)

// Provenance tags reported with every reply.
const (
	ProviderFAQ    = "faq"
	ProviderRules  = "rules"
	ProviderGemini = "gemini"
	ProviderMock   = "mock"
)

// ErrEmptyMessage rejects blank input before anything is persisted.
var ErrEmptyMessage = errors.New("message is required")

// Completer is the external completion provider. A nil Completer means no
// credential is configured and the pipeline answers with deterministic mock
// text instead of calling the network.
type Completer interface {
	Complete(ctx context.Context, message string) (string, error)
}

// Service orchestrates one chat turn: validate, resolve the session,
// persist the inbound message, walk the resolver tiers in order, persist
// the reply. Local tiers recover their own failures; only transcript
// persistence errors fail the turn.
type Service struct {
	transcript chatmodel.Store
	faqs       kb.Store
	completer  Completer
}

// NewService wires the pipeline. completer may be nil.
func NewService(transcript chatmodel.Store, faqs kb.Store, completer Completer) *Service {
	return &Service{transcript: transcript, faqs: faqs, completer: completer}
}

// Result is the outcome of one chat turn.
type Result struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"reply"`
	Provider  string `json:"provider"`
}

// EnsureSession returns the caller-supplied session id unchanged when
// present, otherwise mints a fresh one. No uniqueness check against
// storage; 128-bit randomness makes collisions negligible.
func EnsureSession(sessionID string) string {
	if strings.TrimSpace(sessionID) != "" {
		return sessionID
	}
	return uuid.NewString()
}

// Respond runs one chat turn. Every validation-passing request yields a
// conversational reply; only transcript store failures surface as errors.
func (s *Service) Respond(ctx context.Context, sessionID, message string) (Result, error) {
	if strings.TrimSpace(message) == "" {
		return Result{}, ErrEmptyMessage
	}

	session := EnsureSession(sessionID)

	if _, err := s.transcript.Append(ctx, chatmodel.Message{
		SessionID: session,
		Sender:    chatmodel.SenderUser,
		Content:   message,
	}); err != nil {
		return Result{}, fmt.Errorf("persist user message: %w", err)
	}

	reply, provider := s.resolve(ctx, message)

	if _, err := s.transcript.Append(ctx, chatmodel.Message{
		SessionID: session,
		Sender:    chatmodel.SenderAssistant,
		Content:   reply,
	}); err != nil {
		return Result{}, fmt.Errorf("persist assistant message: %w", err)
	}

	return Result{SessionID: session, Reply: reply, Provider: provider}, nil
}

// History returns the session's transcript in append order.
func (s *Service) History(ctx context.Context, sessionID string) ([]chatmodel.Message, error) {
	return s.transcript.History(ctx, sessionID)
}

type resolver func(ctx context.Context, message string) (reply, provider string, ok bool)

// resolve walks the local tiers in order and stops at the first hit. The
// external tier is terminal and always produces text, so every turn
// completes.
func (s *Service) resolve(ctx context.Context, message string) (string, string) {
	for _, tier := range []resolver{s.resolveFAQ, s.resolveRules} {
		if reply, provider, ok := tier(ctx, message); ok {
			return reply, provider
		}
	}
	return s.resolveExternal(ctx, message)
}

// resolveFAQ checks the editable FAQ list first for keyword answers.
// Store read failures are logged inside the store and treated as a miss.
func (s *Service) resolveFAQ(_ context.Context, message string) (string, string, bool) {
	if s.faqs == nil {
		return "", "", false
	}
	if answer, ok := s.faqs.Match(message); ok {
		return answer, ProviderFAQ, true
	}
	return "", "", false
}

// resolveRules tries a fast local rule-based reply before contacting an
// LLM provider. Intents without a canned answer fall through.
func (s *Service) resolveRules(_ context.Context, message string) (string, string, bool) {
	classification := intent.Classify(message)
	if answer, ok := intent.Answer(classification.Intent); ok {
		return answer, ProviderRules, true
	}
	return "", "", false
}

// resolveExternal is the terminal tier: it always answers, which its
// signature encodes. Provider failures degrade to fixed apology text; the
// turn never fails here.
func (s *Service) resolveExternal(ctx context.Context, message string) (string, string) {
	if s.completer == nil {
		log.Printf("[chat] no completion provider configured, returning echo reply")
		reply := fmt.Sprintf("You said: \"%s\". (AI is not configured yet on the server.)", message)
		return reply, ProviderMock
	}

	text, err := s.completer.Complete(ctx, message)
	if err != nil {
		log.Printf("[chat] completion provider error: %v", err)
		return "The AI concierge ran into an issue talking to Gemini. Please try again in a moment.", ProviderGemini
	}
	if text == "" {
		return "I received your message, but couldn't generate a detailed answer. Please try rephrasing or asking something else.", ProviderGemini
	}
	return text, ProviderGemini
}
