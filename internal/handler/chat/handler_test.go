package chat

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	chatmodel "github.com/defnotwig/portfolio/backend/internal/model/chat"
	"github.com/defnotwig/portfolio/backend/internal/model/kb"
	chatservice "github.com/defnotwig/portfolio/backend/internal/service/chat"
)

type faqStub struct{}

func (faqStub) List() ([]kb.Entry, error)       { return nil, nil }
func (faqStub) Match(string) (string, bool)     { return "", false }
func (faqStub) Replace([]kb.Entry) error        { return nil }
func (faqStub) Add(kb.Entry) error              { return nil }
func (faqStub) Delete(string) (kb.Entry, error) { return kb.Entry{}, kb.ErrNotFound }

var _ kb.Store = faqStub{}

func setupRouter() (*chi.Mux, *chatmodel.MemoryStore) {
	store := chatmodel.NewMemoryStore()
	svc := chatservice.NewService(store, faqStub{}, nil)
	handler := New(svc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, store
}

func postChat(t *testing.T, r http.Handler, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestChatMissingMessage(t *testing.T) {
	r, store := setupRouter()

	resp := postChat(t, r, map[string]string{"sessionId": "abc"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	messages, _ := store.History(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "abc")
	if len(messages) != 0 {
		t.Fatalf("validation failures must persist nothing, found %d records", len(messages))
	}
}

func TestChatWhitespaceMessage(t *testing.T) {
	r, _ := setupRouter()

	resp := postChat(t, r, map[string]string{"message": "   "})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestChatInvalidBody(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{not json")))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestChatTurnSucceeds(t *testing.T) {
	r, _ := setupRouter()

	resp := postChat(t, r, map[string]string{"message": "hello"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var result chatservice.Result
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.SessionID == "" {
		t.Fatal("expected a session id in the response")
	}
	if result.Provider != chatservice.ProviderRules {
		t.Fatalf("provider = %s, want %s", result.Provider, chatservice.ProviderRules)
	}
	if result.Reply == "" {
		t.Fatal("expected a non-empty reply")
	}
}

func TestChatReusesSuppliedSession(t *testing.T) {
	r, _ := setupRouter()

	resp := postChat(t, r, map[string]string{"message": "hello", "sessionId": "visitor-1"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var result chatservice.Result
	_ = json.Unmarshal(resp.Body.Bytes(), &result)
	if result.SessionID != "visitor-1" {
		t.Fatalf("sessionId = %s, want visitor-1", result.SessionID)
	}
}

func TestChatHistory(t *testing.T) {
	r, _ := setupRouter()

	if resp := postChat(t, r, map[string]string{"message": "hello", "sessionId": "visitor-2"}); resp.Code != http.StatusOK {
		t.Fatalf("seed turn failed with %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/chat/visitor-2/messages", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload struct {
		SessionID string              `json:"sessionId"`
		Messages  []chatmodel.Message `json:"messages"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(payload.Messages))
	}
	if payload.Messages[0].Sender != "user" || payload.Messages[1].Sender != "assistant" {
		t.Fatalf("unexpected transcript order: %+v", payload.Messages)
	}
}
