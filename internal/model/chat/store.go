package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the transcript log. Append creates exactly one durable record;
// there are no updates, no deduplication and no retries. When the backing
// store is unavailable the whole chat turn fails.
type Store interface {
	Append(ctx context.Context, message Message) (Message, error)
	History(ctx context.Context, sessionID string) ([]Message, error)
}

// MemoryStore implements Store with an in-memory map. It backs tests and
// dev runs without MONGO_URI; transcripts do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	messages map[string][]Message
}

// NewMemoryStore returns an empty in-memory transcript store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{messages: make(map[string][]Message)}
}

// Append stamps the message with an id and timestamp and stores it.
func (s *MemoryStore) Append(_ context.Context, message Message) (Message, error) {
	message.ID = uuid.NewString()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	s.messages[message.SessionID] = append(s.messages[message.SessionID], message)
	s.mu.Unlock()

	return message, nil
}

// History returns stored messages for the session in append order.
// Unknown sessions yield an empty transcript.
func (s *MemoryStore) History(_ context.Context, sessionID string) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := s.messages[sessionID]
	copied := make([]Message, len(messages))
	copy(copied, messages)
	return copied, nil
}
