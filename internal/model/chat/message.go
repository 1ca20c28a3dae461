package chat

import "time"

// Sender values recorded on transcript messages.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Message persists individual turns for audit/debug. Messages are
// append-only: once written they are never updated or deleted.
type Message struct {
	ID        string    `json:"id" bson:"id"`
	SessionID string    `json:"sessionId" bson:"sessionId"`
	Sender    string    `json:"sender" bson:"sender"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
