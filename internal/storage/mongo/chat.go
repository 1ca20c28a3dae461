package mongo

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	chatmodel "github.com/defnotwig/portfolio/backend/internal/model/chat"
)

const messagesCollection = "chat_messages"

// MessageStore is the Mongo-backed transcript log. Appends are single
// durable inserts; there is no buffering or retry, so an unavailable
// database fails the chat turn.
type MessageStore struct {
	collection *mongo.Collection
	seq        atomic.Uint64
}

// messageDoc is the persisted shape. BSON datetimes are truncated to
// milliseconds and both records of a fast turn land in the same
// millisecond, so createdAt alone cannot order a transcript; seq breaks
// the tie. It restarts with the process, which is safe because records
// from different runs never share a millisecond.
type messageDoc struct {
	chatmodel.Message `bson:",inline"`
	Seq               uint64 `bson:"seq"`
}

// NewMessageStore returns a transcript store over the given database.
func NewMessageStore(db *mongo.Database) *MessageStore {
	return &MessageStore{collection: db.Collection(messagesCollection)}
}

// newDoc stamps the id, the timestamp and the tie-breaking sequence number.
func (s *MessageStore) newDoc(message chatmodel.Message) messageDoc {
	message.ID = uuid.NewString()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}
	return messageDoc{Message: message, Seq: s.seq.Add(1)}
}

// Append implements chat.Store.
func (s *MessageStore) Append(ctx context.Context, message chatmodel.Message) (chatmodel.Message, error) {
	doc := s.newDoc(message)
	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return chatmodel.Message{}, fmt.Errorf("insert chat message: %w", err)
	}
	return doc.Message, nil
}

// History implements chat.Store, returning the session transcript in
// chronological order. seq is the secondary key so records stamped within
// the same millisecond keep their append order.
func (s *MessageStore) History(ctx context.Context, sessionID string) ([]chatmodel.Message, error) {
	cursor, err := s.collection.Find(ctx,
		bson.D{{Key: "sessionId", Value: sessionID}},
		options.Find().SetSort(bson.D{
			{Key: "createdAt", Value: 1},
			{Key: "seq", Value: 1},
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("find chat messages: %w", err)
	}

	var messages []chatmodel.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("decode chat messages: %w", err)
	}
	return messages, nil
}
