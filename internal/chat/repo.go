package chat

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gatera900/bite-backend/pkg/models"
)

// Repository is the chat transcript store.
type Repository interface {
	ListBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	Create(ctx context.Context, message models.ChatMessage) (*models.ChatMessage, error)
}

// MemoryRepository keeps messages in a map guarded by a RWMutex.
type MemoryRepository struct {
	mu       sync.RWMutex
	messages map[int]models.ChatMessage
	nextID   int
	now      func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		messages: make(map[int]models.ChatMessage),
		nextID:   1,
		now:      time.Now,
	}
}

// ListBySession returns the transcript in conversation order. Messages
// created within the same clock tick fall back to insertion order.
func (r *MemoryRepository) ListBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.ChatMessage, 0)
	for _, msg := range r.messages {
		if msg.SessionID == sessionID {
			out = append(out, msg)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.Before(out[j].Timestamp)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MemoryRepository) Create(ctx context.Context, message models.ChatMessage) (*models.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	message.ID = r.nextID
	r.nextID++
	message.Timestamp = r.now()
	r.messages[message.ID] = message
	return &message, nil
}
