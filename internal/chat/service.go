package chat

import (
	"context"

	"github.com/gatera900/bite-backend/pkg/logger"
	"github.com/gatera900/bite-backend/pkg/models"
)

// FallbackReply is sent when the assistant cannot produce a response.
const FallbackReply = "I'm experiencing technical difficulties. Please call our restaurant at (555) 123-BITE for assistance."

// Responder produces the assistant side of a conversation turn.
type Responder interface {
	Respond(ctx context.Context, message string) (string, error)
}

// Service records both sides of each chat turn. The customer message
// is stored before the assistant is consulted so the transcript keeps
// the turn even when the assistant is down.
type Service struct {
	repo      Repository
	responder Responder
	logg      *logger.Logger
}

func NewService(repo Repository, responder Responder, logg *logger.Logger) *Service {
	return &Service{repo: repo, responder: responder, logg: logg}
}

func (s *Service) History(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	return s.repo.ListBySession(ctx, sessionID)
}

// Exchange stores the customer message, asks the assistant, stores the
// reply, and returns the stored bot row.
func (s *Service) Exchange(ctx context.Context, sessionID, message string) (*models.ChatMessage, error) {
	if _, err := s.repo.Create(ctx, models.ChatMessage{
		SessionID: sessionID,
		Message:   message,
		IsBot:     false,
	}); err != nil {
		return nil, err
	}

	reply := FallbackReply
	if s.responder != nil {
		got, err := s.responder.Respond(ctx, message)
		if err != nil {
			s.logg.Error(ctx, "assistant reply failed, sending fallback", err)
		} else {
			reply = got
		}
	}

	return s.repo.Create(ctx, models.ChatMessage{
		SessionID: sessionID,
		Message:   reply,
		IsBot:     true,
	})
}
