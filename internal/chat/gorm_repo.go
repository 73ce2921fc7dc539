package chat

import (
	"context"
	"time"

	"github.com/gatera900/bite-backend/pkg/models"
	"gorm.io/gorm"
)

// GormRepository is the persistent transcript store.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) ListBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp, id").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepository) Create(ctx context.Context, message models.ChatMessage) (*models.ChatMessage, error) {
	message.ID = 0
	message.Timestamp = time.Now()
	if err := r.db.WithContext(ctx).Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}
