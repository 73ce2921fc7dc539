package recs

import (
	"context"
	"time"

	"github.com/gatera900/bite-backend/pkg/models"
	"gorm.io/gorm"
)

// GormRepository is the persistent recommendation store.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) ListByUserAndType(ctx context.Context, userID *int, recType string) ([]models.AIRecommendation, error) {
	query := r.db.WithContext(ctx).Order("id")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if recType != "" {
		query = query.Where("type = ?", recType)
	}

	var out []models.AIRecommendation
	if err := query.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepository) Create(ctx context.Context, rec models.AIRecommendation) (*models.AIRecommendation, error) {
	rec.ID = 0
	rec.CreatedAt = time.Now()
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}
