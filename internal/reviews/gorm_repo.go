package reviews

import (
	"context"
	"errors"
	"time"

	"github.com/gatera900/bite-backend/pkg/models"
	"gorm.io/gorm"
)

// GormRepository is the persistent review store.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) List(ctx context.Context) ([]models.Review, error) {
	var out []models.Review
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepository) ListByOrder(ctx context.Context, orderID int) ([]models.Review, error) {
	var out []models.Review
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepository) Create(ctx context.Context, review models.Review) (*models.Review, error) {
	review.ID = 0
	review.CreatedAt = time.Now()
	if err := r.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *GormRepository) SetSentiment(ctx context.Context, id int, sentiment, confidence float64) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	review.Sentiment = &sentiment
	review.SentimentConfidence = &confidence
	if err := r.db.WithContext(ctx).Save(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}
