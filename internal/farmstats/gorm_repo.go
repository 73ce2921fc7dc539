package farmstats

import (
	"context"
	"errors"

	"github.com/gatera900/bite-backend/pkg/models"
	"gorm.io/gorm"
)

// GormRepository is the persistent farm store.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) List(ctx context.Context) ([]models.FarmStats, error) {
	var out []models.FarmStats
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepository) ListByCropType(ctx context.Context, cropType string) ([]models.FarmStats, error) {
	var out []models.FarmStats
	if err := r.db.WithContext(ctx).Where("crop_type = ?", cropType).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepository) Create(ctx context.Context, stats models.FarmStats) (*models.FarmStats, error) {
	stats.ID = 0
	if err := r.db.WithContext(ctx).Create(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *GormRepository) Update(ctx context.Context, id int, patch models.FarmStatsPatch) (*models.FarmStats, error) {
	var stats models.FarmStats
	if err := r.db.WithContext(ctx).First(&stats, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	patch.Apply(&stats)
	if err := r.db.WithContext(ctx).Save(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
