package recs

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gatera900/bite-backend/pkg/models"
)

// Repository stores generated recommendation sets.
type Repository interface {
	ListByUserAndType(ctx context.Context, userID *int, recType string) ([]models.AIRecommendation, error)
	Create(ctx context.Context, rec models.AIRecommendation) (*models.AIRecommendation, error)
}

// MemoryRepository keeps recommendation sets in a map guarded by a
// RWMutex.
type MemoryRepository struct {
	mu     sync.RWMutex
	recs   map[int]models.AIRecommendation
	nextID int
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		recs:   make(map[int]models.AIRecommendation),
		nextID: 1,
		now:    time.Now,
	}
}

// ListByUserAndType filters on whichever of the two criteria are set.
func (r *MemoryRepository) ListByUserAndType(ctx context.Context, userID *int, recType string) ([]models.AIRecommendation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.AIRecommendation, 0)
	for _, rec := range r.recs {
		if userID != nil && (rec.UserID == nil || *rec.UserID != *userID) {
			continue
		}
		if recType != "" && rec.Type != recType {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) Create(ctx context.Context, rec models.AIRecommendation) (*models.AIRecommendation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.ID = r.nextID
	r.nextID++
	rec.CreatedAt = r.now()
	r.recs[rec.ID] = rec
	return &rec, nil
}
