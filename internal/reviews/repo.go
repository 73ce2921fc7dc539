package reviews

import (
	"context"
	"sort"
	"sync"
	"time"

	pkgerrors "github.com/gatera900/bite-backend/pkg/errors"
	"github.com/gatera900/bite-backend/pkg/models"
)

// ErrNotFound is returned when no review carries the requested id.
var ErrNotFound = pkgerrors.New(pkgerrors.CodeNotFound, "review not found")

// Repository is the review store.
type Repository interface {
	List(ctx context.Context) ([]models.Review, error)
	ListByOrder(ctx context.Context, orderID int) ([]models.Review, error)
	Create(ctx context.Context, review models.Review) (*models.Review, error)
	SetSentiment(ctx context.Context, id int, sentiment, confidence float64) (*models.Review, error)
}

// MemoryRepository keeps reviews in a map guarded by a RWMutex.
type MemoryRepository struct {
	mu      sync.RWMutex
	reviews map[int]models.Review
	nextID  int
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		reviews: make(map[int]models.Review),
		nextID:  1,
		now:     time.Now,
	}
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(models.Review) bool { return true }), nil
}

func (r *MemoryRepository) ListByOrder(ctx context.Context, orderID int) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(review models.Review) bool {
		return review.OrderID != nil && *review.OrderID == orderID
	}), nil
}

func (r *MemoryRepository) Create(ctx context.Context, review models.Review) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	review.ID = r.nextID
	r.nextID++
	review.CreatedAt = r.now()
	r.reviews[review.ID] = review
	return &review, nil
}

func (r *MemoryRepository) SetSentiment(ctx context.Context, id int, sentiment, confidence float64) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	review, ok := r.reviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	review.Sentiment = &sentiment
	review.SentimentConfidence = &confidence
	r.reviews[id] = review
	return &review, nil
}

func (r *MemoryRepository) collect(keep func(models.Review) bool) []models.Review {
	out := make([]models.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		if keep(review) {
			out = append(out, review)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
