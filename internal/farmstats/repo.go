package farmstats

import (
	"context"
	"sort"
	"sync"

	pkgerrors "github.com/gatera900/bite-backend/pkg/errors"
	"github.com/gatera900/bite-backend/pkg/models"
)

// ErrNotFound is returned when no farm record carries the requested id.
var ErrNotFound = pkgerrors.New(pkgerrors.CodeNotFound, "farm stats not found")

// Repository is the partner-farm reference store.
type Repository interface {
	List(ctx context.Context) ([]models.FarmStats, error)
	ListByCropType(ctx context.Context, cropType string) ([]models.FarmStats, error)
	Create(ctx context.Context, stats models.FarmStats) (*models.FarmStats, error)
	Update(ctx context.Context, id int, patch models.FarmStatsPatch) (*models.FarmStats, error)
}

// MemoryRepository keeps farm records in a map guarded by a RWMutex.
type MemoryRepository struct {
	mu     sync.RWMutex
	stats  map[int]models.FarmStats
	nextID int
}

// NewMemoryRepository builds a store pre-populated with the partner farms.
func NewMemoryRepository() *MemoryRepository {
	repo := &MemoryRepository{
		stats:  make(map[int]models.FarmStats),
		nextID: 1,
	}
	for _, farm := range SeedFarmStats() {
		repo.stats[farm.ID] = farm
		if farm.ID >= repo.nextID {
			repo.nextID = farm.ID + 1
		}
	}
	return repo
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.FarmStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(models.FarmStats) bool { return true }), nil
}

func (r *MemoryRepository) ListByCropType(ctx context.Context, cropType string) ([]models.FarmStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(farm models.FarmStats) bool { return farm.CropType == cropType }), nil
}

func (r *MemoryRepository) Create(ctx context.Context, stats models.FarmStats) (*models.FarmStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats.ID = r.nextID
	r.nextID++
	r.stats[stats.ID] = stats
	return &stats, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id int, patch models.FarmStatsPatch) (*models.FarmStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&stats)
	r.stats[id] = stats
	return &stats, nil
}

func (r *MemoryRepository) collect(keep func(models.FarmStats) bool) []models.FarmStats {
	out := make([]models.FarmStats, 0, len(r.stats))
	for _, farm := range r.stats {
		if keep(farm) {
			out = append(out, farm)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
