package catalog

import (
	"context"
	"sort"
	"sync"

	pkgerrors "github.com/gatera900/bite-backend/pkg/errors"
	"github.com/gatera900/bite-backend/pkg/models"
)

// ErrNotFound is returned when no menu item carries the requested id.
var ErrNotFound = pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")

// Repository is the menu catalog store.
type Repository interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	ListByCategory(ctx context.Context, category string) ([]models.MenuItem, error)
	Get(ctx context.Context, id int) (*models.MenuItem, error)
	Create(ctx context.Context, item models.MenuItem) (*models.MenuItem, error)
	Update(ctx context.Context, id int, patch models.MenuItemPatch) (*models.MenuItem, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// MemoryRepository keeps the catalog in a map guarded by a RWMutex.
// Ids are assigned by a monotonic counter starting past the seed data.
type MemoryRepository struct {
	mu     sync.RWMutex
	items  map[int]models.MenuItem
	nextID int
}

// NewMemoryRepository builds a store pre-populated with the sample menu.
func NewMemoryRepository() *MemoryRepository {
	repo := &MemoryRepository{
		items:  make(map[int]models.MenuItem),
		nextID: 1,
	}
	for _, item := range SeedMenuItems() {
		repo.items[item.ID] = item
		if item.ID >= repo.nextID {
			repo.nextID = item.ID + 1
		}
	}
	return repo
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(models.MenuItem) bool { return true }), nil
}

func (r *MemoryRepository) ListByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(item models.MenuItem) bool { return item.Category == category }), nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int) (*models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (r *MemoryRepository) Create(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = item
	return &item, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id int, patch models.MenuItemPatch) (*models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&item)
	r.items[id] = item
	return &item, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *MemoryRepository) collect(keep func(models.MenuItem) bool) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
