package orders

import (
	"context"
	"sort"
	"sync"
	"time"

	pkgerrors "github.com/gatera900/bite-backend/pkg/errors"
	"github.com/gatera900/bite-backend/pkg/models"
)

// ErrNotFound is returned when no order carries the requested id.
var ErrNotFound = pkgerrors.New(pkgerrors.CodeNotFound, "order not found")

// Repository is the order store.
type Repository interface {
	List(ctx context.Context) ([]models.Order, error)
	ListByUser(ctx context.Context, userID int) ([]models.Order, error)
	Get(ctx context.Context, id int) (*models.Order, error)
	Create(ctx context.Context, order models.Order) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) (*models.Order, error)
}

// MemoryRepository keeps orders in a map guarded by a RWMutex.
type MemoryRepository struct {
	mu     sync.RWMutex
	orders map[int]models.Order
	nextID int
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		orders: make(map[int]models.Order),
		nextID: 1,
		now:    time.Now,
	}
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(models.Order) bool { return true }), nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(order models.Order) bool {
		return order.UserID != nil && *order.UserID == userID
	}), nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &order, nil
}

func (r *MemoryRepository) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = r.nextID
	r.nextID++
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	order.CreatedAt = r.now()
	order.CompletedAt = nil
	r.orders[order.ID] = order
	return &order, nil
}

// UpdateStatus overwrites the status as given. The completion timestamp
// is stamped the first time an order reaches "completed" and never
// touched again.
func (r *MemoryRepository) UpdateStatus(ctx context.Context, id int, status string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	order.Status = status
	if status == models.OrderStatusCompleted && order.CompletedAt == nil {
		now := r.now()
		order.CompletedAt = &now
	}
	r.orders[id] = order
	return &order, nil
}

func (r *MemoryRepository) collect(keep func(models.Order) bool) []models.Order {
	out := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if keep(order) {
			out = append(out, order)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
