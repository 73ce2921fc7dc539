package users

import (
	"context"
	"sync"
	"time"

	pkgerrors "github.com/gatera900/bite-backend/pkg/errors"
	"github.com/gatera900/bite-backend/pkg/models"
	"github.com/gatera900/bite-backend/pkg/security"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = pkgerrors.New(pkgerrors.CodeValidation, "username already taken")
)

// Repository is the account store. No route exposes it yet; ordering
// is anonymous today and accounts come in with loyalty features.
type Repository interface {
	Get(ctx context.Context, id int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user models.User) (*models.User, error)
}

// MemoryRepository keeps accounts in a map guarded by a RWMutex.
// Passwords are stored as argon2id hashes.
type MemoryRepository struct {
	mu     sync.RWMutex
	users  map[int]models.User
	byName map[string]int
	nextID int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:  make(map[int]models.User),
		byName: make(map[string]int),
		nextID: 1,
	}
}

func (r *MemoryRepository) Get(ctx context.Context, id int) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[username]
	if !ok {
		return nil, ErrNotFound
	}
	user := r.users[id]
	return &user, nil
}

// Create hashes the plaintext password carried in user.Password before
// storing the record.
func (r *MemoryRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	hash, err := security.HashPassword(user.Password, security.DefaultArgonParams)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byName[user.Username]; taken {
		return nil, ErrUsernameTaken
	}

	user.ID = r.nextID
	user.Password = hash
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	user.CreatedAt = time.Now()
	r.nextID++
	r.users[user.ID] = user
	r.byName[user.Username] = user.ID
	return &user, nil
}
