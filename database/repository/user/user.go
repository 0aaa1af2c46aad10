package userRepo

import (
	"context"

	"prolink/database"
	"prolink/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID, or nil when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, or nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Count reports how many users are stored.
	Count(ctx context.Context) (int, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user models.User) error
}

// MemoryUserRepo is the entity-store-backed implementation.
type MemoryUserRepo struct {
	col *database.Collection
}

func NewMemoryUserRepo(store *database.Store) (*MemoryUserRepo, error) {
	col, err := store.Resolve(database.EntityUsers)
	if err != nil {
		return nil, err
	}
	return &MemoryUserRepo{col: col}, nil
}

func (r *MemoryUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	doc, err := r.col.FindOne(ctx, func(d any) bool {
		u, ok := d.(models.User)
		return ok && u.ID == id
	})
	if err != nil || doc == nil {
		return nil, err
	}
	u := doc.(models.User)
	return &u, nil
}

func (r *MemoryUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	doc, err := r.col.FindOne(ctx, func(d any) bool {
		u, ok := d.(models.User)
		return ok && u.Email == email
	})
	if err != nil || doc == nil {
		return nil, err
	}
	u := doc.(models.User)
	return &u, nil
}

func (r *MemoryUserRepo) Count(ctx context.Context) (int, error) {
	return r.col.Count(ctx)
}

func (r *MemoryUserRepo) Create(ctx context.Context, user models.User) error {
	return r.col.Append(ctx, user)
}

// Collection exposes the underlying handle so tests can toggle simulated
// outage.
func (r *MemoryUserRepo) Collection() *database.Collection {
	return r.col
}
