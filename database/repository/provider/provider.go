package providerRepo

import (
	"context"

	"prolink/database"
	"prolink/models"
)

// ProviderRepository defines methods for professional data access.
type ProviderRepository interface {
	// GetByID retrieves a professional by ID, or nil when absent.
	GetByID(ctx context.Context, id string) (*models.Professional, error)
	// GetAvailable retrieves all currently available professionals.
	GetAvailable(ctx context.Context) ([]models.Professional, error)
	// GetByCategory retrieves available professionals offering the category.
	GetByCategory(ctx context.Context, category models.ServiceCategory) ([]models.Professional, error)
	// Update replaces the stored record matching the professional's ID.
	Update(ctx context.Context, pro models.Professional) error
}

// MemoryProviderRepo is the entity-store-backed implementation.
type MemoryProviderRepo struct {
	col *database.Collection
}

func NewMemoryProviderRepo(store *database.Store) (*MemoryProviderRepo, error) {
	col, err := store.Resolve(database.EntityProfessionals)
	if err != nil {
		return nil, err
	}
	return &MemoryProviderRepo{col: col}, nil
}

func (r *MemoryProviderRepo) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	doc, err := r.col.FindOne(ctx, func(d any) bool {
		p, ok := d.(models.Professional)
		return ok && p.ID == id
	})
	if err != nil || doc == nil {
		return nil, err
	}
	p := doc.(models.Professional)
	return &p, nil
}

func (r *MemoryProviderRepo) GetAvailable(ctx context.Context) ([]models.Professional, error) {
	docs, err := r.col.FindAll(ctx, func(d any) bool {
		p, ok := d.(models.Professional)
		return ok && p.Availability
	})
	if err != nil {
		return nil, err
	}
	return asProfessionals(docs), nil
}

func (r *MemoryProviderRepo) GetByCategory(ctx context.Context, category models.ServiceCategory) ([]models.Professional, error) {
	docs, err := r.col.FindAll(ctx, func(d any) bool {
		p, ok := d.(models.Professional)
		return ok && p.ServiceType == category && p.Availability
	})
	if err != nil {
		return nil, err
	}
	return asProfessionals(docs), nil
}

func (r *MemoryProviderRepo) Update(ctx context.Context, pro models.Professional) error {
	_, err := r.col.Update(ctx,
		func(d any) bool {
			p, ok := d.(models.Professional)
			return ok && p.ID == pro.ID
		},
		func(any) any { return pro },
	)
	return err
}

// Collection exposes the underlying handle so tests can toggle simulated
// outage.
func (r *MemoryProviderRepo) Collection() *database.Collection {
	return r.col
}

func asProfessionals(docs []any) []models.Professional {
	out := make([]models.Professional, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.(models.Professional))
	}
	return out
}
