package provider

import (
	"context"

	"go.uber.org/zap"

	providerRepo "prolink/database/repository/provider"
	"prolink/models"
	"prolink/utils"
)

// ProviderService serves professional discovery for the booking surface.
type ProviderService interface {
	// GetByID retrieves one professional; absence is a NotFound-coded
	// error here because callers ask for a specific id.
	GetByID(ctx context.Context, id string) (*models.Professional, error)
	// Nearby lists available professionals for a category. The location is
	// accepted but not used for distance math; coordinates are opaque.
	Nearby(ctx context.Context, loc models.GeoLocation, category models.ServiceCategory) ([]models.Professional, error)
	// AllAvailable lists every available professional.
	AllAvailable(ctx context.Context) ([]models.Professional, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}

func (s *DefaultProviderService) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	pro, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		utils.GetLogger().Error("GetByID: failed to fetch professional", zap.Error(err))
		return nil, err
	}
	if pro == nil {
		return nil, utils.NotFoundError("professional not found")
	}
	return pro, nil
}

func (s *DefaultProviderService) Nearby(ctx context.Context, _ models.GeoLocation, category models.ServiceCategory) ([]models.Professional, error) {
	return s.Repo.GetByCategory(ctx, category)
}

func (s *DefaultProviderService) AllAvailable(ctx context.Context) ([]models.Professional, error) {
	return s.Repo.GetAvailable(ctx)
}
