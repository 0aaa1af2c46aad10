package booking

import (
	"context"

	"go.uber.org/zap"

	"prolink/models"
	"prolink/utils"
)

func (s *DefaultBookingService) ListForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		utils.GetLogger().Error("ListForUser: failed to fetch bookings", zap.Error(err))
		return nil, err
	}
	return bookings, nil
}

func (s *DefaultBookingService) ListActive(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.listFiltered(ctx, userID, func(b models.Booking) bool { return b.Active() })
}

func (s *DefaultBookingService) ListCompleted(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.listFiltered(ctx, userID, func(b models.Booking) bool { return b.Status.Terminal() })
}

func (s *DefaultBookingService) listFiltered(ctx context.Context, userID string, keep func(models.Booking) bool) ([]models.Booking, error) {
	bookings, err := s.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *DefaultBookingService) GetDetails(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		utils.GetLogger().Error("GetDetails: failed to fetch booking", zap.Error(err))
		return nil, err
	}
	if b == nil {
		return nil, utils.NotFoundError("booking not found")
	}
	return b, nil
}
