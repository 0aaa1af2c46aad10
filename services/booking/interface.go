package booking

import (
	"context"

	bookingRepo "prolink/database/repository/booking"
	"prolink/models"
)

// BookingService exposes the booking lifecycle's queries. Transitions are
// triggered outside this core; the service reports state truthfully and
// never mutates it.
type BookingService interface {
	// ListForUser returns all bookings owned by the user, each carrying
	// the professional snapshot captured at creation time.
	ListForUser(ctx context.Context, userID string) ([]models.Booking, error)
	// ListActive returns the user's bookings that are not terminal.
	ListActive(ctx context.Context, userID string) ([]models.Booking, error)
	// ListCompleted returns the user's bookings in a terminal state.
	ListCompleted(ctx context.Context, userID string) ([]models.Booking, error)
	// GetDetails returns one booking or a NotFound-coded error.
	GetDetails(ctx context.Context, bookingID string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}

// TrackingEligible is the gating predicate every caller must apply before
// opening a location stream for a booking's professional.
func TrackingEligible(b models.Booking) bool {
	return b.LiveTracking && b.Status == models.BookingInProgress
}
