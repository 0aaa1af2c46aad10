package bookingRepo

import (
	"context"

	"prolink/database"
	"prolink/models"
)

// BookingRepository defines methods for booking data access. Bookings are
// created by a flow outside this core; the repository only reads and
// (for that flow) appends.
type BookingRepository interface {
	// GetByID retrieves a booking by ID, or nil when absent.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByUserID retrieves all bookings owned by the user.
	GetByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	// Create inserts a new booking record.
	Create(ctx context.Context, b models.Booking) error
}

// MemoryBookingRepo is the entity-store-backed implementation.
type MemoryBookingRepo struct {
	col *database.Collection
}

func NewMemoryBookingRepo(store *database.Store) (*MemoryBookingRepo, error) {
	col, err := store.Resolve(database.EntityBookings)
	if err != nil {
		return nil, err
	}
	return &MemoryBookingRepo{col: col}, nil
}

func (r *MemoryBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	doc, err := r.col.FindOne(ctx, func(d any) bool {
		b, ok := d.(models.Booking)
		return ok && b.ID == id
	})
	if err != nil || doc == nil {
		return nil, err
	}
	b := doc.(models.Booking)
	return &b, nil
}

func (r *MemoryBookingRepo) GetByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	docs, err := r.col.FindAll(ctx, func(d any) bool {
		b, ok := d.(models.Booking)
		return ok && b.UserID == userID
	})
	if err != nil {
		return nil, err
	}
	out := make([]models.Booking, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.(models.Booking))
	}
	return out, nil
}

func (r *MemoryBookingRepo) Create(ctx context.Context, b models.Booking) error {
	return r.col.Append(ctx, b)
}
