package models

import "time"

// BookingStatus is the booking state machine:
// Pending -> Confirmed -> InProgress -> Completed, with Cancelled reachable
// from any non-terminal state. Completed and Cancelled are terminal.
type BookingStatus string

const (
	BookingPending    BookingStatus = "Pending"
	BookingConfirmed  BookingStatus = "Confirmed"
	BookingInProgress BookingStatus = "In Progress"
	BookingCompleted  BookingStatus = "Completed"
	BookingCancelled  BookingStatus = "Cancelled"
)

// Terminal reports whether the status admits no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// Booking represents a booking record. Professional is a snapshot captured
// at creation time; later changes to the live professional record do not
// rewrite it.
type Booking struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	ProfessionalID string          `json:"professionalId"`
	Professional   Professional    `json:"professional"`
	ServiceType    ServiceCategory `json:"serviceType"`
	Status         BookingStatus   `json:"status"`
	StartTime      time.Time       `json:"startTime"`
	EndTime        *time.Time      `json:"endTime,omitempty"`
	TotalPrice     float64         `json:"totalPrice"`
	LiveTracking   bool            `json:"liveTracking"` // fixed at creation
}

// Active reports whether the booking is still in flight.
func (b Booking) Active() bool {
	return !b.Status.Terminal()
}
