package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prolink/middleware"
	"prolink/services/booking"
	"prolink/utils"
)

// BookingHandler exposes the booking lifecycle queries.
type BookingHandler struct {
	Bookings booking.BookingService
}

func NewBookingHandler(bookings booking.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

// ListBookingsHandler returns the acting user's bookings. The optional
// "state" query selects the active or completed subset.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var err error
	var out any
	switch c.Query("state") {
	case "active":
		out, err = h.Bookings.ListActive(c.Request.Context(), userID)
	case "completed":
		out, err = h.Bookings.ListCompleted(c.Request.Context(), userID)
	default:
		out, err = h.Bookings.ListForUser(c.Request.Context(), userID)
	}
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// BookingDetailsHandler returns one booking with its tracking
// eligibility, so callers gate stream creation on the served predicate.
func (h *BookingHandler) BookingDetailsHandler(c *gin.Context) {
	b, err := h.Bookings.GetDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":          b,
		"trackingEligible": booking.TrackingEligible(*b),
	})
}
