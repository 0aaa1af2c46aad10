package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prolink/services/tracking"
	"prolink/utils"
)

// TrackingHandler bridges a tracking session onto a server-sent event
// stream.
type TrackingHandler struct {
	Tracking tracking.TrackingService
}

func NewTrackingHandler(svc tracking.TrackingService) *TrackingHandler {
	return &TrackingHandler{Tracking: svc}
}

// StreamHandler opens a tracking session for the professional and pushes
// position and ETA events until the client disconnects. Disconnect cancels
// the session; a failed open allocates nothing.
func (h *TrackingHandler) StreamHandler(c *gin.Context) {
	session, err := h.Tracking.OpenStream(c.Request.Context(), c.Param("professionalId"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	defer session.Cancel()

	utils.GetLogger().Debug("location stream attached",
		zap.String("professionalId", c.Param("professionalId")))

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case loc, ok := <-session.Locations:
			if !ok {
				return false
			}
			c.SSEvent("location", loc)
		case eta, ok := <-session.ETA:
			if !ok {
				return false
			}
			c.SSEvent("eta", eta)
		}
		return true
	})
}
