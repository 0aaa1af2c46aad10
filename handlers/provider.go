package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prolink/models"
	"prolink/services/provider"
	"prolink/utils"
)

// ProviderHandler exposes professional discovery.
type ProviderHandler struct {
	Providers provider.ProviderService
}

func NewProviderHandler(providers provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Providers: providers}
}

// ListProfessionalsHandler lists available professionals, optionally
// filtered by category and caller position.
func (h *ProviderHandler) ListProfessionalsHandler(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		pros, err := h.Providers.AllAvailable(c.Request.Context())
		if err != nil {
			utils.JSONError(c, err)
			return
		}
		c.JSON(http.StatusOK, pros)
		return
	}

	lat, _ := strconv.ParseFloat(c.Query("lat"), 64)
	lon, _ := strconv.ParseFloat(c.Query("lon"), 64)
	pros, err := h.Providers.Nearby(c.Request.Context(),
		models.GeoLocation{Lat: lat, Lon: lon}, models.ServiceCategory(category))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, pros)
}

// GetProfessionalHandler returns one professional by id.
func (h *ProviderHandler) GetProfessionalHandler(c *gin.Context) {
	pro, err := h.Providers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, pro)
}
