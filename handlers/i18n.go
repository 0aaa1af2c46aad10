package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prolink/services/i18n"
	"prolink/utils"
)

// TranslationHandler serves label bundles by language tag.
type TranslationHandler struct {
	Translations i18n.TranslationService
}

func NewTranslationHandler(svc i18n.TranslationService) *TranslationHandler {
	return &TranslationHandler{Translations: svc}
}

func (h *TranslationHandler) GetTranslationsHandler(c *gin.Context) {
	labels, err := h.Translations.Translations(c.Request.Context(), c.Param("lang"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, labels)
}
