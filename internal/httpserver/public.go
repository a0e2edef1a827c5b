package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-cms/internal/domain"
	"portfolio-cms/internal/i18n"
)

func schemaHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entities": domain.Schemas()})
}

type publicHandlers struct {
	svc         portfolioService
	logger      *log.Logger
	defaultLang string
}

// portfolio serves the localized home page. ?lang= wins over Accept-Language.
func (h *publicHandlers) portfolio(c *gin.Context) {
	lang := i18n.Resolve(c.Query(i18n.LangParam), c.GetHeader("Accept-Language"), h.defaultLang)
	view, err := h.svc.View(c.Request.Context(), lang)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Header("Content-Language", lang)
	c.Header("Vary", "Accept-Language")
	c.JSON(http.StatusOK, view)
}
