package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-cms/internal/domain"
)

type homeHandlers struct {
	svc    homePageService
	logger *log.Logger
}

func (h *homeHandlers) create(c *gin.Context) {
	in := domain.DefaultHomePage()
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c, err)
		return
	}
	page, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, page)
}

func (h *homeHandlers) get(c *gin.Context) {
	page, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// update replaces the page; fields missing from the body fall back to the
// page defaults.
func (h *homeHandlers) update(c *gin.Context) {
	in := domain.DefaultHomePage()
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c, err)
		return
	}
	page, err := h.svc.Update(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *homeHandlers) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context()); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
