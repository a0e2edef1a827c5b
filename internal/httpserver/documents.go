package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-cms/internal/domain"
)

type documentResponse struct {
	domain.Document
	URL string `json:"url"`
}

type documentHandlers struct {
	svc    documentService
	logger *log.Logger
}

func (h *documentHandlers) toResponse(d domain.Document) documentResponse {
	return documentResponse{Document: d, URL: h.svc.URL(d)}
}

func (h *documentHandlers) create(c *gin.Context) {
	var in domain.Document
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c, err)
		return
	}
	doc, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, h.toResponse(*doc))
}

func (h *documentHandlers) list(c *gin.Context) {
	docs, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	out := make([]documentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, h.toResponse(d))
	}
	c.JSON(http.StatusOK, gin.H{"results": out, "count": len(out)})
}

func (h *documentHandlers) get(c *gin.Context) {
	doc, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(*doc))
}

func (h *documentHandlers) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
