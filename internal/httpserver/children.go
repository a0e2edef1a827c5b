package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// childHandlers serves one collection owned by the home page.
type childHandlers[T any] struct {
	svc      childService[T]
	logger   *log.Logger
	defaults func() T
	setPage  func(*T, string)
}

func registerChildRoutes[T any](admin *gin.RouterGroup, name string, h *childHandlers[T]) {
	admin.POST("/pages/:pageID/"+name, h.create)
	admin.GET("/pages/:pageID/"+name, h.list)
	admin.GET("/"+name+"/:id", h.get)
	admin.PUT("/"+name+"/:id", h.update)
	admin.DELETE("/"+name+"/:id", h.delete)
}

func (h *childHandlers[T]) blank() T {
	if h.defaults != nil {
		return h.defaults()
	}
	var zero T
	return zero
}

func (h *childHandlers[T]) create(c *gin.Context) {
	in := h.blank()
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c, err)
		return
	}
	h.setPage(&in, c.Param("pageID"))
	created, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *childHandlers[T]) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), c.Param("pageID"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, gin.H{"results": items, "count": len(items)})
}

func (h *childHandlers[T]) get(c *gin.Context) {
	item, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *childHandlers[T]) update(c *gin.Context) {
	in := h.blank()
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c, err)
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *childHandlers[T]) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
