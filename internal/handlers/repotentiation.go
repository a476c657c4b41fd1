package handlers

import (
	"net/http"
	"strings"

	"refresh-tracker/internal/models"
	"refresh-tracker/internal/repotentiation"

	"github.com/gin-gonic/gin"
)

// ListRepotentiations: ?q= ищет по любому серийному номеру, ?equipo= фильтрует.
func (h *Handler) ListRepotentiations(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		items []models.Repotentiation
		err   error
	)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		items, err = h.Repotentiation.Search(ctx, q)
	} else {
		items, err = h.Repotentiation.List(ctx, c.Query("equipo"))
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) RepotentiationsByEquipment(c *gin.Context) {
	items, err := h.Repotentiation.List(c.Request.Context(), c.Param("serial"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) GetRepotentiation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rec, err := h.Repotentiation.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) CreateRepotentiation(c *gin.Context) {
	var in repotentiation.Input
	if !bind(c, &in) {
		return
	}
	rec, err := h.Repotentiation.Create(c.Request.Context(), in, actor(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *Handler) UpdateRepotentiation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in repotentiation.Input
	if !bind(c, &in) {
		return
	}
	rec, err := h.Repotentiation.Update(c.Request.Context(), id, in, actor(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) DeleteRepotentiation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Repotentiation.Delete(c.Request.Context(), id, actor(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registro eliminado"})
}

func (h *Handler) RepotentiationSummary(c *gin.Context) {
	sum, err := h.Repotentiation.Summary(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}
