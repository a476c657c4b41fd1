package handlers

import (
	"net/http"
	"strings"

	"refresh-tracker/internal/inventory"
	"refresh-tracker/internal/lifecycle"
	"refresh-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListComponents(kind models.ComponentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		units, err := h.Inventory.List(c.Request.Context(), kind, strings.ToUpper(c.Query("estado")))
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, units)
	}
}

func (h *Handler) GetComponent(kind models.ComponentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		unit, err := h.Inventory.Get(c.Request.Context(), kind, id)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, unit)
	}
}

func (h *Handler) CreateComponent(kind models.ComponentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in inventory.Input
		if !bind(c, &in) {
			return
		}
		unit, err := h.Inventory.Create(c.Request.Context(), kind, in, actor(c))
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, unit)
	}
}

func (h *Handler) UpdateComponent(kind models.ComponentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var in inventory.Input
		if !bind(c, &in) {
			return
		}
		unit, err := h.Inventory.Update(c.Request.Context(), kind, id, in, actor(c))
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, unit)
	}
}

func (h *Handler) DeleteComponent(kind models.ComponentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := h.Inventory.Delete(c.Request.Context(), kind, id, actor(c)); err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Componente eliminado"})
	}
}

type assignForm struct {
	EquipmentSerial string `form:"equipo_serial" json:"equipo_serial"`
}

func (h *Handler) AssignComponent(kind models.ComponentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var form assignForm
		if !bind(c, &form) {
			return
		}
		ctx := c.Request.Context()
		if err := h.Lifecycle.Assign(ctx, kind, id, form.EquipmentSerial, actor(c)); err != nil {
			h.fail(c, err)
			return
		}
		unit, err := h.Inventory.Get(ctx, kind, id)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, unit)
	}
}

type unassignForm struct {
	Notes string `form:"notas" json:"notas"`
}

func (h *Handler) UnassignComponent(kind models.ComponentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var form unassignForm
		if !bind(c, &form) {
			return
		}
		ctx := c.Request.Context()
		if err := h.Lifecycle.Unassign(ctx, kind, id, actor(c), form.Notes); err != nil {
			h.fail(c, err)
			return
		}
		unit, err := h.Inventory.Get(ctx, kind, id)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, unit)
	}
}

func (h *Handler) ComponentHistory(kind models.ComponentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		items, err := h.Lifecycle.History(c.Request.Context(), kind, id)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// HistoryFeed отдаёт движения по оборудованию (?equipo=) или последние 50.
func (h *Handler) HistoryFeed(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		items []models.ComponentHistory
		err   error
	)
	if serial := strings.TrimSpace(c.Query("equipo")); serial != "" {
		items, err = h.Lifecycle.HistoryByEquipment(ctx, serial)
	} else {
		items, err = h.Lifecycle.RecentHistory(ctx, lifecycle.RecentHistoryLimit)
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) InventorySummary(c *gin.Context) {
	ctx := c.Request.Context()
	ram, err := h.Inventory.Summary(ctx, models.KindRAM)
	if err != nil {
		h.fail(c, err)
		return
	}
	ssd, err := h.Inventory.Summary(ctx, models.KindSSD)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ram":           ram,
		"ssd":           ssd,
		"status_labels": models.ComponentStatusLabels,
	})
}
