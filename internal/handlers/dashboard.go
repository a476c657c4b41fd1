package handlers

import (
	"net/http"

	"refresh-tracker/internal/dashboard"
	"refresh-tracker/internal/equipment"
	"refresh-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// DashboardSummary отдаёт сводку по оборудованию с фильтрами из query.
func (h *Handler) DashboardSummary(c *gin.Context) {
	var f equipment.Filters
	if !bind(c, &f) {
		return
	}
	sum, err := h.Equipment.Summary(c.Request.Context(), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *Handler) ListEquipment(c *gin.Context) {
	var f equipment.Filters
	if !bind(c, &f) {
		return
	}
	records, err := h.Equipment.Query(c.Request.Context(), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// EquipmentChoices отдаёт оборудование с серийным номером для форм.
func (h *Handler) EquipmentChoices(c *gin.Context) {
	records, err := h.Equipment.WithSerial(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) GetEquipment(c *gin.Context) {
	rec, err := h.Equipment.BySerial(c.Request.Context(), c.Param("serial"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ReportsOverview отдаёт все сводки одним ответом.
func (h *Handler) ReportsOverview(c *gin.Context) {
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
	repot, err := h.Repotentiation.Summary(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	destr, err := h.Destruction.Summary(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	records, err := h.Equipment.Query(ctx, equipment.Filters{})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ram":                ram,
		"ssd":                ssd,
		"repotenciacion":     repot,
		"destruccion":        destr,
		"fase_counts":        dashboard.PhaseCounts(records),
		"fases":              dashboard.Phases,
		"component_status":   models.ComponentStatusLabels,
		"destruction_status": models.DestructionStatusLabels,
	})
}
