package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"refresh-tracker/internal/equipment"
	"refresh-tracker/internal/models"
	"refresh-tracker/internal/reports"

	"github.com/gin-gonic/gin"
)

const exportHistoryLimit = 500

// sendCSV пишет выгрузку в буфер целиком, чтобы ошибка не обрывала ответ на середине.
func (h *Handler) sendCSV(c *gin.Context, base string, write func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+reports.FileName(base, h.now()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportEquipment применяет те же фильтры, что и дашборд.
func (h *Handler) ExportEquipment(c *gin.Context) {
	var f equipment.Filters
	if !bind(c, &f) {
		return
	}
	records, err := h.Equipment.Query(c.Request.Context(), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.sendCSV(c, "dashboard_export", func(buf *bytes.Buffer) error {
		return reports.WriteEquipment(buf, records)
	})
}

func (h *Handler) ExportComponents(kind models.ComponentKind) gin.HandlerFunc {
	base := "inventario_ram"
	if kind == models.KindSSD {
		base = "inventario_ssd"
	}
	return func(c *gin.Context) {
		units, err := h.Inventory.List(c.Request.Context(), kind, "")
		if err != nil {
			h.fail(c, err)
			return
		}
		h.sendCSV(c, base, func(buf *bytes.Buffer) error {
			return reports.WriteComponents(buf, kind, units)
		})
	}
}

func (h *Handler) ExportRepotentiations(c *gin.Context) {
	ctx := c.Request.Context()
	items, err := h.Repotentiation.List(ctx, "")
	if err != nil {
		h.fail(c, err)
		return
	}
	owners, err := h.Equipment.OwnerNames(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.sendCSV(c, "repotenciacion", func(buf *bytes.Buffer) error {
		return reports.WriteRepotentiations(buf, items, owners)
	})
}

func (h *Handler) ExportDestructions(c *gin.Context) {
	ctx := c.Request.Context()
	items, err := h.Destruction.List(ctx, "")
	if err != nil {
		h.fail(c, err)
		return
	}
	owners, err := h.Equipment.OwnerNames(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.sendCSV(c, "destruccion_discos", func(buf *bytes.Buffer) error {
		return reports.WriteDestructions(buf, items, owners)
	})
}

// ExportHistory: ?limit= (по умолчанию 500).
func (h *Handler) ExportHistory(c *gin.Context) {
	limit := exportHistoryLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	items, err := h.Lifecycle.RecentHistory(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.sendCSV(c, "historial_componentes", func(buf *bytes.Buffer) error {
		return reports.WriteHistory(buf, items)
	})
}
