package handlers

import (
	"net/http"
	"strings"

	"refresh-tracker/internal/conformity"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListConformity(c *gin.Context) {
	items, err := h.Conformity.List(c.Request.Context(), c.Query("equipo"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) ConformityByEquipment(c *gin.Context) {
	ctx := c.Request.Context()
	eq, err := h.Equipment.BySerial(ctx, c.Param("serial"))
	if err != nil {
		h.fail(c, err)
		return
	}
	items, err := h.Conformity.List(ctx, eq.Serial)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"equipo": eq, "actas": items})
}

// UploadConformity: multipart с полями equipo_serial, notas и файлом "archivo".
func (h *Handler) UploadConformity(c *gin.Context) {
	serial := strings.TrimSpace(c.PostForm("equipo_serial"))
	if serial == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Debes seleccionar un equipo"})
		return
	}
	fh, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Debes seleccionar un archivo"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer f.Close()

	rec, err := h.Conformity.Upload(c.Request.Context(), conformity.Upload{
		EquipmentSerial: serial,
		FileName:        fh.Filename,
		Notes:           c.PostForm("notas"),
		Body:            f,
	}, actor(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// ViewConformity: PDF открывается в браузере, MSG отдаётся вложением.
func (h *Handler) ViewConformity(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rec, err := h.Conformity.File(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if rec.FileType == "PDF" {
		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", `inline; filename="`+rec.FileName+`"`)
		c.File(rec.FilePath)
		return
	}
	c.FileAttachment(rec.FilePath, rec.FileName)
}

func (h *Handler) DownloadConformity(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rec, err := h.Conformity.File(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.FileAttachment(rec.FilePath, rec.FileName)
}

func (h *Handler) DeleteConformity(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Conformity.Delete(c.Request.Context(), id, actor(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Acta eliminada correctamente"})
}

func (h *Handler) ConformitySummary(c *gin.Context) {
	sum, err := h.Conformity.Summary(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}
