package handlers

import (
	"encoding/csv"
	"net/http"

	"refresh-tracker/internal/ingest"

	"github.com/gin-gonic/gin"
)

// BulkUpload принимает CSV в multipart-поле "file" для сущности из :entity.
func (h *Handler) BulkUpload(c *gin.Context) {
	entity := ingest.Entity(c.Param("entity"))
	if _, ok := ingest.SchemaFor(entity); !ok {
		h.fail(c, ingest.ErrUnknownEntity)
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Selecciona un archivo CSV"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer f.Close()

	res, err := h.Importer.Import(c.Request.Context(), entity, fh.Filename, f, actor(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	message := "Carga procesada correctamente"
	if len(res.Errors) > 0 {
		message = "Carga completada con errores"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   message,
		"resultado": res,
		"errores":   res.Messages(),
	})
}

// UploadTemplate отдаёт CSV-шаблон сущности: заголовок и примеры строк.
func (h *Handler) UploadTemplate(c *gin.Context) {
	schema, ok := ingest.SchemaFor(ingest.Entity(c.Param("entity")))
	if !ok {
		h.fail(c, ingest.ErrUnknownEntity)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+string(schema.Entity)+"_template.csv")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.WriteAll(schema.Template); err != nil {
		h.log.WithError(err).WithField("entity", schema.Entity).Warn("template write failed")
	}
}
