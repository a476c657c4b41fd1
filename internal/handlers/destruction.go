package handlers

import (
	"net/http"

	"refresh-tracker/internal/destruction"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListDestructions(c *gin.Context) {
	items, err := h.Destruction.List(c.Request.Context(), c.Query("estado"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) GetDestruction(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rec, err := h.Destruction.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) RegisterDestruction(c *gin.Context) {
	var in destruction.Input
	if !bind(c, &in) {
		return
	}
	rec, err := h.Destruction.Register(c.Request.Context(), in, actor(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *Handler) EditDestruction(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in destruction.Input
	if !bind(c, &in) {
		return
	}
	rec, err := h.Destruction.Edit(c.Request.Context(), id, in, actor(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

type certifyForm struct {
	Number string `form:"certificado_numero" json:"certificado_numero"`
	Date   string `form:"certificado_fecha" json:"certificado_fecha"`
}

func (h *Handler) CertifyDestruction(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var form certifyForm
	if !bind(c, &form) {
		return
	}
	rec, err := h.Destruction.Certify(c.Request.Context(), id, form.Number, form.Date, actor(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Disco certificado como destruido (Cert: " + rec.CertificateNumber + ")",
		"registro": rec,
	})
}

// UploadDestructionVideo принимает multipart-поле "video".
func (h *Handler) UploadDestructionVideo(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Debes seleccionar un video"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer f.Close()

	rec, err := h.Destruction.AttachVideo(c.Request.Context(), id, fh.Filename, f, actor(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) ViewDestructionVideo(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	path, err := h.Destruction.VideoPath(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.File(path)
}

func (h *Handler) DeleteDestruction(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Destruction.Delete(c.Request.Context(), id, actor(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registro eliminado"})
}

func (h *Handler) DestructionSummary(c *gin.Context) {
	sum, err := h.Destruction.Summary(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}
