package handlers

import (
	"net/http"
	"strconv"
	"time"

	"refresh-tracker/internal/conformity"
	"refresh-tracker/internal/destruction"
	"refresh-tracker/internal/equipment"
	"refresh-tracker/internal/ingest"
	"refresh-tracker/internal/inventory"
	"refresh-tracker/internal/lifecycle"
	"refresh-tracker/internal/middleware"
	"refresh-tracker/internal/repotentiation"
	"refresh-tracker/internal/users"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Services — зависимости HTTP-слоя.
type Services struct {
	Users          *users.Service
	Equipment      *equipment.Service
	Inventory      *inventory.Service
	Lifecycle      *lifecycle.Tracker
	Repotentiation *repotentiation.Service
	Destruction    *destruction.Service
	Conformity     *conformity.Service
	Importer       *ingest.Importer
}

type Handler struct {
	Services
	log *logrus.Logger
	now func() time.Time
}

func New(s Services, log *logrus.Logger) *Handler {
	return &Handler{Services: s, log: log, now: time.Now}
}

func actor(c *gin.Context) string {
	return middleware.Actor(c)
}

// idParam читает :id; при ошибке ответ уже отправлен.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador inválido"})
		return 0, false
	}
	return uint(id), true
}

// bind разбирает форму или JSON; при ошибке ответ уже отправлен.
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return false
	}
	return true
}
