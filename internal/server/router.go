package server

import (
	"net/http"
	"strings"

	"refresh-tracker/internal/config"
	"refresh-tracker/internal/handlers"
	"refresh-tracker/internal/metrics"
	"refresh-tracker/internal/middleware"
	"refresh-tracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const sessionName = "tracker_session"

func NewRouter(cfg *config.Config, db *gorm.DB, h *handlers.Handler, log *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), metrics.Middleware())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode, MaxAge: 8 * 3600})
	r.Use(sessions.Sessions(sessionName, store))

	r.Use(middleware.InjectUser(db))

	// HEALTHCHECK и МЕТРИКИ
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET(cfg.MetricsPath, gin.WrapH(promhttp.Handler()))

	// AUTH
	r.GET("/", h.Index)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())
	admin := middleware.RequireRole(models.RoleAdmin)

	auth.GET("/me", h.Me)

	// ДАШБОРД
	auth.GET("/api/summary", h.DashboardSummary)
	auth.GET("/api/registros", h.ListEquipment)
	auth.GET("/api/equipos", h.EquipmentChoices)
	auth.GET("/api/equipos/:serial", h.GetEquipment)

	// ИНВЕНТАРЬ RAM/SSD
	auth.GET("/inventario/historial", h.HistoryFeed)
	auth.GET("/inventario/api/summary", h.InventorySummary)
	for _, kind := range []models.ComponentKind{models.KindRAM, models.KindSSD} {
		g := auth.Group("/inventario/" + strings.ToLower(string(kind)))
		g.GET("", h.ListComponents(kind))
		g.GET("/:id", h.GetComponent(kind))
		g.GET("/:id/historial", h.ComponentHistory(kind))
		g.POST("", admin, h.CreateComponent(kind))
		g.PUT("/:id", admin, h.UpdateComponent(kind))
		g.DELETE("/:id", admin, h.DeleteComponent(kind))
		g.POST("/:id/asignar", admin, h.AssignComponent(kind))
		g.POST("/:id/desasignar", admin, h.UnassignComponent(kind))
	}

	// РЕПОТЕНЦИАЦИЯ
	repot := auth.Group("/repotenciacion")
	repot.GET("", h.ListRepotentiations)
	repot.GET("/api/summary", h.RepotentiationSummary)
	repot.GET("/equipo/:serial", h.RepotentiationsByEquipment)
	repot.GET("/:id", h.GetRepotentiation)
	repot.POST("", admin, h.CreateRepotentiation)
	repot.PUT("/:id", admin, h.UpdateRepotentiation)
	repot.DELETE("/:id", admin, h.DeleteRepotentiation)

	// УНИЧТОЖЕНИЕ ДИСКОВ
	destr := auth.Group("/destruccion")
	destr.GET("", h.ListDestructions)
	destr.GET("/api/summary", h.DestructionSummary)
	destr.GET("/:id", h.GetDestruction)
	destr.GET("/:id/video", h.ViewDestructionVideo)
	destr.POST("", admin, h.RegisterDestruction)
	destr.PUT("/:id", admin, h.EditDestruction)
	destr.DELETE("/:id", admin, h.DeleteDestruction)
	destr.POST("/:id/video", admin, h.UploadDestructionVideo)
	destr.POST("/:id/certificar", admin, h.CertifyDestruction)

	// АКТЫ
	actas := auth.Group("/actas")
	actas.GET("", h.ListConformity)
	actas.GET("/api/summary", h.ConformitySummary)
	actas.GET("/equipo/:serial", h.ConformityByEquipment)
	actas.GET("/:id/ver", h.ViewConformity)
	actas.GET("/:id/descargar", h.DownloadConformity)
	actas.POST("", admin, h.UploadConformity)
	actas.DELETE("/:id", admin, h.DeleteConformity)

	// МАССОВАЯ ЗАГРУЗКА
	bulk := auth.Group("/carga-masiva", admin)
	bulk.GET("/:entity/plantilla", h.UploadTemplate)
	bulk.POST("/:entity", h.BulkUpload)

	// ОТЧЁТЫ
	rep := auth.Group("/reportes")
	rep.GET("", h.ReportsOverview)
	rep.GET("/exportar/dashboard", h.ExportEquipment)
	rep.GET("/exportar/ram", h.ExportComponents(models.KindRAM))
	rep.GET("/exportar/ssd", h.ExportComponents(models.KindSSD))
	rep.GET("/exportar/repotenciacion", h.ExportRepotentiations)
	rep.GET("/exportar/destruccion", h.ExportDestructions)
	rep.GET("/exportar/historial-componentes", h.ExportHistory)

	// ПОЛЬЗОВАТЕЛИ
	users := auth.Group("/admin/usuarios", admin)
	users.GET("", h.ListUsers)
	users.POST("", h.CreateUser)

	return r
}
