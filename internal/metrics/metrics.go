// Package metrics — Prometheus-метрики трекера: загрузки CSV, переходы
// компонентов и HTTP.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tracker"

var (
	ingestRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingest",
		Name:      "rows_total",
		Help:      "Rows processed by bulk CSV uploads, by entity and outcome.",
	}, []string{"entity", "outcome"})

	ingestFiles = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingest",
		Name:      "files_total",
		Help:      "Bulk CSV uploads, by entity and result.",
	}, []string{"entity", "result"})

	lifecycleTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "components",
		Name:      "transitions_total",
		Help:      "RAM/SSD assign and unassign transitions.",
	}, []string{"component", "action"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// IngestRows учитывает итог одной загрузки.
func IngestRows(entity string, inserted, updated, rejected int) {
	ingestRows.WithLabelValues(entity, "inserted").Add(float64(inserted))
	ingestRows.WithLabelValues(entity, "updated").Add(float64(updated))
	ingestRows.WithLabelValues(entity, "rejected").Add(float64(rejected))
}

func IngestFile(entity string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	ingestFiles.WithLabelValues(entity, result).Inc()
}

func Transition(component, action string) {
	lifecycleTransitions.WithLabelValues(component, action).Inc()
}

// Middleware пишет метрики по шаблону маршрута gin, а не по сырому пути,
// чтобы id в URL не раздували кардинальность.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequests.WithLabelValues(c.Request.Method, route, status).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
