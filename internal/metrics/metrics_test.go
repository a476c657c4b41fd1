package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestIngestRows(t *testing.T) {
	before := testutil.ToFloat64(ingestRows.WithLabelValues("ram", "inserted"))
	IngestRows("ram", 3, 1, 2)
	assert.Equal(t, before+3, testutil.ToFloat64(ingestRows.WithLabelValues("ram", "inserted")))
}

func TestIngestFile(t *testing.T) {
	before := testutil.ToFloat64(ingestFiles.WithLabelValues("ssd", "error"))
	IngestFile("ssd", errors.New("boom"))
	assert.Equal(t, before+1, testutil.ToFloat64(ingestFiles.WithLabelValues("ssd", "error")))
}

func TestMiddleware_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/inventario/ram/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/inventario/ram/:id", "204"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/inventario/ram/42", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/inventario/ram/:id", "204")))
}
