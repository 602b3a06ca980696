package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/clientes/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/clientes/:id", "404"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/clientes/42", nil))

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/clientes/:id", "404"))
	assert.Equal(t, before+1, after)
}

func TestRecordNotification(t *testing.T) {
	before := testutil.ToFloat64(notifications.WithLabelValues("log", "sent"))
	RecordNotification("log", "sent")
	assert.Equal(t, before+1, testutil.ToFloat64(notifications.WithLabelValues("log", "sent")))
}

func TestHandlerServesRegistry(t *testing.T) {
	RecordStatusChange("confirmed")

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "agmais_appointments_status_changes_total")
}
