package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pauloryan091/agmais/internal/logging"
)

type fakeProbe bool

func (f fakeProbe) Exists() bool { return bool(f) }

func serve(r *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func ok(c *gin.Context) { c.Status(http.StatusOK) }

func TestCORSAllowlist(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.exemplo.com/"}))
	r.GET("/x", ok)

	w := serve(r, http.MethodGet, "/x", map[string]string{"Origin": "https://app.exemplo.com"})
	assert.Equal(t, "https://app.exemplo.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = serve(r, http.MethodGet, "/x", map[string]string{"Origin": "https://evil.com"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodOptions, "/x", map[string]string{"Origin": "https://app.exemplo.com"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCORSAnyOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORSMiddleware(nil))
	r.GET("/x", ok)

	w := serve(r, http.MethodGet, "/x", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequireStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/up", RequireStore(fakeProbe(true)), ok)
	r.GET("/down", RequireStore(fakeProbe(false)), ok)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/up", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(r, http.MethodGet, "/down", nil).Code)
}

func TestRateLimiterPerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(0.001, 1, logging.Discard())
	r := gin.New()
	r.GET("/login", rl.Handler(), ok)

	first := map[string]string{"X-Forwarded-For": "10.0.0.1"}
	second := map[string]string{"X-Forwarded-For": "10.0.0.2"}

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/login", first).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet, "/login", first).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/login", second).Code)
}
