package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsMatchedRoutes(t *testing.T) {
	assert := require.New(t)
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Middleware())
	router.GET("/probe/:id", func(c *gin.Context) {
		c.String(http.StatusTeapot, "short and stout")
	})
	router.GET("/metrics", Handler())

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/probe/:id", "418"))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe/abc", nil)
		router.ServeHTTP(w, req)
		assert.Equal(http.StatusTeapot, w.Code)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/probe/:id", "418"))
	assert.Equal(before+3, after)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(http.StatusOK, w.Code)
	assert.True(strings.Contains(w.Body.String(), "ecssnav_http_requests_total"))
}

func TestNormalizePath(t *testing.T) {
	assert := require.New(t)

	assert.Equal("unknown", normalizePath(""))
	assert.Equal("/api/search", normalizePath("/api/search"))
}
