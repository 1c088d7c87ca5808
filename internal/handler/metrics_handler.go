package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/careloop/advocates-api/internal/middleware"
	"github.com/careloop/advocates-api/internal/service"
	"github.com/careloop/advocates-api/pkg/response"
)

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics   *service.MetricsService
	advocates *service.AdvocateService
	cache     *service.CacheService
}

// NewMetricsHandler constructs a metrics handler.
func NewMetricsHandler(metrics *service.MetricsService, advocates *service.AdvocateService, cache *service.CacheService) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, advocates: advocates, cache: cache}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health responds with a generic OK payload for liveness usage.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports readiness. Postgres must answer a ping; a disabled or
// unreachable cache only degrades the payload, it does not fail the probe.
func (h *MetricsHandler) Ready(c *gin.Context) {
	if h.advocates == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	if err := h.advocates.Ready(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"cache":  h.cache.Enabled(),
	})
}

// System returns the instrumentation snapshot.
func (h *MetricsHandler) System(c *gin.Context) {
	if h.metrics == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	start := time.Now()
	snapshot := h.metrics.Snapshot()
	middleware.SetCacheHit(c, false)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = make(map[string]interface{})
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, snapshot, nil, meta)
}
