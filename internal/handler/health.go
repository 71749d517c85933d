// internal/handler/health.go
package handler

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

type healthMemory struct {
	Used  string `json:"used"`
	Total string `json:"total"`
}

type healthResponse struct {
	Status       string       `json:"status"`
	Database     string       `json:"database"`
	ResponseTime string       `json:"responseTime"`
	Uptime       string       `json:"uptime"`
	Memory       healthMemory `json:"memory"`
	Timestamp    time.Time    `json:"timestamp"`
}

// Health answers liveness probes. It pings the database and reports
// process uptime and heap usage; no session required.
func (h *Handler) Health(c *gin.Context) {
	start := time.Now()

	if err := h.stats.Ping(c.Request.Context()); err != nil {
		h.log.Error().Err(err).Msg("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "error",
			"database":  "disconnected",
			"timestamp": time.Now().UTC(),
		})
		return
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	c.JSON(http.StatusOK, healthResponse{
		Status:       "ok",
		Database:     "connected",
		ResponseTime: fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
		Uptime:       fmt.Sprintf("%ds", int64(time.Since(h.startedAt).Seconds())),
		Memory: healthMemory{
			Used:  fmt.Sprintf("%dMB", mem.HeapAlloc/1024/1024),
			Total: fmt.Sprintf("%dMB", mem.HeapSys/1024/1024),
		},
		Timestamp: time.Now().UTC(),
	})
}
