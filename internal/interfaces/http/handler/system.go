package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/onboarding/backend/internal/interfaces/http/dto"
)

// SystemInfo is the static part of the health report
type SystemInfo struct {
	Name           string
	Version        string
	PDFStrategies  []string
	SessionBackend string
}

// SystemHandler handles system-related endpoints
type SystemHandler struct {
	BaseHandler
	info      SystemInfo
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(info SystemInfo) *SystemHandler {
	return &SystemHandler{
		info:      info,
		startTime: time.Now(),
	}
}

// Health reports that the server is up, with its version and configured backends
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HealthResponse{
		Status:        "ok",
		Name:          h.info.Name,
		Version:       h.info.Version,
		GoVersion:     runtime.Version(),
		Uptime:        time.Since(h.startTime).Round(time.Second).String(),
		PDFStrategies: h.info.PDFStrategies,
		Sessions:      h.info.SessionBackend,
	}))
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Ping is a liveness probe without payload
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
