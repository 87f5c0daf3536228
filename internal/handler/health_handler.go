package handler

import (
	"net/http"
	"os/exec"

	"github.com/gin-gonic/gin"

	"jobdesk/internal/config"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. It reports whether the extraction
// provider is configured and the rasterization tool is on PATH; a
// missing tool is degraded (placeholders only), not fatal.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.cfg.Extractor.APIKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  "extraction provider API key not configured",
		})
		return
	}

	converter := "ok"
	if _, err := exec.LookPath(h.cfg.Converter.Command); err != nil {
		converter = "missing (pdf rasterization will use placeholders)"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"converter": converter,
	})
}
