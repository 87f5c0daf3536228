package router

import (
	"github.com/gin-gonic/gin"

	"jobdesk/internal/config"
	"jobdesk/internal/handler"
	"jobdesk/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	resumeH *handler.ResumeHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	api := r.Group("/api")
	api.POST("/parse-resume", resumeH.ParseResume)
	api.POST("/process-image", resumeH.ProcessImage)

	return r
}
