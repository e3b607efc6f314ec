// internal/handlers/router.go
package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"candidate-tracker/internal/common/logger"
)

// Dependencies collects the handlers the router wires up.
type Dependencies struct {
	Candidates    *CandidateHandler
	Notifications *NotificationHandler
	Dashboard     *DashboardHandler
	Positions     *PositionHandler
	Logger        logger.Logger
}

// NewRouter builds the gin engine with middleware and all API routes.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}

	r.Use(RequestID())
	r.Use(RequestLogger(deps.Logger))
	r.Use(Metrics())
	r.Use(Recovery(deps.Logger))
	r.Use(cors.New(corsConfig))

	r.GET("/health", HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/candidates", deps.Candidates.List)
		api.GET("/candidates/:id", deps.Candidates.Get)
		api.POST("/candidates", deps.Candidates.Register)
		api.PATCH("/candidates/:id/status", deps.Candidates.UpdateStatus)
		api.DELETE("/candidates/:id", deps.Candidates.Delete)
		api.GET("/candidates/:id/history", deps.Candidates.History)

		api.GET("/notifications", deps.Notifications.List)
		api.PATCH("/notifications/:id/read", deps.Notifications.MarkRead)

		api.GET("/dashboard/stats", deps.Dashboard.Stats)

		api.GET("/positions", deps.Positions.List)
	}

	return r
}

// HealthCheck is the liveness probe.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
