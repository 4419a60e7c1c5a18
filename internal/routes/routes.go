package routes

import (
	"net/http"

	"github.com/hello383/Sway/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route onto the gin engine.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.CampaignHandler.RegisterRoutes(api)
		appHandlers.StatsHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.RefdataHandler.RegisterRoutes(api)
		appHandlers.SessionHandler.RegisterRoutes(api)
	}
}
