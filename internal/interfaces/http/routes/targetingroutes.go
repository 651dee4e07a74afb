package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tiffin-hq/tiffin/internal/interfaces/http/handlers"
)

type TargetingRouteConfig struct {
	TargetingHandler *handlers.TargetingHandler
}

// SetupTargetingRoutes registers the bulk-targeting preview endpoint.
func SetupTargetingRoutes(api *gin.RouterGroup, config *TargetingRouteConfig) {
	targeting := api.Group("/targeting")
	{
		targeting.POST("/preview", config.TargetingHandler.PreviewTargeting)
	}
}
