package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tiffin-hq/tiffin/internal/interfaces/http/handlers"
)

type OrderRouteConfig struct {
	OrderHandler *handlers.OrderHandler
}

// SetupOrderRoutes registers the order day endpoints.
func SetupOrderRoutes(api *gin.RouterGroup, config *OrderRouteConfig) {
	orders := api.Group("/orders")
	{
		orders.GET("", config.OrderHandler.ListOrders)

		// Specific paths come before the parameterized ones.
		orders.POST("/guest", config.OrderHandler.CreateGuestOrder)

		orders.POST("/:id/freeze", config.OrderHandler.FreezeOrder)
		orders.POST("/:id/unfreeze", config.OrderHandler.UnfreezeOrder)
	}
}
