package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tiffin-hq/tiffin/internal/interfaces/http/handlers"
)

type BenefitRouteConfig struct {
	BenefitHandler *handlers.BenefitHandler
}

// SetupBenefitRoutes registers the subscription and compensation endpoints.
// Both resources map onto the same benefit aggregate with the kind fixed by
// the route.
func SetupBenefitRoutes(api *gin.RouterGroup, config *BenefitRouteConfig) {
	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.POST("", config.BenefitHandler.CreateSubscriptions)
		subscriptions.GET("", config.BenefitHandler.ListSubscriptions)

		// Specific action endpoints come before the bare /:id routes.
		subscriptions.POST("/:id/pause", config.BenefitHandler.PauseSubscription)
		subscriptions.POST("/:id/resume", config.BenefitHandler.ResumeSubscription)
		subscriptions.POST("/:id/cancel", config.BenefitHandler.CancelSubscription)

		subscriptions.GET("/:id", config.BenefitHandler.GetSubscription)
		subscriptions.PATCH("/:id", config.BenefitHandler.UpdateSubscription)
	}

	compensations := api.Group("/compensations")
	{
		compensations.POST("", config.BenefitHandler.CreateCompensations)
		compensations.GET("", config.BenefitHandler.ListCompensations)

		compensations.GET("/:id", config.BenefitHandler.GetCompensation)
		compensations.PATCH("/:id", config.BenefitHandler.UpdateCompensation)
	}
}
