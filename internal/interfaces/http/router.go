package http

import (
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tiffin-hq/tiffin/internal/interfaces/http/middleware"
	"github.com/tiffin-hq/tiffin/internal/interfaces/http/routes"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"

	_ "github.com/tiffin-hq/tiffin/docs"
)

// SetupRoutes installs middleware and registers all API routes.
func (c *Container) SetupRoutes() {
	registerDateValidation()

	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery())

	c.engine.GET("/health", c.healthHandler.HealthCheck)
	c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := c.engine.Group("/api/v1")

	routes.SetupBenefitRoutes(api, &routes.BenefitRouteConfig{
		BenefitHandler: c.benefitHandler,
	})
	routes.SetupOrderRoutes(api, &routes.OrderRouteConfig{
		OrderHandler: c.orderHandler,
	})
	routes.SetupTargetingRoutes(api, &routes.TargetingRouteConfig{
		TargetingHandler: c.targetingHandler,
	})
}

// registerDateValidation teaches the binding validator to treat Date fields
// as their underlying time, so `binding:"required"` rejects a missing or
// zero YYYY-MM-DD value.
func registerDateValidation() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(biztime.Date); ok {
			return d.Time()
		}
		return nil
	}, biztime.Date{})
}

// GetEngine returns the Gin engine
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// Run starts the HTTP server
func (c *Container) Run(addr string) error {
	return c.engine.Run(addr)
}
