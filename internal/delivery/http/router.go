package http

import (
	"time"

	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/delivery/http/controllers"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/models"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/service"
	"github.com/denisemathewspdf/tech-with-denise-sub000/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitRoutes(l logger.Log, u service.Collection, allowOrigin string, defaultEnt models.Entitlement) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	config := cors.Config{
		AllowOrigins:     []string{allowOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Client-Tier", "X-Client-Module"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r.Use(cors.New(config))

	statusController := controllers.NewStatusHandler()
	modulesController := controllers.NewModulesHandler(l, u.ModuleQueryService, defaultEnt)
	progressController := controllers.NewProgressHandler(l, u.ProgressService, u.ProgressAggregator)
	checkoutController := controllers.NewCheckoutHandler(l, u.CheckoutService)

	v1 := r.Group("/v1",
		controllers.RequestIDMiddleware(),
		controllers.LoggingMiddleware(l),
		controllers.EntitlementMiddleware(defaultEnt),
	)
	{
		v1.GET("/status", statusController.Status)

		modules := v1.Group("/modules")
		{
			modules.GET("", modulesController.ListModules)
			modules.GET("/:module_id", modulesController.ModuleByID)
			modules.POST("/:module_id/lessons/:lesson_id/toggle", progressController.ToggleLesson)
		}

		v1.GET("/progress", progressController.Overall)

		checkout := v1.Group("/checkout")
		{
			checkout.GET("/redirect", checkoutController.Redirect)
			checkout.GET("/success", checkoutController.Success)
			checkout.GET("/cancel", checkoutController.Cancel)
		}
	}
	return r
}
