package routes

import (
	"net/http"

	"networknode/internal/handlers"
	"networknode/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// profileGate ставится только на группу /dashboard.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	profileGate gin.HandlerFunc,
) {
	ginRouter.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Вход, регистрация и обратный вызов провайдера
	appHandlers.AuthHandler.RegisterRoutes(&ginRouter.RouterGroup)

	dashboard := ginRouter.Group("/dashboard")
	dashboard.Use(profileGate)
	{
		appHandlers.DashboardHandler.RegisterRoutes(dashboard)
		appHandlers.ProfileHandler.RegisterRoutes(dashboard)
		appHandlers.JobHandler.RegisterRoutes(dashboard)
		appHandlers.StartupHandler.RegisterRoutes(dashboard)
		appHandlers.MeetingHandler.RegisterRoutes(dashboard)
	}

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterAPIRoutes(api)
	}
	logger.Info("HTTP routes registered", "count", len(ginRouter.Routes()))
}
