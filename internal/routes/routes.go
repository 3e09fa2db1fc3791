package routes

import (
	"celobuddy/internal/handlers"
	"celobuddy/internal/logger"
	"celobuddy/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	guards *middleware.Guards,
) {
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := ginRouter.Group("/api/v1")
	appHandlers.HealthHandler.RegisterRoutes(api)

	// Анонимные маршруты: регистрация, чат-бот, подписка
	public := api.Group("", guards.AnonKey())
	{
		appHandlers.AuthHandler.RegisterRoutes(public)
		appHandlers.PublicHandler.RegisterRoutes(public)
	}

	// Запись возможностей внешними сервисами (сервисный ключ) или админом
	appHandlers.OpportunityHandler.RegisterPublicRoutes(api, guards)

	authed := api.Group("", guards.Auth())
	{
		appHandlers.ProfileHandler.RegisterRoutes(authed)
		appHandlers.OnboardingHandler.RegisterRoutes(authed)
		appHandlers.NeedHandler.RegisterRoutes(authed, guards)
		appHandlers.FeedHandler.RegisterRoutes(authed, guards)
		appHandlers.MatchHandler.RegisterRoutes(authed)
		appHandlers.FeedbackHandler.RegisterRoutes(authed, guards)
	}

	admin := api.Group("/admin", guards.Auth())
	{
		appHandlers.AdminHandler.RegisterRoutes(admin, guards)
		appHandlers.OpportunityHandler.RegisterAdminRoutes(admin, guards)
	}

	logger.Info("HTTP routes registered", "routes", len(ginRouter.Routes()))
}
