package app

import (
	"digicheck_backend/docs"
	"digicheck_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// Survey scoring. Auth and org resolution happen at the gateway; the
		// org context arrives via the X-Org-ID header.
		api.POST("/surveys", c.survey.SubmitSurvey)
		api.GET("/surveys", c.survey.ListSurveys)
		api.GET("/surveys/latest", c.survey.GetLatest)

		api.GET("/dashboard", c.dashboard.GetDashboard)

		api.GET("/guides", c.guide.ListGuides)
		api.GET("/guides/:slug", c.guide.GetGuide)

		api.GET("/benchmark", c.benchmark.GetBenchmark)
		api.GET("/benchmark/deltas", c.benchmark.GetDeltas)
	}
}
