package app

import (
	"math_practice_backend/docs"
	"math_practice_backend/internal/config"
	"math_practice_backend/internal/middleware"
	"math_practice_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 练习与仪表盘（无需登录）
	a.registerPublicRoutes(router, c)

	// 2. 管理员相关接口
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		public.POST("/math-problem", c.problem.Generate)
		public.POST("/math-problem/simple", c.problem.GenerateSimple)
		public.POST("/math-problem/submit", c.problem.Submit)

		public.GET("/dashboard", c.dashboard.GetDashboard)
		public.POST("/dashboard/stats", c.dashboard.CalculateStats)
		public.GET("/dashboard/report", c.dashboard.DownloadReport)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AdminMiddleware(cfg.Admin.JWTSecret))
	{
		admin.GET("/syllabus", c.syllabus.Status)
		admin.POST("/syllabus/refresh", c.syllabus.Refresh)
		admin.PUT("/syllabus/source", c.syllabus.UploadSource)
	}
}
