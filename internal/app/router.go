package app

import (
	"geometriks_backend/docs"
	"geometriks_backend/internal/config"
	"geometriks_backend/internal/middleware"
	"geometriks_backend/internal/model"
	"geometriks_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerStudentRoutes(router, c, cfg)
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/certificate/verify/:code", c.certificate.Verify)
	}
}

func (a *App) registerStudentRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	rg := router.Group("/api")
	rg.Use(middleware.AuthMiddleware(cfg))
	{
		rg.GET("/profile", c.user.GetProfile)
		rg.GET("/survey", c.user.GetSurvey)
		rg.POST("/survey", c.user.SubmitSurvey)
		rg.GET("/leaderboard", c.leaderboard.Get)

		rg.GET("/modules", c.learning.ListModules)
		rg.GET("/modules/:moduleId", c.learning.GetModule)
		rg.GET("/modules/:moduleId/lessons", c.learning.ListLessons)
		rg.POST("/modules/:moduleId/complete", c.learning.CompleteModule)

		rg.GET("/modules/:moduleId/lessons/:lessonId/getchapters", c.learning.GetChapters)
		rg.POST("/modules/:moduleId/lessons/:lessonId/unlock", c.learning.UnlockLesson)
		rg.POST("/modules/:moduleId/lessons/:lessonId/progress", c.learning.CompleteLesson)
		rg.POST("/modules/:moduleId/lessons/:lessonId/chapters/:chapterId/progress", c.learning.CompleteChapter)

		rg.GET("/modules/:moduleId/lessons/:lessonId/exercise-result", c.exercise.GetResult)
		rg.POST("/modules/:moduleId/lessons/:lessonId/exercise-result", c.exercise.SubmitResult)

		rg.POST("/certificate", c.certificate.Issue)
		rg.GET("/certificates", c.certificate.List)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/modules", c.content.ListModules)
		admin.POST("/modules", c.content.CreateModule)
		admin.PUT("/modules/:moduleId", c.content.UpdateModule)
		admin.DELETE("/modules/:moduleId", c.content.DeleteModule)
		admin.PATCH("/modules/:moduleId/publish", c.content.PublishModule)

		admin.GET("/modules/:moduleId/lessons", c.content.ListLessons)
		admin.POST("/modules/:moduleId/lessons", c.content.CreateLesson)
		admin.PUT("/modules/:moduleId/lessons/:lessonId", c.content.UpdateLesson)
		admin.DELETE("/modules/:moduleId/lessons/:lessonId", c.content.DeleteLesson)

		admin.GET("/modules/:moduleId/lessons/:lessonId/chapters", c.content.ListChapters)
		admin.POST("/modules/:moduleId/lessons/:lessonId/chapters", c.content.CreateChapter)
		admin.PUT("/modules/:moduleId/lessons/:lessonId/chapters/:chapterId", c.content.UpdateChapter)
		admin.DELETE("/modules/:moduleId/lessons/:lessonId/chapters/:chapterId", c.content.DeleteChapter)

		admin.GET("/modules/:moduleId/lessons/:lessonId/questions", c.content.ListQuestions)
		admin.POST("/modules/:moduleId/lessons/:lessonId/questions", c.content.CreateQuestion)
		admin.PUT("/modules/:moduleId/lessons/:lessonId/questions/:questionId", c.content.UpdateQuestion)
		admin.DELETE("/modules/:moduleId/lessons/:lessonId/questions/:questionId", c.content.DeleteQuestion)
	}
}
