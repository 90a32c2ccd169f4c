package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Priyankavya/FitnessApp/config"
	"github.com/Priyankavya/FitnessApp/database"
	"github.com/Priyankavya/FitnessApp/internal/auditlog"
	"github.com/Priyankavya/FitnessApp/internal/auth"
	"github.com/Priyankavya/FitnessApp/internal/catalog"
	"github.com/Priyankavya/FitnessApp/internal/diet"
	"github.com/Priyankavya/FitnessApp/internal/goal"
	"github.com/Priyankavya/FitnessApp/internal/health"
	"github.com/Priyankavya/FitnessApp/internal/profile"
	"github.com/Priyankavya/FitnessApp/internal/progress"
	"github.com/Priyankavya/FitnessApp/internal/reports"
	"github.com/Priyankavya/FitnessApp/internal/workout"
	"github.com/Priyankavya/FitnessApp/middleware"
)

func Setup(r *gin.Engine, cfg *config.Config) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter())
	api.Use(middleware.AuditMiddleware())

	// ========== Audit Log ==========
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== Auth ==========
	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, cfg)
	authHandler := auth.NewHandler(authSvc)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/register-admin", authHandler.RegisterAdmin)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/forgot-password", authHandler.ForgotPassword)
		authGroup.POST("/reset-password", authHandler.ResetPassword)
	}

	// ========== Engine wiring ==========
	healthRepo := health.NewRepository(database.DB)
	catalogRepo := catalog.NewRepository(database.DB)
	resolver := catalog.NewResolver(catalogRepo)

	profileRepo := profile.NewRepository(database.DB)
	profileSvc := profile.NewService(profileRepo, auditSvc)
	profileHandler := profile.NewHandler(profileSvc)

	dietRepo := diet.NewRepository(database.DB)
	dietSvc := diet.NewService(dietRepo, profileRepo, healthRepo, catalogRepo, resolver)
	dietHandler := diet.NewHandler(dietSvc)

	workoutRepo := workout.NewRepository(database.DB)
	workoutSvc := workout.NewService(workoutRepo, profileRepo, healthRepo, catalogRepo, resolver)
	workoutHandler := workout.NewHandler(workoutSvc)

	// Profile writes rebuild both assignment kinds.
	profileSvc.AddSynchronizer(dietSvc)
	profileSvc.AddSynchronizer(workoutSvc)

	goalRepo := goal.NewRepository(database.DB)
	goalSvc := goal.NewService(goalRepo, profileRepo, auditSvc)
	goalHandler := goal.NewHandler(goalSvc)

	progressRepo := progress.NewRepository(database.DB)
	progressSvc := progress.NewService(progressRepo, profileRepo, goalSvc, dietSvc, workoutSvc, auditSvc)
	progressHandler := progress.NewHandler(progressSvc)

	// Goal evaluation reads readings through the progress service.
	goalSvc.SetProgressSource(progressSvc)

	reportsRepo := reports.NewRepository(database.DB)
	reportsSvc := reports.NewService(reportsRepo, reports.NewReportExporter())
	reportsHandler := reports.NewHandler(reportsSvc)

	// ========== Protected routes ==========
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg, authSvc))

	auditRoutes := protected.Group("/auditlogs")
	{
		auditRoutes.GET("", middleware.RequireRole(auth.RoleAdmin), auditHandler.GetAuditLogs)
	}

	profileRoutes := protected.Group("/profile")
	{
		profileRoutes.POST("", profileHandler.CreateOrUpdate)
		profileRoutes.GET("", profileHandler.Get)
	}

	goalRoutes := protected.Group("/goals")
	{
		goalRoutes.POST("/set", goalHandler.SetGoal)
		goalRoutes.GET("/my", goalHandler.MyGoal)
		goalRoutes.POST("/check", goalHandler.CheckGoal)
		goalRoutes.DELETE("/reset", goalHandler.Reset)
	}

	progressRoutes := protected.Group("/progress")
	{
		progressRoutes.POST("/add", progressHandler.Add)
		progressRoutes.GET("/my", progressHandler.My)
		progressRoutes.GET("/latest", progressHandler.Latest)
	}

	dietRoutes := protected.Group("/diet")
	{
		dietRoutes.GET("/daily-plan", dietHandler.DailyPlan)
		dietRoutes.POST("/log-meal", dietHandler.LogMeal)
		dietRoutes.GET("/today-logs", dietHandler.TodayLogs)
	}

	workoutRoutes := protected.Group("/workout")
	{
		workoutRoutes.GET("/weekly-plan", workoutHandler.WeeklyPlan)
	}

	reportsRoutes := protected.Group("/reports")
	{
		reportsRoutes.GET("/progress", reportsHandler.ExportProgress)
	}
}
