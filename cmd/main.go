package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

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
	"github.com/Priyankavya/FitnessApp/internal/workout"
	"github.com/Priyankavya/FitnessApp/routes"
	"github.com/Priyankavya/FitnessApp/utils"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Init Redis
	if err := utils.InitRedis(cfg); err != nil {
		log.Fatalf("❌ Redis init failed: %v", err)
	}

	// Init SMTP + Kafka
	utils.InitMailer(cfg)
	utils.InitializeKafka(cfg)

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&auth.User{},
		&auth.Admin{},
		&auditlog.AuditLog{},
		&health.HealthCondition{},
		&health.UserHealthCondition{},
		&catalog.Food{},
		&catalog.Workout{},
		&catalog.DietPlan{},
		&catalog.DietPlanFood{},
		&catalog.WorkoutPlan{},
		&catalog.WorkoutPlanDetail{},
		&profile.UserProfile{},
		&diet.UserDietFood{},
		&diet.MealLog{},
		&workout.UserWorkout{},
		&goal.Goal{},
		&progress.ProgressLog{},
	); err != nil {
		panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
	}
	log.Println("✅ Database migrations completed")

	if err := health.SeedConditions(db); err != nil {
		panic(fmt.Sprintf("❌ Failed to seed health conditions: %v", err))
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server starting on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
