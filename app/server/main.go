package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/karyahq/compass/config"
	"github.com/karyahq/compass/internal/api/handlers"
	"github.com/karyahq/compass/internal/api/middleware"
	"github.com/karyahq/compass/internal/api/routes"
	"github.com/karyahq/compass/internal/assessment"
	"github.com/karyahq/compass/internal/cache"
	"github.com/karyahq/compass/internal/catalog"
	"github.com/karyahq/compass/internal/logger"
	mongorepo "github.com/karyahq/compass/internal/repositories/mongo"
	pgrepo "github.com/karyahq/compass/internal/repositories/postgres"
	"github.com/karyahq/compass/internal/services"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	l.Info("PostgreSQL connected")

	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}
	l.Info("MongoDB connected")

	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("catalog load error: %v", err)
	}

	assessments := pgrepo.NewAssessmentRepo(config.PostgresDB)
	skills := pgrepo.NewSkillRepo(config.PostgresDB)
	jobs := pgrepo.NewJobRepo(config.PostgresDB)
	plans := mongorepo.NewPlanRepo(config.MongoDatabase())

	if err := jobs.SeedIfEmpty(context.Background(), cat.Jobs()); err != nil {
		log.Fatalf("job seed error: %v", err)
	}

	sessions := assessment.NewSessionStore(cache.NewRedisCache(config.RedisClient))

	learningSvc := services.NewLearningService(assessments, skills, plans, cat)
	matchSvc := services.NewMatchService(assessments, skills, jobs, cat)
	assessmentSvc := services.NewAssessmentService(assessments, skills, sessions, learningSvc, cat, l)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Assessment: handlers.NewAssessmentHandler(assessmentSvc),
		Job:        handlers.NewJobHandler(matchSvc),
		Learning:   handlers.NewLearningHandler(learningSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
