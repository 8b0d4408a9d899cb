package main

import (
	"context"
	"go-skillmarket-backend/config"
	_ "go-skillmarket-backend/docs" // Important for Swagger
	v1 "go-skillmarket-backend/internal/delivery/http/v1"
	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/internal/repository/memory"
	"go-skillmarket-backend/internal/repository/postgres"
	"go-skillmarket-backend/internal/usecase"
	"go-skillmarket-backend/pkg/auth"
	"go-skillmarket-backend/pkg/database"
	"go-skillmarket-backend/pkg/logger"
	"go-skillmarket-backend/pkg/redis"
	"go-skillmarket-backend/pkg/validation"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
)

// @title           SkillMarket API
// @version         1.0
// @description     Two-sided skill marketplace: candidates earn skill points through courses, employers unlock resumes.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting skillmarket backend", "port", cfg.Port)

	// 3. Setup Repositories (Postgres when DATABASE_URL is set, in-memory otherwise)
	var (
		userRepo        domain.UserRepository
		courseRepo      domain.CourseRepository
		enrollmentRepo  domain.EnrollmentRepository
		certificateRepo domain.CertificateRepository
		unlockRepo      domain.ResumeUnlockRepository
	)

	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		userRepo = postgres.NewUserRepository(dbPool)
		courseRepo = postgres.NewCourseRepository(dbPool)
		enrollmentRepo = postgres.NewEnrollmentRepository(dbPool)
		certificateRepo = postgres.NewCertificateRepository(dbPool)
		unlockRepo = postgres.NewResumeUnlockRepository(dbPool)
	} else {
		store := memory.NewStore()
		userRepo = memory.NewUserRepository(store)
		courseRepo = memory.NewCourseRepository(store)
		enrollmentRepo = memory.NewEnrollmentRepository(store)
		certificateRepo = memory.NewCertificateRepository(store)
		unlockRepo = memory.NewResumeUnlockRepository(store)

		if err := memory.SeedCourses(context.Background(), courseRepo); err != nil {
			logger.Log.Error("Failed to seed courses", "error", err)
			os.Exit(1)
		}
	}

	// 4. Setup Redis (rate limiter backend; in-memory fallback when absent)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		}
		defer redis.Close()
	}

	// 5. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	authUC := usecase.NewAuthUsecase(userRepo, validate)
	courseUC := usecase.NewCourseUsecase(courseRepo)
	enrollmentUC := usecase.NewEnrollmentUsecase(enrollmentRepo, courseRepo, userRepo, certificateRepo)
	searchUC := usecase.NewCandidateSearchUsecase(userRepo)
	unlockUC := usecase.NewResumeUnlockUsecase(unlockRepo, userRepo)

	// 6. Setup Token Manager
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		CourseUC:     courseUC,
		EnrollmentUC: enrollmentUC,
		SearchUC:     searchUC,
		UnlockUC:     unlockUC,
		Tokens:       tokens,
		Config:       cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
