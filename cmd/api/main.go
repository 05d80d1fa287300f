package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"riseup-backend/config"
	v1 "riseup-backend/internal/delivery/http/v1"
	"riseup-backend/internal/repository/postgres"
	"riseup-backend/internal/usecase"
	"riseup-backend/internal/worker"
	"riseup-backend/pkg/ai"
	"riseup-backend/pkg/database"
	"riseup-backend/pkg/logger"
	"riseup-backend/pkg/redis"
	"riseup-backend/pkg/session"
)

// @title           RiseUp Backend API
// @version         1.0
// @description     Backend for the RiseUp career development platform.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name riseup_session
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting riseup backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.RunMigrations(cfg.DBUrl); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (optional; falls back to in-memory stores)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory fallbacks", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	courseRepo := postgres.NewCourseRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	chatRepo := postgres.NewChatRepository(dbPool)

	// 6. Setup Sessions
	secret := cfg.SessionSecret
	if secret == "" {
		// Ephemeral secret: sessions die with the process, which only
		// forces a re-login.
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			logger.Log.Error("Failed to generate session secret", "error", err)
			os.Exit(1)
		}
		secret = hex.EncodeToString(buf)
	}
	var sessionStore session.Store
	if client := redis.Client(); client != nil {
		sessionStore = session.NewRedisStore(client)
	} else {
		sessionStore = session.NewMemoryStore()
	}
	sessions := session.NewManager(secret, time.Duration(cfg.SessionTTLHours)*time.Hour, sessionStore)

	// 7. Setup Feedback Generator
	feedbackGen := ai.NewFeedbackGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	// 8. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, resumeRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, applicationRepo)
	courseUC := usecase.NewCourseUsecase(courseRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)
	resumeUC := usecase.NewResumeUsecase(resumeRepo)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, chatRepo, feedbackGen)
	chatUC := usecase.NewChatUsecase(chatRepo)

	if err := courseUC.SeedCourses(context.Background()); err != nil {
		logger.Log.Warn("Course seeding failed", "error", err)
	}

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		CourseUC:      courseUC,
		ApplicationUC: applicationUC,
		ResumeUC:      resumeUC,
		InterviewUC:   interviewUC,
		ChatUC:        chatUC,
		Sessions:      sessions,
		Config:        cfg,
	})

	// 10. Start Background Worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	cleanup := worker.NewAudioCleanup(
		chatRepo,
		time.Duration(cfg.AudioRetentionDays)*24*time.Hour,
		time.Duration(cfg.AudioCleanupIntervalHours)*time.Hour,
	)
	go cleanup.Run(workerCtx)

	// 11. Start Server
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

	stopWorker()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
