package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"codeforge/internal/application/services"
	"codeforge/internal/config"
	deliveryhttp "codeforge/internal/delivery/http"
	"codeforge/internal/delivery/ws"
	"codeforge/internal/infrastructure"
	"codeforge/internal/infrastructure/db/postgres"
	"codeforge/internal/infrastructure/executor"
	"codeforge/internal/messaging"
)

func main() {
	cfg := config.Load()

	db, err := postgres.Connect(cfg.PostgreSQL)
	if err != nil {
		log.Fatal("❌ Failed to connect to PostgreSQL:", err)
	}
	if err := postgres.Seed(db); err != nil {
		log.Fatal("❌ Failed to seed database:", err)
	}

	if err := messaging.ConnectNats(cfg.NatsURL); err != nil {
		log.Println("⚠️ NATS unavailable, submission events disabled:", err)
	}
	defer messaging.CloseNats()

	userRepo := postgres.NewUserRepository(db)
	problemRepo := postgres.NewProblemRepository(db)
	submissionRepo := postgres.NewSubmissionRepository(db)
	contestRepo := postgres.NewContestRepository(db)
	discussionRepo := postgres.NewDiscussionRepository(db)
	idempotencyRepo := postgres.NewIdempotencyRepository(db)

	redisService := infrastructure.NewRedisService()
	jwtService := infrastructure.NewJWTService()
	emailService := infrastructure.NewEmailService()
	verifyLimiter := infrastructure.NewRateLimiter(10*time.Minute, 3)
	submitLimiter := infrastructure.NewRateLimiter(time.Hour, 20)

	hub := ws.NewHub()
	exec := executor.NewLocalExecutor()

	userService := services.NewUserService(userRepo, idempotencyRepo, redisService, jwtService, emailService, verifyLimiter)
	problemService := services.NewProblemService(problemRepo, submissionRepo)
	judgeService := services.NewJudgeService(problemRepo, submissionRepo, userRepo, redisService, submitLimiter, exec, hub)
	statsService := services.NewStatsService(problemRepo, submissionRepo, userRepo, redisService)
	contestService := services.NewContestService(contestRepo, hub)
	discussionService := services.NewDiscussionService(discussionRepo)

	handler := deliveryhttp.NewHandler(userService, problemService, judgeService, statsService, contestService, discussionService, hub)
	auth := deliveryhttp.NewAuthMiddleware(jwtService, userRepo)

	e := echo.New()
	e.HideBanner = true
	deliveryhttp.RegisterRoutes(e, handler, auth.Middleware())

	log.Println("🚀 CodeForge API running on :" + cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
