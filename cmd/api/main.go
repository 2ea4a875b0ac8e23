package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"fetan/internal/adapter/api"
	"fetan/internal/adapter/api/handler"
	apimiddleware "fetan/internal/adapter/api/middleware"
	"fetan/internal/adapter/api/router"
	adapterrepo "fetan/internal/adapter/repository"
	"fetan/internal/domain/repository"
	"fetan/internal/infrastructure/auth"
	"fetan/internal/infrastructure/gemini"
	"fetan/internal/infrastructure/localstore"
	"fetan/internal/infrastructure/payment"
	"fetan/internal/infrastructure/postgres"
	"fetan/internal/infrastructure/ratelimit"
	"fetan/internal/usecase"
	"fetan/pkg/config"
	"fetan/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		userRepo   repository.UserRepository
		credRepo   repository.CredentialRepository
		jobRepo    repository.JobRepository
		chatRepo   repository.ChatRepository
		trustRepo  repository.TrustRepository
		reviewRepo repository.ReviewRepository
	)

	var replySim *usecase.ReplySimulator

	if cfg.UseRemoteBackend() {
		logger.Info("Storage strategy: remote backend")

		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		userRepo = adapterrepo.NewPostgresUserRepository(pool)
		credRepo = adapterrepo.NewPostgresCredentialRepository(pool)
		jobRepo = adapterrepo.NewPostgresJobRepository(pool)
		chatRepo = adapterrepo.NewPostgresChatRepository(pool)
		trustRepo = adapterrepo.NewPostgresTrustRepository(pool)
		reviewRepo = adapterrepo.NewPostgresReviewRepository(pool)
	} else {
		logger.Info("Storage strategy: local store at %s", cfg.DataDir)

		store, err := localstore.New(cfg.DataDir, time.Duration(cfg.LocalLatencyMs)*time.Millisecond)
		if err != nil {
			log.Fatalf("Failed to open local store: %v", err)
		}
		if err := adapterrepo.SeedLocalJobs(store); err != nil {
			log.Fatalf("Failed to seed local store: %v", err)
		}

		userRepo = adapterrepo.NewLocalUserRepository(store)
		credRepo = adapterrepo.NewLocalCredentialRepository(store)
		jobRepo = adapterrepo.NewLocalJobRepository(store)
		chatRepo = adapterrepo.NewLocalChatRepository(store)
		trustRepo = adapterrepo.NewLocalTrustRepository(store)
		reviewRepo = adapterrepo.NewLocalReviewRepository()

		replySim = usecase.NewReplySimulator(chatRepo, 3*time.Second)
		defer replySim.Close()
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine(ctx)

	var geminiClient *gemini.Client
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, assistant endpoints will report upstream unavailable")
	}

	gateway := payment.NewGateway(2 * time.Second)

	authUseCase := usecase.NewAuthUseCase(userRepo, credRepo, tokens)
	jobUseCase := usecase.NewJobUseCase(jobRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo, rateLimiter, replySim)
	trustUseCase := usecase.NewTrustUseCase(trustRepo, cfg.UseRemoteBackend())
	userUseCase := usecase.NewUserUseCase(userRepo, reviewRepo)
	assistantUseCase := usecase.NewAssistantUseCase(geminiClient)

	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokens)

	router.Setup(e, router.Handlers{
		Auth:      handler.NewAuthHandler(authUseCase),
		Job:       handler.NewJobHandler(jobUseCase),
		Chat:      handler.NewChatHandler(chatUseCase),
		Trust:     handler.NewTrustHandler(trustUseCase),
		User:      handler.NewUserHandler(userUseCase),
		Assistant: handler.NewAssistantHandler(assistantUseCase),
		Payment:   handler.NewPaymentHandler(gateway),
		Health:    handler.NewHealthHandler(cfg.UseRemoteBackend()),
	}, authMiddleware)

	go func() {
		logger.Info("Starting server on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown: %v", err)
	}
}
