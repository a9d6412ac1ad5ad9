package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storyteller-server/internal/ai"
	"storyteller-server/internal/auth"
	"storyteller-server/internal/config"
	"storyteller-server/internal/database"
	"storyteller-server/internal/handler"
	"storyteller-server/internal/logger"
	"storyteller-server/internal/prompt"
	"storyteller-server/internal/repository"
	"storyteller-server/internal/scenario"
	"storyteller-server/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: "json",
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.ReplaceGlobals(log)
	zap.L().Info("Configuration loaded", zap.String("env", cfg.Env))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pgPool, err := database.NewPgxPool(ctx, cfg.DSN(), log)
	if err != nil {
		zap.L().Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer pgPool.Close()

	if err := database.RunMigrations(cfg.DSN(), log); err != nil {
		zap.L().Fatal("Failed to run migrations", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		zap.L().Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	zap.L().Info("Connected to Redis")

	// --- Dependency Injection ---
	userRepo := repository.NewPgUserRepository(pgPool, log)
	scenarioRepo := repository.NewPgScenarioRepository(pgPool, log)
	sessionRepo := repository.NewPgSessionRepository(pgPool, log)
	denylist := repository.NewRedisTokenDenylist(redisClient, log)

	if err := scenario.Seed(ctx, scenarioRepo, log); err != nil {
		zap.L().Fatal("Failed to seed scenarios", zap.Error(err))
	}

	gateway := ai.NewGateway(ai.GatewayConfig{
		APIKey:     cfg.LLMAPIKey,
		BaseURL:    cfg.LLMBaseURL,
		Model:      cfg.LLMModel,
		Timeout:    cfg.LLMTimeout,
		MaxRetries: cfg.LLMMaxRetries,
	}, log)
	richClient := ai.NewRichClient(ai.RichClientConfig{
		APIKey:  cfg.LLMAPIKey,
		BaseURL: cfg.LLMOpenAIBaseURL,
		Model:   cfg.LLMModel,
		Timeout: cfg.LLMTimeout,
	})
	orchestrator := ai.NewOrchestrator(richClient, gateway, log)

	assembler := prompt.NewAssembler(log)
	authSvc := auth.NewAuthService(userRepo, denylist, cfg.JWTSecret, cfg.TokenTTL, log)
	storySvc := service.NewStoryService(sessionRepo, scenarioRepo, assembler, orchestrator, log)
	chatSvc := service.NewChatService(sessionRepo, assembler, orchestrator, log)

	h := handler.NewHandler(authSvc, storySvc, chatSvc, scenarioRepo, log)

	// --- HTTP Server Setup (Gin) ---
	gin.SetMode(gin.ReleaseMode)
	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(handler.RequestLogger(log))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.GetAllowedOrigins()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	h.RegisterRoutes(router)

	p := ginprometheus.NewPrometheus("gin")
	p.Use(router)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info("Starting HTTP server", zap.String("port", cfg.ServerPort))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("HTTP Server listen error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exiting")
}
