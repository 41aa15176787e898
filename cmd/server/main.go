package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelbot/internal/config"
	"travelbot/internal/handler"
	"travelbot/internal/logger"
	"travelbot/internal/repository"
	"travelbot/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.Logger

	log.Info().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("git_commit", GitCommit).
		Msg("Travel Agency Chatbot API")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	ctx := context.Background()

	// Optional chat log database
	var (
		chatLog service.ChatLogStore
		probe   service.StorageProbe
	)
	if cfg.PostgreSQL.Enabled {
		repo, err := repository.NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			log.Warn().Err(err).Msg("⚠️  PostgreSQL unavailable - chat logging disabled")
		} else {
			defer repo.Close()
			probe = repo
			if err := repo.EnsureSchema(ctx); err != nil {
				log.Warn().Err(err).Msg("⚠️  Chat log schema unavailable - chat logging disabled")
			} else {
				chatLog = repo
				log.Info().Msg("✅ Connected to PostgreSQL database")
			}
		}
	} else {
		log.Info().Msg("PostgreSQL not configured - set DATABASE_URL to enable chat logging")
	}

	// Optional intent counters
	var counter service.IntentCounter
	if cfg.Redis.Enabled {
		redisCounter, err := repository.NewRedisCounter(ctx, cfg.Redis.URL)
		if err != nil {
			log.Warn().Err(err).Msg("⚠️  Redis unavailable - intent stats disabled")
		} else {
			defer redisCounter.Close()
			counter = redisCounter
			log.Info().Msg("✅ Connected to Redis")
		}
	}

	// Initialize services
	catalog, err := service.LoadIntentCatalog()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load intent catalog")
	}
	parser := service.NewIntentParser()
	chatService := service.NewChatService(
		parser,
		chatLog,
		counter,
		time.Duration(cfg.Chat.LogTimeoutSeconds)*time.Second,
	)
	diagnostics := service.NewDiagnosticsService(
		probe,
		cfg.PostgreSQL.DSN != "",
		cfg.PostgreSQL.Name != "",
	)

	log.Info().Int("intents", len(catalog.List())).Msg("✅ Services initialized")

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatService, catalog, 20, 100)
	diagnosticsHandler := handler.NewDiagnosticsHandler(diagnostics)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	corsConfig.AllowCredentials = cfg.Server.AllowCredentials
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"}
	corsConfig.AllowHeaders = []string{"*"}
	if len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*" {
		// Browsers refuse "*" with credentials, so echo the request origin instead
		corsConfig.AllowOrigins = nil
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Travel Agency Chatbot Backend Running"})
	})
	router.GET("/api/hello", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"service":    "travel-chatbot",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	router.GET("/intents", chatHandler.ListIntents)
	router.GET("/intents/:name", chatHandler.GetIntent)
	router.POST("/chat", chatHandler.Chat)
	router.GET("/test", diagnosticsHandler.Test)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/stats", chatHandler.Stats)
		apiV1.GET("/chats", chatHandler.RecentChats)
	}

	setupNoRoute(router)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Info().Str("addr", addr).Msg("🚀 Starting server")

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
	chatService.Wait()

	log.Info().Msg("✅ Server stopped")
}
