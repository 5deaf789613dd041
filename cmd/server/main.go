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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/taskflow/storefront/internal/api"
	"github.com/taskflow/storefront/internal/config"
	"github.com/taskflow/storefront/internal/shared"
	"github.com/taskflow/storefront/internal/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := utils.InitLogger(cfg.LogLevel, cfg.Debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer utils.Zlog.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens := shared.NewTokenManager(cfg.JwtSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	refresh := shared.NewTokenManager(cfg.JwtRefreshSecret, time.Duration(cfg.RefreshTTLMinutes)*time.Minute)
	deps := api.NewSeededDependencies(tokens, refresh)

	engine := gin.New()
	engine.Use(
		shared.RequestID(),
		shared.RequestLogger(),
		shared.Recovery(),
		shared.CORS(cfg.AllowedOrigins),
		shared.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)
	api.RegisterRoutes(engine.Group("/api/v1"), deps)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	go func() {
		utils.Zlog.Info("Server starting",
			zap.String("service", cfg.ServiceName),
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Zlog.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Zlog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		utils.Zlog.Error("Forced shutdown", zap.Error(err))
	}
	utils.Zlog.Info("Server stopped")
}
