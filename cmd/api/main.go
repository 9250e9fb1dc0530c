package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/plateful/recipebook-backend/config"
	"github.com/plateful/recipebook-backend/internal/api"
	"github.com/plateful/recipebook-backend/internal/database"
	"github.com/plateful/recipebook-backend/internal/middleware"
	"github.com/plateful/recipebook-backend/internal/router"
	"github.com/plateful/recipebook-backend/internal/server"
	"github.com/plateful/recipebook-backend/internal/service"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, nil)))

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.AutoMigrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var limiter *middleware.RateLimiter
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		limiter = middleware.NewWriteRateLimiter(redisClient)
	}

	var store service.ImageStore
	if cfg.S3Bucket != "" {
		s3Cfg, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			slog.Error("failed to configure S3 storage", "error", err)
			os.Exit(1)
		}
		store = service.NewS3Store(s3Cfg)
	} else {
		store = service.NewDiskStore(cfg.MediaRoot)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)

	handlers := router.Handlers{
		User:       api.NewUserHandler(authService, service.NewUserService(db)),
		Recipe:     api.NewRecipeHandler(service.NewRecipeService(db), service.NewImageService(db, store)),
		Tag:        api.NewTagHandler(service.NewTagService(db)),
		Ingredient: api.NewIngredientHandler(service.NewIngredientService(db)),
	}

	srv := server.New(cfg.Addr(), router.Setup(handlers, authService, limiter))

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		slog.Info("shutting down", "signal", sig.String())
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
