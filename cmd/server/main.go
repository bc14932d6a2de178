package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"message_board/internal/api"
	"message_board/internal/app/service"
	"message_board/internal/domain/repository"
	"message_board/internal/platform/config"
	"message_board/internal/platform/database"
)

func main() {
	cfg := config.Load()
	slog.Info("configuration loaded", "port", cfg.Port, "database", cfg.MongoDatabase)

	client, db, err := database.Connect(cfg.MongoURL, cfg.MongoDatabase)
	if err != nil {
		slog.Error("could not configure database client", "error", err)
		os.Exit(1)
	}

	// Readiness probe; the gate serves 503 until the first ping succeeds.
	health := database.NewHealth(client, db, cfg.ReadinessInterval)
	healthCtx, healthCancel := context.WithCancel(context.Background())
	defer healthCancel()
	go health.Run(healthCtx)

	userRepo := repository.NewMongoUserRepository(db)
	messageRepo := repository.NewMongoMessageRepository(db)

	authService := service.NewAuthService(userRepo, cfg.BcryptCost)
	messageService := service.NewMessageService(messageRepo, cfg.MessageListLimit)

	router := api.NewRouter(authService, messageService, userRepo, health)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("could not listen", "port", cfg.Port, "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("shutting down server")
	healthCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		slog.Warn("database disconnect failed", "error", err)
	}

	slog.Info("server stopped gracefully")
}
