package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitlife/internal/auth"
	"fitlife/internal/config"
	"fitlife/internal/db"
	"fitlife/internal/email"
	"fitlife/internal/logger"
	"fitlife/internal/server"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.LogLevel)
	logger.Info("Starting FitLife API")

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := server.Deps{DB: database, Config: cfg}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("Redis unreachable at startup", "addr", cfg.RedisAddr, "error", err.Error())
		}
		deps.Revocations = auth.NewRedisRevocationStore(rdb)

		if cfg.EmailEnabled() {
			mailer := email.New(rdb, email.Config{
				From:     cfg.EmailFrom,
				FromName: cfg.EmailFromName,
				SMTPHost: cfg.SMTPHost,
				SMTPPort: cfg.SMTPPort,
				SMTPUser: cfg.SMTPUser,
				SMTPPass: cfg.SMTPPass,
			})
			deps.Notifier = mailer
			go mailer.Start(ctx)
			logger.Info("Email worker started")
		}
	} else {
		logger.Warn("REDIS_ADDR not set: logout revocation and reminder e-mails are disabled")
	}

	srv, err := server.New(deps)
	if err != nil {
		logger.Fatalf("Failed to build server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "port", cfg.Port)
		serverErr <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			logger.Errorf("Server error: %v", err)
		}
	}

	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
