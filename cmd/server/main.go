package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"exploraneiva/internal/config"
	"exploraneiva/internal/infra"
	"exploraneiva/internal/repository"
	"exploraneiva/internal/router"
	"exploraneiva/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogger(cfg)

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty: logins will be refused")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps := router.Deps{
		Gateway:     infra.NewGateway(cfg.APIBaseURL, cfg.APITimeout),
		Documents:   infra.NewInvoiceGenerator(cfg.PDFStoragePath, cfg.InvoiceLogoURL),
		Preferences: repository.NewFilePreferenceRepository(cfg.StateFile),
	}

	// Redis is optional. With it the remembered e-mail lives in Redis and,
	// when SMTP is configured too, invoices can be e-mailed.
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = infra.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		deps.Redis = rdb
		deps.Preferences = repository.NewRedisPreferenceRepository(rdb)
	}

	if cfg.MailEnabled() {
		mailer := infra.NewMailer(cfg)
		deps.Dispatcher = worker.NewDispatcher(rdb)
		pool := worker.NewPool(rdb, map[string]worker.Handler{
			worker.JobInvoiceEmail: worker.NewInvoiceEmailWorker(mailer),
		})
		pool.Start(ctx, cfg.WorkerPoolSize)
	} else {
		log.Info().Msg("invoice e-mail disabled (needs REDIS_URL and SMTP_HOST)")
	}

	r := router.New(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Str("api", deps.Gateway.BaseURL()).Msgf("Explora Neiva back-office listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}

// setupLogger: dev gets pretty console output, production gets JSON.
func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
