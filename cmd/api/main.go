package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/reina-tokumaru/clinic-reservation-system/cmd/mainconfig"
	"github.com/reina-tokumaru/clinic-reservation-system/internal/api/router"
	"github.com/reina-tokumaru/clinic-reservation-system/internal/clinic"
	appconfig "github.com/reina-tokumaru/clinic-reservation-system/internal/config"
	"github.com/reina-tokumaru/clinic-reservation-system/internal/ledger"
	"github.com/reina-tokumaru/clinic-reservation-system/internal/llm"
	"github.com/reina-tokumaru/clinic-reservation-system/internal/observability/metrics"
	"github.com/reina-tokumaru/clinic-reservation-system/internal/session"
	"github.com/reina-tokumaru/clinic-reservation-system/internal/triage"
	"github.com/reina-tokumaru/clinic-reservation-system/internal/wizard"
	"github.com/reina-tokumaru/clinic-reservation-system/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	if cfg.Env == "development" {
		logger = logging.NewText(cfg.LogLevel)
	}
	logger.Info("starting clinic-reservation-system API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Stores: Redis by default, in-process when running without one.
	var (
		sessionStore session.Store
		ledgerStore  ledger.Store
	)
	if cfg.UseMemoryStores {
		logger.Warn("using in-memory stores; sessions and reservations will not survive a restart")
		sessionStore = session.NewMemoryStore()
		ledgerStore = ledger.NewMemoryStore()
	} else {
		opts := &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		redisClient := redis.NewClient(opts)
		defer redisClient.Close()
		sessionStore = session.NewRedisStore(redisClient, cfg.SessionTTL)
		ledgerStore = ledger.NewRedisStore(redisClient)
	}

	awsCfg, err := mainconfig.LoadAWSConfig(context.Background(), cfg)
	if err != nil {
		logger.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}
	bedrockClient := llm.NewBedrockClient(bedrockruntime.NewFromConfig(awsCfg))

	classifier := triage.NewClassifier(bedrockClient, cfg.BedrockModelID, logger,
		triage.WithTimeout(cfg.TriageTimeout),
		triage.WithMaxTokens(int32(cfg.TriageMaxTokens)),
	)

	registry := prometheus.NewRegistry()
	triageMetrics := metrics.NewTriageMetrics(registry)
	wizardMetrics := metrics.NewWizardMetrics(registry)

	r := router.New(&router.Config{
		Logger:         logger,
		SessionCodec:   session.NewCookieCodec(cfg.SessionSecret),
		WizardHandler:  wizard.NewHandler(sessionStore, clinic.NewDirectory(), wizardMetrics, logger),
		TriageHandler:  triage.NewHandler(classifier, triageMetrics, logger),
		LedgerHandler:  ledger.NewHandler(ledgerStore, logger),
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
