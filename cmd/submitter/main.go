package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alwanly/webhook-submitter/internal/config"
	"github.com/Alwanly/webhook-submitter/internal/submitter/repository"
	"github.com/Alwanly/webhook-submitter/internal/submitter/usecase"
	"github.com/Alwanly/webhook-submitter/pkg/logger"
	"github.com/google/uuid"
)

func main() {
	baseLog, err := logger.NewLoggerFromEnv("submitter")
	if err != nil {
		panic(err)
	}
	defer baseLog.Sync()

	log := baseLog.WithRunID(uuid.NewString())
	log.Info("starting webhook submitter")

	cfg, err := config.LoadSubmitterConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	log.Info("configuration loaded",
		logger.String("registration_url", cfg.RegistrationURL),
		logger.String("fallback_webhook_url", cfg.FallbackWebhookURL),
		logger.Duration("request_timeout", cfg.RequestTimeout),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}

	registrationClient := repository.NewRegistrationClient(cfg, httpClient, log.Component("registration_client"))
	webhookClient := repository.NewWebhookClient(httpClient, log.Component("webhook_client"))

	uc := usecase.NewUseCase(registrationClient, webhookClient, cfg, log)

	resp, err := uc.Run(ctx, os.Stdout)
	if err != nil {
		log.WithError(err).Fatal("webhook submission aborted")
	}

	if !resp.Successful() {
		log.Error("webhook rejected submission", logger.Int(logger.FieldStatusCode, resp.StatusCode))
		baseLog.Sync()
		os.Exit(1)
	}

	log.Info("webhook submission finished", logger.Int(logger.FieldStatusCode, resp.StatusCode))
}
