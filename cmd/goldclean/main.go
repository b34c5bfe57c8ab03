// Package main запускает HTTP-сервер сервиса Gold Clean.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goldclean/goldclean-system/internal/config"
	"github.com/goldclean/goldclean-system/internal/draft"
	"github.com/goldclean/goldclean-system/internal/handler"
	"github.com/goldclean/goldclean-system/internal/mailer"
	"github.com/goldclean/goldclean-system/internal/middleware"
	"github.com/goldclean/goldclean-system/internal/notification"
	"github.com/goldclean/goldclean-system/internal/payment"
	"github.com/goldclean/goldclean-system/internal/repository"
	"github.com/goldclean/goldclean-system/internal/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	repo, err := repository.NewPostgresRepository(cfg.DatabaseURI)
	if err != nil {
		sugar.Fatalw("database initialization error", "error", err.Error())
	}
	defer repo.Close()

	var drafts draft.Store
	if cfg.RedisAddress != "" {
		redisDrafts, err := draft.NewRedisStore(cfg.RedisAddress, cfg.RedisPassword, draft.DefaultTTL)
		if err != nil {
			sugar.Fatalw("redis initialization error", "error", err.Error())
		}
		drafts = redisDrafts
	} else {
		sugar.Info("redis address is empty, using in-memory draft store")
		drafts = draft.NewMemoryStore(draft.DefaultTTL)
	}

	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.FromEmail)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var dispatcher notification.Dispatcher
	if cfg.BrokerURL != "" {
		amqpDispatcher, err := notification.NewAMQPDispatcher(cfg.BrokerURL, logger)
		if err != nil {
			sugar.Fatalw("broker initialization error", "error", err.Error())
		}
		defer amqpDispatcher.Close()
		dispatcher = amqpDispatcher

		go notification.StartConsumer(ctx, cfg.BrokerURL, smtpMailer, cfg.AdminEmail, logger)
	} else {
		sugar.Info("broker url is empty, sending emails synchronously")
		dispatcher = notification.NewDirectDispatcher(smtpMailer, cfg.AdminEmail, logger)
	}

	payments := payment.NewClient(cfg.StripeSecretKey)

	svc := service.NewService(repo, drafts, payments, dispatcher, logger, service.Options{
		BaseURL:             cfg.BaseURL,
		Currency:            cfg.Currency,
		VacuumCleanerPrice:  cfg.VacuumCleanerPrice,
		CancellationFee:     cfg.CancellationFee,
		StripeWebhookSecret: cfg.StripeWebhookSecret,
	})
	defer svc.Close()

	authMiddleware := middleware.NewAuthMiddleware(cfg.SessionSecret)
	sessionMiddleware := middleware.NewSessionMiddleware(cfg.SessionSecret)
	h := handler.NewHandler(svc, logger, authMiddleware, sessionMiddleware)

	r := h.SetupRouter()

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	g, ctx := errgroup.WithContext(ctx)

	// Запуск фоновой рассылки напоминаний об уборке
	g.Go(func() error {
		svc.StartCleaningReminders(ctx)
		return nil
	})

	// Запуск HTTP-сервера
	g.Go(func() error {
		sugar.Infow("starting goldclean server", "addr", cfg.RunAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown при отмене контекста (сигнал или ошибка в другой горутине)
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
