package main

import (
	"context"
	"log/slog"
	"os"

	"timewise/cmd/bootstrap"
	"timewise/internal/infra/gcal"
	"timewise/internal/infra/notify"
	"timewise/internal/infra/queue"
	"timewise/internal/pkg/clock"
	"timewise/internal/pkg/config"
	"timewise/internal/pkg/errs"

	"go.uber.org/fx"
)

func newMailer(cfg config.Config, logger *slog.Logger) notify.Mailer {
	if !cfg.SMTP.Configured() {
		logger.Warn("SMTP is not configured, confirmation jobs will be skipped")
		return nil
	}
	return notify.NewSMTPMailer(cfg.SMTP)
}

func newScheduler(cfg config.Config, logger *slog.Logger) (notify.EventScheduler, error) {
	if cfg.Calendar.CalendarID == "" {
		logger.Info("GOOGLE_CALENDAR_ID not set, calendar events are disabled")
		return nil, nil
	}
	client, err := gcal.NewClient(context.Background(), cfg.Sheets, cfg.Calendar)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func newConfirmer(cfg config.Config, mailer notify.Mailer, scheduler notify.EventScheduler, clk clock.Clock, logger *slog.Logger) (queue.Confirmer, error) {
	return notify.NewConfirmer(mailer, scheduler, cfg.Calendar, cfg.SMTP, clk, logger)
}

func runWorker(lc fx.Lifecycle, cfg config.Config, confirmer queue.Confirmer, logger *slog.Logger) error {
	if !cfg.Queue.Enabled {
		return errs.Configuration("QUEUE_ENABLED is false, the worker has nothing to consume")
	}

	srv := queue.NewServer(cfg.Queue, logger)
	mux := queue.NewServeMux(confirmer, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("🚀 starting confirmation worker", "redis", cfg.Queue.RedisAddr, "concurrency", cfg.Queue.Concurrency)
			return srv.Start(mux)
		},
		OnStop: func(_ context.Context) error {
			logger.Info("🛑 stopping confirmation worker")
			srv.Shutdown()
			return nil
		},
	})
	return nil
}

func main() {
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		fx.Provide(
			clock.NewRealClock,
			newMailer,
			newScheduler,
			newConfirmer,
		),
		fx.Invoke(runWorker),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("worker failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("worker failed to stop cleanly", "error", err)
	}

	slog.Info("worker stopped")
}

