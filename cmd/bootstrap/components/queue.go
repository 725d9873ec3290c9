package components

import (
	"context"
	"log/slog"

	"timewise/internal/infra/queue"
	"timewise/internal/pkg/config"
	"timewise/internal/usecase/shared"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		NewConfirmationQueue,
	),
)

// NewConfirmationQueue falls back to a queue that refuses every job when
// Redis is switched off, so bookings still succeed without confirmations.
func NewConfirmationQueue(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.ConfirmationQueue {
	if !cfg.Queue.Enabled {
		logger.Warn("confirmation queue disabled, bookings will not be confirmed by mail")
		return queue.DisabledQueue{}
	}

	client := asynq.NewClient(queue.RedisOpt(cfg.Queue))
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return queue.NewConfirmationQueue(client, cfg.Queue, logger)
}
