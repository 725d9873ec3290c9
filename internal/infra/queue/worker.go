package queue

import (
	"context"
	"log/slog"

	"timewise/internal/domain/booking"
	"timewise/internal/pkg/config"

	"github.com/hibiken/asynq"
)

const defaultQueue = "default"

type Confirmer interface {
	Confirm(ctx context.Context, b *booking.Booking) error
}

func NewServer(cfg config.QueueConfig, logger *slog.Logger) *asynq.Server {
	return asynq.NewServer(RedisOpt(cfg), asynq.Config{
		Concurrency: cfg.Concurrency,
		Queues: map[string]int{
			defaultQueue: 1,
		},
		Logger:   newAsynqLogger(logger),
		LogLevel: asynq.InfoLevel,
	})
}

func NewServeMux(confirmer Confirmer, logger *slog.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingConfirm, HandleConfirmation(confirmer, logger))
	return mux
}

// HandleConfirmation drops payloads that no longer validate instead of retrying them.
func HandleConfirmation(confirmer Confirmer, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		b, err := ParseConfirmationTask(task)
		if err != nil {
			logger.Error("dropping invalid confirmation task", "error", err.Error())
			return asynq.SkipRetry
		}

		if err := confirmer.Confirm(ctx, b); err != nil {
			logger.Error("confirmation failed", "booking_id", b.ID(), "error", err.Error())
			return err
		}
		return nil
	}
}
