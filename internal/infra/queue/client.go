package queue

import (
	"context"
	"errors"
	"log/slog"

	"timewise/internal/domain/booking"
	"timewise/internal/pkg/config"
	"timewise/internal/pkg/errs"

	"github.com/hibiken/asynq"
)

var ErrQueueDisabled = errs.New("confirmation queue is disabled")

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func RedisOpt(cfg config.QueueConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
}

type ConfirmationQueue struct {
	client   Enqueuer
	maxRetry int
	logger   *slog.Logger
}

func NewConfirmationQueue(client Enqueuer, cfg config.QueueConfig, logger *slog.Logger) *ConfirmationQueue {
	return &ConfirmationQueue{
		client:   client,
		maxRetry: cfg.MaxRetry,
		logger:   logger,
	}
}

// EnqueueConfirmation uses the booking id as task id, so a booking is
// confirmed at most once while its task is retained.
func (q *ConfirmationQueue) EnqueueConfirmation(ctx context.Context, b *booking.Booking) error {
	task, err := NewConfirmationTask(b)
	if err != nil {
		return err
	}

	info, err := q.client.EnqueueContext(ctx, task,
		asynq.TaskID(b.ID().String()),
		asynq.MaxRetry(q.maxRetry),
		asynq.Queue(defaultQueue),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		q.logger.Debug("confirmation already enqueued", "booking_id", b.ID())
		return nil
	}
	if err != nil {
		return errs.Wrap(err, "failed to enqueue confirmation")
	}

	q.logger.Info("confirmation enqueued", "booking_id", b.ID(), "task_id", info.ID, "queue", info.Queue)
	return nil
}

// DisabledQueue stands in when QUEUE_ENABLED=false.
type DisabledQueue struct{}

func (DisabledQueue) EnqueueConfirmation(context.Context, *booking.Booking) error {
	return ErrQueueDisabled
}
