//go:build unit

package queue_test

import (
	"context"
	"log/slog"
	"testing"

	"timewise/internal/domain/booking"
	"timewise/internal/infra/queue"
	"timewise/internal/pkg/config"
	"timewise/tests/common/builder"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.DiscardHandler)

type recordingEnqueuer struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (e *recordingEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.tasks = append(e.tasks, task)
	e.opts = append(e.opts, opts)
	return &asynq.TaskInfo{ID: "task-1", Queue: "default", Type: task.Type()}, nil
}

type recordingConfirmer struct {
	confirmed []*booking.Booking
	err       error
}

func (c *recordingConfirmer) Confirm(_ context.Context, b *booking.Booking) error {
	c.confirmed = append(c.confirmed, b)
	return c.err
}

func optionValue(opts []asynq.Option, typ asynq.OptionType) any {
	for _, o := range opts {
		if o.Type() == typ {
			return o.Value()
		}
	}
	return nil
}

func TestConfirmationQueue_Enqueue(t *testing.T) {
	ctx := context.Background()
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("task carries the booking and retry policy", func(t *testing.T) {
		enq := &recordingEnqueuer{}
		q := queue.NewConfirmationQueue(enq, config.QueueConfig{MaxRetry: 3}, discard)

		require.NoError(t, q.EnqueueConfirmation(ctx, b))

		require.Len(t, enq.tasks, 1)
		assert.Equal(t, queue.TypeBookingConfirm, enq.tasks[0].Type())
		assert.Equal(t, b.ID().String(), optionValue(enq.opts[0], asynq.TaskIDOpt))
		assert.Equal(t, 3, optionValue(enq.opts[0], asynq.MaxRetryOpt))

		decoded, err := queue.ParseConfirmationTask(enq.tasks[0])
		require.NoError(t, err)
		assert.Equal(t, b.Record(), decoded.Record())
		assert.Equal(t, b.ID(), decoded.ID())
	})

	t.Run("duplicate task id is not an error", func(t *testing.T) {
		q := queue.NewConfirmationQueue(&recordingEnqueuer{err: asynq.ErrTaskIDConflict}, config.QueueConfig{}, discard)
		assert.NoError(t, q.EnqueueConfirmation(ctx, b))
	})

	t.Run("redis failure is returned", func(t *testing.T) {
		q := queue.NewConfirmationQueue(&recordingEnqueuer{err: assert.AnError}, config.QueueConfig{}, discard)
		assert.ErrorIs(t, q.EnqueueConfirmation(ctx, b), assert.AnError)
	})

	t.Run("disabled queue reports it", func(t *testing.T) {
		assert.ErrorIs(t, queue.DisabledQueue{}.EnqueueConfirmation(ctx, b), queue.ErrQueueDisabled)
	})
}

func TestHandleConfirmation(t *testing.T) {
	ctx := context.Background()
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	task, err := queue.NewConfirmationTask(b)
	require.NoError(t, err)

	t.Run("valid task is confirmed", func(t *testing.T) {
		confirmer := &recordingConfirmer{}
		require.NoError(t, queue.HandleConfirmation(confirmer, discard)(ctx, task))
		require.Len(t, confirmer.confirmed, 1)
		assert.Equal(t, b.ID(), confirmer.confirmed[0].ID())
	})

	t.Run("delivery failure is retried", func(t *testing.T) {
		confirmer := &recordingConfirmer{err: assert.AnError}
		assert.ErrorIs(t, queue.HandleConfirmation(confirmer, discard)(ctx, task), assert.AnError)
	})

	t.Run("broken payload skips retry", func(t *testing.T) {
		confirmer := &recordingConfirmer{}
		broken := asynq.NewTask(queue.TypeBookingConfirm, []byte(`{"email":"nope"}`))

		err := queue.HandleConfirmation(confirmer, discard)(ctx, broken)

		assert.ErrorIs(t, err, asynq.SkipRetry)
		assert.Empty(t, confirmer.confirmed)
	})
}
