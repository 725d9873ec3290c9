package commands

import (
	"context"
	"log/slog"

	"timewise/internal/domain/availability"
	"timewise/internal/domain/booking"
	reqdto "timewise/internal/handler/dto/request"
	"timewise/internal/pkg/clock"
	"timewise/internal/pkg/errs"
	"timewise/internal/usecase/shared"
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*CreateBookingResult, error)
}

type bookingCommandsImpl struct {
	bootstrapper shared.PolicyBootstrapper
	ledger       shared.BookingLedger
	queue        shared.ConfirmationQueue
	clock        clock.Clock
	programStart availability.Day
	logger       *slog.Logger
}

func NewBookingCommands(
	bootstrapper shared.PolicyBootstrapper,
	ledger shared.BookingLedger,
	queue shared.ConfirmationQueue,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		bootstrapper: bootstrapper,
		ledger:       ledger,
		queue:        queue,
		clock:        clk,
		programStart: availability.ProgramStartDate,
		logger:       logger,
	}
}

// CreateBooking checks capacity and then appends. The two steps are not
// atomic, so concurrent submissions for the last seat can both succeed.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*CreateBookingResult, error) {
	now := c.clock.Now()
	b, err := req.ToDomain(now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	if b.Day().Before(availability.DayOf(now)) {
		return nil, ErrDayInPast
	}

	res, err := c.bootstrapper.Bootstrap(ctx)
	if err != nil {
		return nil, err
	}
	policy := res.Policy

	if !availability.IsDayBookable(b.Day(), policy, c.programStart) {
		return nil, ErrDayNotBookable
	}
	if !policy.OffersTimeSlot(b.TimeSlot()) {
		return nil, ErrSlotNotOffered
	}

	remaining, err := c.remainingInSlot(ctx, b)
	if err != nil {
		return nil, err
	}
	if remaining <= 0 {
		return nil, ErrSlotFull
	}

	if err := c.ledger.Append(ctx, b); err != nil {
		return nil, shared.MarkStorageError(err, "append booking")
	}

	c.logger.Info("booking stored",
		"booking_id", b.ID().String(),
		"date", b.Day().String(),
		"time", b.TimeSlot())

	queued := true
	if err := c.queue.EnqueueConfirmation(ctx, b); err != nil {
		queued = false
		c.logger.Warn("failed to enqueue booking confirmation",
			"booking_id", b.ID().String(),
			"error", err.Error())
	}

	return &CreateBookingResult{
		BookingID:           b.ID(),
		Day:                 b.Day(),
		TimeSlot:            b.TimeSlot(),
		ConfirmationQueued:  queued,
		RemainingInTimeSlot: remaining - 1,
	}, nil
}

func (c *bookingCommandsImpl) remainingInSlot(ctx context.Context, b *booking.Booking) (int, error) {
	records, err := c.ledger.FetchRecordsForRange(ctx, b.Day(), b.Day())
	if err != nil {
		return 0, shared.MarkStorageError(err, "fetch bookings for slot")
	}

	counts, skipped := availability.CountByTimeSlot(booking.CapacityRecords(records), b.Day())
	for _, r := range skipped {
		c.logger.Warn("skipping malformed booking record", "date", r.Date, "time", r.TimeSlot)
	}
	return availability.RemainingForSlot(counts[b.TimeSlot()]), nil
}
