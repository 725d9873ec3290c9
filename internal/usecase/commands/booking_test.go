//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"timewise/internal/domain/availability"
	"timewise/internal/domain/booking"
	"timewise/internal/infra"
	"timewise/internal/pkg/clock"
	"timewise/internal/pkg/errs"
	"timewise/internal/usecase/commands"
	"timewise/internal/usecase/shared"
	"timewise/tests/common/builder"
	"timewise/tests/common/fake"
	sharedmock "timewise/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var bookingNow = time.Date(2025, time.June, 28, 12, 0, 0, 0, time.UTC)

type bookingFixture struct {
	store  *fake.SettingsStore
	ledger *fake.BookingLedger
	queue  *sharedmock.MockConfirmationQueue
	cmds   commands.BookingCommands
}

// newBookingFixture stores a Mon-Fri policy offering 09:00 and 10:00 with
// July 4 2025 disabled.
func newBookingFixture(t *testing.T, records ...booking.Record) *bookingFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.DiscardHandler)

	store := fake.NewSettingsStoreWith(availability.Fields{
		availability.FieldWeekdays:      "1,2,3,4,5",
		availability.FieldDisabledDates: "2025-07-04",
		availability.FieldTimeSlots:     "09:00,10:00",
	})
	ledger := fake.NewBookingLedger(records...)
	queue := sharedmock.NewMockConfirmationQueue(ctrl)

	return &bookingFixture{
		store:  store,
		ledger: ledger,
		queue:  queue,
		cmds: commands.NewBookingCommands(
			shared.NewPolicyBootstrapper(store, logger),
			ledger,
			queue,
			clock.NewMockClock(bookingNow),
			logger,
		),
	}
}

func TestCreateBooking_Success(t *testing.T) {
	existing := builder.NewBookingBuilder().WithDate("2025-07-01").WithTimeSlot("10:00").BuildRecords(3)
	f := newBookingFixture(t, existing...)
	req := builder.NewBookingBuilder().WithDate("2025-07-01").WithTimeSlot("10:00").BuildCreateRequestDTO()

	f.queue.EXPECT().EnqueueConfirmation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *booking.Booking) error {
			assert.Equal(t, "2025-07-01", b.Day().String())
			assert.Equal(t, bookingNow, b.CreatedAt())
			return nil
		})

	res, err := f.cmds.CreateBooking(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "2025-07-01", res.Day.String())
	assert.Equal(t, "10:00", res.TimeSlot)
	assert.True(t, res.ConfirmationQueued)
	assert.Equal(t, 16, res.RemainingInTimeSlot)
	assert.Len(t, f.ledger.Records(), 4)
}

func TestCreateBooking_Rejections(t *testing.T) {
	testCases := []struct {
		name      string
		existing  []booking.Record
		mutate    func(*builder.BookingBuilder)
		expectErr error
	}{
		{
			name:      "invalid email",
			mutate:    func(b *builder.BookingBuilder) { b.Email = "not-an-email" },
			expectErr: commands.ErrInvalidBooking,
		},
		{
			name:      "unparsable date",
			mutate:    func(b *builder.BookingBuilder) { b.Date = "07/01/2025" },
			expectErr: commands.ErrInvalidBooking,
		},
		{
			name:      "time outside the master list",
			mutate:    func(b *builder.BookingBuilder) { b.TimeSlot = "08:00" },
			expectErr: commands.ErrInvalidBooking,
		},
		{
			name:      "date before today",
			mutate:    func(b *builder.BookingBuilder) { b.Date = "2025-06-27" },
			expectErr: commands.ErrDayInPast,
		},
		{
			name:      "disabled date",
			mutate:    func(b *builder.BookingBuilder) { b.Date = "2025-07-04" },
			expectErr: commands.ErrDayNotBookable,
		},
		{
			name:      "weekend",
			mutate:    func(b *builder.BookingBuilder) { b.Date = "2025-07-05" },
			expectErr: commands.ErrDayNotBookable,
		},
		{
			name:      "before program start",
			mutate:    func(b *builder.BookingBuilder) { b.Date = "2025-06-28" },
			expectErr: commands.ErrDayNotBookable,
		},
		{
			name:      "slot not in policy",
			mutate:    func(b *builder.BookingBuilder) { b.TimeSlot = "15:00" },
			expectErr: commands.ErrSlotNotOffered,
		},
		{
			name:      "slot full",
			existing:  builder.NewBookingBuilder().WithDate("2025-07-01").WithTimeSlot("09:00").BuildRecords(availability.SlotCapacity),
			mutate:    func(b *builder.BookingBuilder) { b.TimeSlot = "09:00" },
			expectErr: commands.ErrSlotFull,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newBookingFixture(t, tc.existing...)
			req := builder.NewBookingBuilder().With(tc.mutate).BuildCreateRequestDTO()

			_, err := f.cmds.CreateBooking(context.Background(), req)

			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.expectErr), "got %v", err)
			assert.Len(t, f.ledger.Records(), len(tc.existing), "nothing appended")
		})
	}
}

func TestCreateBooking_StorageFailures(t *testing.T) {
	t.Run("ledger read failure", func(t *testing.T) {
		f := newBookingFixture(t)
		f.ledger.FailFetch = infra.KindUnavailable

		_, err := f.cmds.CreateBooking(context.Background(), builder.NewBookingBuilder().BuildCreateRequestDTO())

		assert.True(t, errs.Is(err, commands.ErrStorageUnavailable))
	})

	t.Run("append failure", func(t *testing.T) {
		f := newBookingFixture(t)
		f.ledger.FailAppend = infra.KindAccessDenied

		_, err := f.cmds.CreateBooking(context.Background(), builder.NewBookingBuilder().BuildCreateRequestDTO())

		assert.True(t, errs.Is(err, commands.ErrStorageAccessDenied))
	})

	t.Run("settings failure", func(t *testing.T) {
		f := newBookingFixture(t)
		f.store.FailRead = infra.KindUnavailable

		_, err := f.cmds.CreateBooking(context.Background(), builder.NewBookingBuilder().BuildCreateRequestDTO())

		assert.True(t, errs.Is(err, commands.ErrStorageUnavailable))
	})

	t.Run("enqueue failure keeps the booking", func(t *testing.T) {
		f := newBookingFixture(t)
		f.queue.EXPECT().EnqueueConfirmation(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		res, err := f.cmds.CreateBooking(context.Background(), builder.NewBookingBuilder().BuildCreateRequestDTO())

		require.NoError(t, err)
		assert.False(t, res.ConfirmationQueued)
		assert.Len(t, f.ledger.Records(), 1)
	})
}
