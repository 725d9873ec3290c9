//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"timewise/internal/domain/availability"
	"timewise/internal/domain/booking"
	"timewise/internal/infra"
	"timewise/internal/infra/db"
	"timewise/internal/infra/pgquery"
	"timewise/internal/pkg/pgconv"
	"timewise/tests/common/builder"
	repositorymock "timewise/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingRepository_Append(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	queries := repositorymock.NewMockBookingQueries(ctrl)
	queries.EXPECT().InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DBTX, arg pgquery.InsertBookingParams) error {
			assert.Equal(t, pgconv.UUIDToPgtype(b.ID()), arg.ID)
			assert.Equal(t, "Jane Doe", arg.Name)
			assert.Equal(t, "10:00", arg.BookingTime)
			assert.Equal(t, "2025-07-01", pgconv.DateStringFromPgtype(arg.BookingDate))
			assert.Equal(t, "+1 555 010 2030", pgconv.StringFromPgtype(arg.Whatsapp))
			return nil
		})

	repo := NewBookingRepository(queries, nil, discard)
	assert.NoError(t, repo.Append(context.Background(), b))
}

func TestBookingRepository_FetchRecordsForRange(t *testing.T) {
	from, err := availability.ParseDay("2025-07-01")
	require.NoError(t, err)
	to := from.AddDays(30)

	t.Run("rows are returned as records", func(t *testing.T) {
		created := time.Date(2025, time.June, 20, 8, 30, 0, 0, time.UTC)
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockBookingQueries(ctrl)
		queries.EXPECT().ListBookingsBetween(gomock.Any(), gomock.Any(), pgquery.ListBookingsBetweenParams{
			FromDate: pgconv.DateToPgtype(from.Time()),
			ToDate:   pgconv.DateToPgtype(to.Time()),
		}).Return([]pgquery.Booking{{
			CreatedAt:   pgconv.TimeToPgtype(created),
			Name:        "Jane Doe",
			Email:       "jane@example.com",
			Phone:       "5550102030",
			BookingDate: pgconv.DateToPgtype(from.Time()),
			BookingTime: "09:00",
		}}, nil)

		repo := NewBookingRepository(queries, nil, discard)
		records, err := repo.FetchRecordsForRange(context.Background(), from, to)

		require.NoError(t, err)
		want := []booking.Record{{
			BookingRecord: availability.BookingRecord{Date: "2025-07-01", TimeSlot: "09:00"},
			Timestamp:     "2025-06-20 08:30:00",
			Name:          "Jane Doe",
			Email:         "jane@example.com",
			Phone:         "5550102030",
		}}
		if diff := cmp.Diff(want, records); diff != "" {
			t.Errorf("records mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("driver failure is unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockBookingQueries(ctrl)
		queries.EXPECT().ListBookingsBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		repo := NewBookingRepository(queries, nil, discard)
		_, err := repo.FetchRecordsForRange(context.Background(), from, to)

		assert.True(t, infra.IsKind(err, infra.KindUnavailable), "got %v", err)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
