//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"timewise/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertBookings stores n bookings for one date and slot, bypassing the API.
func InsertBookings(t *testing.T, dbtx db.DBTX, date, slot string, n int) {
	t.Helper()

	ctx := context.Background()
	createdAt := time.Date(2025, time.June, 20, 8, 0, 0, 0, time.UTC)
	for i := range n {
		_, err := dbtx.Exec(ctx, `
			INSERT INTO bookings (id, name, email, phone, whatsapp, booking_date, booking_time, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.New(), "Seed Booker", "seed@example.com", "+15550100000", "+15550100000",
			date, slot, createdAt.Add(time.Duration(i)*time.Second))
		require.NoError(t, err)
	}
}

// CountBookings returns the stored bookings for one date and slot.
func CountBookings(t *testing.T, dbtx db.DBTX, date, slot string) int {
	t.Helper()

	var n int
	err := dbtx.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE booking_date = $1 AND booking_time = $2", date, slot).Scan(&n)
	require.NoError(t, err)
	return n
}

// SettingsRows reads the settings table as a key/value map.
func SettingsRows(t *testing.T, dbtx db.DBTX, table string) map[string]string {
	t.Helper()

	rows, err := dbtx.Query(context.Background(), "SELECT setting_key, setting_value FROM "+pgx.Identifier{table}.Sanitize())
	require.NoError(t, err)
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var k, v string
		require.NoError(t, rows.Scan(&k, &v))
		out[k] = v
	}
	require.NoError(t, rows.Err())
	return out
}

// ResetDB empties the bookings table and drops the settings table so the
// next request bootstraps the settings from scratch.
func ResetDB(pool *pgxpool.Pool, settingsTable string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE bookings"); err != nil {
		return err
	}
	_, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+pgx.Identifier{settingsTable}.Sanitize())
	return err
}
