package pgquery

import (
	"context"

	"timewise/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

// Queries holds the SQL used by the repositories. The settings table name is
// configurable, so its statements are rendered once at construction.
type Queries struct {
	createSettingsTable string
	listSettings        string
	upsertSetting       string
}

func New(settingsTable string) *Queries {
	table := pgx.Identifier{settingsTable}.Sanitize()
	return &Queries{
		createSettingsTable: `CREATE TABLE ` + table + ` (
    setting_key   TEXT PRIMARY KEY,
    setting_value TEXT NOT NULL,
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		listSettings: `SELECT setting_key, setting_value, updated_at FROM ` + table + ` ORDER BY setting_key`,
		upsertSetting: `INSERT INTO ` + table + ` (setting_key, setting_value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (setting_key) DO UPDATE
SET setting_value = EXCLUDED.setting_value, updated_at = EXCLUDED.updated_at`,
	}
}

// CreateSettingsTable fails with duplicate_table when the table exists.
func (q *Queries) CreateSettingsTable(ctx context.Context, dbtx db.DBTX) error {
	_, err := dbtx.Exec(ctx, q.createSettingsTable)
	return err
}

func (q *Queries) ListSettings(ctx context.Context, dbtx db.DBTX) ([]Setting, error) {
	rows, err := dbtx.Query(ctx, q.listSettings)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Setting
	for rows.Next() {
		var i Setting
		if err := rows.Scan(&i.Key, &i.Value, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (q *Queries) UpsertSetting(ctx context.Context, dbtx db.DBTX, arg UpsertSettingParams) error {
	_, err := dbtx.Exec(ctx, q.upsertSetting, arg.Key, arg.Value)
	return err
}

const insertBooking = `INSERT INTO bookings (id, created_at, name, email, phone, whatsapp, booking_date, booking_time)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (q *Queries) InsertBooking(ctx context.Context, dbtx db.DBTX, arg InsertBookingParams) error {
	_, err := dbtx.Exec(ctx, insertBooking,
		arg.ID,
		arg.CreatedAt,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Whatsapp,
		arg.BookingDate,
		arg.BookingTime,
	)
	return err
}

const listBookingsBetween = `SELECT id, created_at, name, email, phone, whatsapp, booking_date, booking_time
FROM bookings
WHERE booking_date BETWEEN $1 AND $2
ORDER BY booking_date, booking_time, created_at`

func (q *Queries) ListBookingsBetween(ctx context.Context, dbtx db.DBTX, arg ListBookingsBetweenParams) ([]Booking, error) {
	rows, err := dbtx.Query(ctx, listBookingsBetween, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Booking
	for rows.Next() {
		var i Booking
		if err := rows.Scan(
			&i.ID,
			&i.CreatedAt,
			&i.Name,
			&i.Email,
			&i.Phone,
			&i.Whatsapp,
			&i.BookingDate,
			&i.BookingTime,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
