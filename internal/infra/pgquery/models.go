package pgquery

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Setting struct {
	Key       string
	Value     string
	UpdatedAt pgtype.Timestamptz
}

type UpsertSettingParams struct {
	Key   string
	Value string
}

type Booking struct {
	ID          pgtype.UUID
	CreatedAt   pgtype.Timestamptz
	Name        string
	Email       string
	Phone       string
	Whatsapp    pgtype.Text
	BookingDate pgtype.Date
	BookingTime string
}

type InsertBookingParams struct {
	ID          pgtype.UUID
	CreatedAt   pgtype.Timestamptz
	Name        string
	Email       string
	Phone       string
	Whatsapp    pgtype.Text
	BookingDate pgtype.Date
	BookingTime string
}

type ListBookingsBetweenParams struct {
	FromDate pgtype.Date
	ToDate   pgtype.Date
}
