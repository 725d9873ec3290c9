package availability

import (
	"strings"
	"time"
)

const DayLayout = "2006-01-02"

// year-first layouts accepted for dates already stored in the ledger.
// Day/month forms such as 01/07/2025 depend on the spreadsheet locale and are
// rejected rather than guessed.
var recordLayouts = []string{
	DayLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// Day is a calendar day without time or zone. Comparable, usable as a map key.
type Day struct {
	year  int
	month time.Month
	day   int
}

// NewDay rejects dates that do not exist on the calendar (e.g. 2025-02-30).
func NewDay(year int, month time.Month, day int) (Day, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Day{}, ErrInvalidDate
	}
	return Day{year: year, month: month, day: day}, nil
}

func mustDay(year int, month time.Month, day int) Day {
	d, err := NewDay(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DayOf takes the calendar day of t in t's own location.
func DayOf(t time.Time) Day {
	return Day{year: t.Year(), month: t.Month(), day: t.Day()}
}

// ParseDay accepts only the canonical yyyy-MM-dd form.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, strings.TrimSpace(s))
	if err != nil {
		return Day{}, ErrInvalidDate
	}
	return DayOf(t), nil
}

// ParseRecordDay is used for stored booking rows, which may have been
// reformatted by a spreadsheet.
func ParseRecordDay(s string) (Day, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Day{}, ErrInvalidDate
	}
	for _, layout := range recordLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DayOf(t), nil
		}
	}
	return Day{}, ErrInvalidDate
}

func (d Day) Year() int             { return d.year }
func (d Day) Month() time.Month     { return d.month }
func (d Day) DayOfMonth() int       { return d.day }
func (d Day) IsZero() bool          { return d == Day{} }
func (d Day) Weekday() time.Weekday { return d.Time().Weekday() }

// Time is midnight UTC of the day.
func (d Day) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Day) String() string {
	return d.Time().Format(DayLayout)
}

func (d Day) Before(other Day) bool {
	return d.Time().Before(other.Time())
}

func (d Day) After(other Day) bool {
	return other.Before(d)
}

func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

func (d Day) InMonth(year int, month time.Month) bool {
	return d.year == year && d.month == month
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(b []byte) error {
	parsed, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MonthBounds returns the first and last day of the month.
func MonthBounds(year int, month time.Month) (Day, Day, error) {
	if month < time.January || month > time.December {
		return Day{}, Day{}, ErrInvalidMonth
	}
	first := Day{year: year, month: month, day: 1}
	last := first.AddDays(DaysInMonth(year, month) - 1)
	return first, last, nil
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
