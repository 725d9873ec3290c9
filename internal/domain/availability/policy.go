package availability

import (
	"slices"
	"time"
)

// SlotCapacity is the number of bookings a single (day, time slot) pair accepts.
const SlotCapacity = 20

// ProgramStartDate is the first day bookings are accepted, whatever the policy says.
var ProgramStartDate = mustDay(2025, time.June, 30)

// MasterTimeSlots lists every time slot a policy may offer, hourly from 09:00 to 20:00.
var MasterTimeSlots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00", "14:00",
	"15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
}

var defaultWeekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday,
}

// Policy is the admin configured availability window. Build it with NewPolicy
// so the set invariants always hold.
type Policy struct {
	weekdays      []time.Weekday
	disabledDates []Day
	timeSlots     []string
}

// NewPolicy validates weekdays and slots against their universes and rejects
// duplicates. Slot order is kept as given; weekdays and dates are sorted.
func NewPolicy(weekdays []time.Weekday, disabledDates []Day, timeSlots []string) (Policy, error) {
	seenWeekday := make(map[time.Weekday]struct{}, len(weekdays))
	for _, w := range weekdays {
		if w < time.Sunday || w > time.Saturday {
			return Policy{}, ErrInvalidWeekday
		}
		if _, dup := seenWeekday[w]; dup {
			return Policy{}, ErrDuplicateWeekday
		}
		seenWeekday[w] = struct{}{}
	}

	seenDay := make(map[Day]struct{}, len(disabledDates))
	for _, d := range disabledDates {
		if d.IsZero() {
			return Policy{}, ErrInvalidDate
		}
		if _, dup := seenDay[d]; dup {
			return Policy{}, ErrDuplicateDisabledDate
		}
		seenDay[d] = struct{}{}
	}

	seenSlot := make(map[string]struct{}, len(timeSlots))
	for _, s := range timeSlots {
		if !IsMasterTimeSlot(s) {
			return Policy{}, ErrUnknownTimeSlot
		}
		if _, dup := seenSlot[s]; dup {
			return Policy{}, ErrDuplicateTimeSlot
		}
		seenSlot[s] = struct{}{}
	}

	p := Policy{
		weekdays:      slices.Clone(weekdays),
		disabledDates: slices.Clone(disabledDates),
		timeSlots:     slices.Clone(timeSlots),
	}
	slices.Sort(p.weekdays)
	slices.SortFunc(p.disabledDates, compareDays)
	return p, nil
}

// DefaultPolicy offers Monday to Saturday, every master slot and no holidays.
func DefaultPolicy() Policy {
	return Policy{
		weekdays:      slices.Clone(defaultWeekdays),
		disabledDates: []Day{},
		timeSlots:     slices.Clone(MasterTimeSlots),
	}
}

func IsMasterTimeSlot(slot string) bool {
	return slices.Contains(MasterTimeSlots, slot)
}

func (p Policy) Weekdays() []time.Weekday { return slices.Clone(p.weekdays) }
func (p Policy) DisabledDates() []Day     { return slices.Clone(p.disabledDates) }
func (p Policy) TimeSlots() []string      { return slices.Clone(p.timeSlots) }

func (p Policy) AllowsWeekday(w time.Weekday) bool {
	return slices.Contains(p.weekdays, w)
}

func (p Policy) IsDisabled(d Day) bool {
	return slices.Contains(p.disabledDates, d)
}

func (p Policy) OffersTimeSlot(slot string) bool {
	return slices.Contains(p.timeSlots, slot)
}

// DailyCapacity is the number of bookings an open day can take in total.
func (p Policy) DailyCapacity() int {
	return len(p.timeSlots) * SlotCapacity
}

func (p Policy) Equal(other Policy) bool {
	return slices.Equal(p.weekdays, other.weekdays) &&
		slices.Equal(p.disabledDates, other.disabledDates) &&
		slices.Equal(p.timeSlots, other.timeSlots)
}

func compareDays(a, b Day) int {
	switch {
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	default:
		return 0
	}
}
