package availability

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// Keys of the stored key/value settings rows.
const (
	FieldWeekdays      = "availableWeekdays"
	FieldDisabledDates = "disabledDates"
	FieldTimeSlots     = "availableTimeSlots"
)

// FieldKeys is the canonical row order of the settings container.
var FieldKeys = []string{FieldWeekdays, FieldDisabledDates, FieldTimeSlots}

// Fields is the raw stored form of a policy: comma joined strings keyed by
// field name. A key that is not in the map has no row in storage.
type Fields map[string]string

// PartialPolicy is what could be recovered from stored fields. A nil slice
// means the field was absent, empty, or held nothing usable.
type PartialPolicy struct {
	Weekdays      []time.Weekday
	DisabledDates []Day
	TimeSlots     []string
}

// EncodeFields renders every field of p, including empty ones.
func EncodeFields(p Policy) Fields {
	weekdays := make([]string, 0, len(p.weekdays))
	for _, w := range p.weekdays {
		weekdays = append(weekdays, strconv.Itoa(int(w)))
	}
	dates := make([]string, 0, len(p.disabledDates))
	for _, d := range p.disabledDates {
		dates = append(dates, d.String())
	}
	return Fields{
		FieldWeekdays:      strings.Join(weekdays, ","),
		FieldDisabledDates: strings.Join(dates, ","),
		FieldTimeSlots:     strings.Join(p.timeSlots, ","),
	}
}

// Decode parses each field independently. Tokens that are out of range,
// unparsable or repeated are dropped and returned in rejected.
func (f Fields) Decode() (partial PartialPolicy, rejected []string) {
	for _, tok := range splitTokens(f[FieldWeekdays]) {
		n, err := strconv.Atoi(tok)
		w := time.Weekday(n)
		if err != nil || w < time.Sunday || w > time.Saturday || slices.Contains(partial.Weekdays, w) {
			rejected = append(rejected, FieldWeekdays+"="+tok)
			continue
		}
		partial.Weekdays = append(partial.Weekdays, w)
	}

	for _, tok := range splitTokens(f[FieldDisabledDates]) {
		d, err := ParseDay(tok)
		if err != nil || slices.Contains(partial.DisabledDates, d) {
			rejected = append(rejected, FieldDisabledDates+"="+tok)
			continue
		}
		partial.DisabledDates = append(partial.DisabledDates, d)
	}

	for _, tok := range splitTokens(f[FieldTimeSlots]) {
		if !IsMasterTimeSlot(tok) || slices.Contains(partial.TimeSlots, tok) {
			rejected = append(rejected, FieldTimeSlots+"="+tok)
			continue
		}
		partial.TimeSlots = append(partial.TimeSlots, tok)
	}

	return partial, rejected
}

// MissingKeys lists the field keys that have no stored row, in canonical order.
func (f Fields) MissingKeys() []string {
	var missing []string
	for _, k := range FieldKeys {
		if _, ok := f[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

// Subset keeps only the given keys.
func (f Fields) Subset(keys []string) Fields {
	out := make(Fields, len(keys))
	for _, k := range keys {
		if v, ok := f[k]; ok {
			out[k] = v
		}
	}
	return out
}

// MergeWithDefaults fills every empty field of partial from DefaultPolicy.
func MergeWithDefaults(partial PartialPolicy) Policy {
	def := DefaultPolicy()
	p := Policy{
		weekdays:      def.weekdays,
		disabledDates: def.disabledDates,
		timeSlots:     def.timeSlots,
	}
	if len(partial.Weekdays) > 0 {
		p.weekdays = slices.Clone(partial.Weekdays)
		slices.Sort(p.weekdays)
	}
	if len(partial.DisabledDates) > 0 {
		p.disabledDates = slices.Clone(partial.DisabledDates)
		slices.SortFunc(p.disabledDates, compareDays)
	}
	if len(partial.TimeSlots) > 0 {
		p.timeSlots = slices.Clone(partial.TimeSlots)
	}
	return p
}

func splitTokens(raw string) []string {
	var out []string
	for _, tok := range strings.Split(raw, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
