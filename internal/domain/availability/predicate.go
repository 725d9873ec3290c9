package availability

// IsDayBookable applies the day rules in order: program start (inclusive),
// disabled dates, then weekday eligibility. Capacity is checked elsewhere.
func IsDayBookable(day Day, policy Policy, programStart Day) bool {
	if day.Before(programStart) {
		return false
	}
	if policy.IsDisabled(day) {
		return false
	}
	return policy.AllowsWeekday(day.Weekday())
}
