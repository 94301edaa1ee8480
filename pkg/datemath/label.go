package datemath

import "time"

const (
	LabelToday    = "Today"
	LabelTomorrow = "Tomorrow"

	DefaultDateLayout = "Jan 2, 2006"
)

// RelativeDayLabel names the day t falls on relative to now: "Today",
// "Tomorrow", or t's date formatted with layout. Both instants are compared
// as calendar dates in loc.
func RelativeDayLabel(t, now time.Time, loc *time.Location, layout string) string {
	if loc == nil {
		loc = time.UTC
	}
	if layout == "" {
		layout = DefaultDateLayout
	}

	day := DateOf(t, loc)
	today := DateOf(now, loc)
	switch day {
	case today:
		return LabelToday
	case today.AddDays(1):
		return LabelTomorrow
	}
	return t.In(loc).Format(layout)
}
