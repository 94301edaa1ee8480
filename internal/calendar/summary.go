package calendar

import (
	"slices"
	"time"

	"kwikr-directory/pkg/datemath"
)

// EventsOn returns the events starting on date in loc, sorted by Start.
func EventsOn(events []Event, date datemath.Date, loc *time.Location) []Event {
	out := make([]Event, 0)
	for _, ev := range events {
		if ev.Date(loc) == date {
			out = append(out, ev)
		}
	}
	SortByStart(out)
	return out
}

// TodaySchedule returns the events on now's date in loc, sorted by Start.
// An empty result is a normal state.
func TodaySchedule(events []Event, now time.Time, loc *time.Location) []Event {
	return EventsOn(events, datemath.DateOf(now, loc), loc)
}

// Upcoming returns at most limit appointments starting strictly after now,
// sorted by Start. A non-positive limit means DefaultUpcomingLimit.
func Upcoming(events []Event, now time.Time, limit int) []Event {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	out := make([]Event, 0, limit)
	for _, ev := range events {
		if ev.Kind == KindAppointment && ev.Start.After(now) {
			out = append(out, ev)
		}
	}
	SortByStart(out)
	if len(out) > limit {
		out = slices.Clip(out[:limit])
	}
	return out
}
