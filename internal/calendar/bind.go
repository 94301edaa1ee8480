package calendar

import (
	"slices"
	"time"
)

// BindEvents returns a copy of grid whose cells hold every event starting
// on that cell's date in the grid location. Events outside the 42-day
// window are dropped. Within a cell events are ordered by Start, with ties
// kept in input order. Existing cell events are replaced, so binding the
// same events twice gives the same result.
func BindEvents(grid MonthGrid, events []Event) MonthGrid {
	loc := grid.Location
	if loc == nil {
		loc = time.UTC
	}

	for i := range grid.Days {
		grid.Days[i].Events = nil
	}
	for _, ev := range events {
		idx := grid.Index(ev.Date(loc))
		if idx < 0 {
			continue
		}
		grid.Days[idx].Events = append(grid.Days[idx].Events, ev)
	}
	for i := range grid.Days {
		SortByStart(grid.Days[i].Events)
	}
	return grid
}

// SortByStart stable-sorts events ascending by Start.
func SortByStart(events []Event) {
	slices.SortStableFunc(events, func(a, b Event) int {
		return a.Start.Compare(b.Start)
	})
}
