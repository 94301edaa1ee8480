package calendar

import (
	"time"

	"kwikr-directory/pkg/datemath"
)

// BuildMonthGrid lays out the 42 cells for month0 (0 = January) of year.
// Out-of-range months roll over into adjacent years, so (2024, -1) is
// December 2023 and (2024, 12) is January 2025. The grid starts on the
// last weekStart on or before the 1st.
func BuildMonthGrid(year, month0 int, loc *time.Location, weekStart time.Weekday) MonthGrid {
	if loc == nil {
		loc = time.UTC
	}

	first := datemath.NewDate(year, time.Month(month0+1), 1)
	leading := (int(first.Weekday()) - int(weekStart) + DaysPerWeek) % DaysPerWeek
	start := first.AddDays(-leading)

	grid := MonthGrid{
		Year:      first.Year,
		Month:     first.Month,
		Location:  loc,
		WeekStart: weekStart,
	}
	for i := range grid.Days {
		d := start.AddDays(i)
		grid.Days[i] = Day{
			Date:         d,
			OutsideMonth: d.Year != first.Year || d.Month != first.Month,
		}
	}
	return grid
}

// MarkToday flags the cell matching now's date in the grid location.
func MarkToday(grid MonthGrid, now time.Time) MonthGrid {
	today := datemath.DateOf(now, grid.Location)
	for i := range grid.Days {
		grid.Days[i].IsToday = grid.Days[i].Date == today
	}
	return grid
}
