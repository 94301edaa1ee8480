package calendar_test

import (
	"testing"
	"time"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/pkg/datemath"
)

func countInMonth(g calendar.MonthGrid) (leading, current, trailing int) {
	seenCurrent := false
	for _, d := range g.Days {
		switch {
		case !d.OutsideMonth:
			current++
			seenCurrent = true
		case seenCurrent:
			trailing++
		default:
			leading++
		}
	}
	return
}

func TestBuildMonthGridAlwaysFullAndContiguous(t *testing.T) {
	for year := 1999; year <= 2030; year++ {
		for month0 := -1; month0 <= 12; month0++ {
			g := calendar.BuildMonthGrid(year, month0, time.UTC, time.Sunday)

			if len(g.Days) != calendar.GridSize {
				t.Fatalf("%d/%d: %d cells", year, month0, len(g.Days))
			}
			if g.Days[0].Date.Weekday() != time.Sunday {
				t.Errorf("%d/%d: grid starts on %v", year, month0, g.Days[0].Date.Weekday())
			}
			for i := 1; i < calendar.GridSize; i++ {
				if g.Days[i].Date != g.Days[i-1].Date.AddDays(1) {
					t.Fatalf("%d/%d: gap between cell %d and %d", year, month0, i-1, i)
				}
			}

			_, current, _ := countInMonth(g)
			if want := datemath.DaysIn(g.Year, g.Month); current != want {
				t.Errorf("%d-%02d: %d in-month cells, want %d", g.Year, g.Month, current, want)
			}
		}
	}
}

func TestBuildMonthGridMarch2024(t *testing.T) {
	g := calendar.BuildMonthGrid(2024, 2, time.UTC, time.Sunday)

	leading, current, trailing := countInMonth(g)
	if leading != 5 || current != 31 || trailing != 6 {
		t.Fatalf("got leading=%d current=%d trailing=%d, want 5/31/6", leading, current, trailing)
	}
	if got := g.Days[0].Date; got != (datemath.Date{Year: 2024, Month: time.February, Day: 25}) {
		t.Errorf("first cell = %v, want 2024-02-25", got)
	}
	if got := g.Days[5].Date; got != (datemath.Date{Year: 2024, Month: time.March, Day: 1}) {
		t.Errorf("cell 5 = %v, want 2024-03-01", got)
	}
	if got := g.Last(); got != (datemath.Date{Year: 2024, Month: time.April, Day: 6}) {
		t.Errorf("last cell = %v, want 2024-04-06", got)
	}
}

func TestBuildMonthGridRollover(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month0    int
		wantYear  int
		wantMonth time.Month
	}{
		{"previous December", 2024, -1, 2023, time.December},
		{"next January", 2024, 12, 2025, time.January},
		{"January", 2024, 0, 2024, time.January},
		{"December", 2024, 11, 2024, time.December},
		{"two years back", 2024, -13, 2022, time.December},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := calendar.BuildMonthGrid(tt.year, tt.month0, time.UTC, time.Sunday)
			if g.Year != tt.wantYear || g.Month != tt.wantMonth {
				t.Errorf("got %d-%v, want %d-%v", g.Year, g.Month, tt.wantYear, tt.wantMonth)
			}
		})
	}
}

func TestBuildMonthGridMondayStart(t *testing.T) {
	// March 2024 starts on a Friday: four leading days with a Monday week.
	g := calendar.BuildMonthGrid(2024, 2, time.UTC, time.Monday)

	leading, current, trailing := countInMonth(g)
	if leading != 4 || current != 31 || trailing != 7 {
		t.Fatalf("got leading=%d current=%d trailing=%d, want 4/31/7", leading, current, trailing)
	}
	if g.Days[0].Date.Weekday() != time.Monday {
		t.Errorf("first cell weekday = %v", g.Days[0].Date.Weekday())
	}
}

func TestBuildMonthGridNoLeadingDays(t *testing.T) {
	// September 2024 starts on a Sunday.
	g := calendar.BuildMonthGrid(2024, 8, time.UTC, time.Sunday)
	if g.Days[0].OutsideMonth || g.Days[0].Date.Day != 1 {
		t.Errorf("first cell = %+v, want Sep 1 in month", g.Days[0])
	}
}

func TestMarkToday(t *testing.T) {
	g := calendar.BuildMonthGrid(2024, 7, time.UTC, time.Sunday)
	g = calendar.MarkToday(g, time.Date(2024, 8, 19, 10, 0, 0, 0, time.UTC))

	marked := 0
	for _, d := range g.Days {
		if d.IsToday {
			marked++
			if d.Date.Day != 19 {
				t.Errorf("marked %v as today", d.Date)
			}
		}
	}
	if marked != 1 {
		t.Errorf("marked %d cells as today", marked)
	}
}

func TestMonthGridIndex(t *testing.T) {
	g := calendar.BuildMonthGrid(2024, 2, time.UTC, time.Sunday)

	if idx := g.Index(datemath.Date{Year: 2024, Month: time.March, Day: 1}); idx != 5 {
		t.Errorf("Index(Mar 1) = %d, want 5", idx)
	}
	if idx := g.Index(datemath.Date{Year: 2024, Month: time.February, Day: 24}); idx != -1 {
		t.Errorf("Index before grid = %d, want -1", idx)
	}
	if idx := g.Index(datemath.Date{Year: 2024, Month: time.April, Day: 7}); idx != -1 {
		t.Errorf("Index after grid = %d, want -1", idx)
	}
	if weeks := g.Weeks(); len(weeks) != 6 || len(weeks[5]) != 7 {
		t.Errorf("Weeks() shape = %d rows", len(weeks))
	}
}
