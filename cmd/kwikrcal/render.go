package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"kwikr-directory/internal/calendar"
)

const (
	cellWidth  = 6
	timeLayout = "15:04"
)

// printMonth draws the six-week grid. Each cell shows the day number,
// "*" for today, and the event count in parentheses.
func printMonth(w io.Writer, out calendar.MonthOutput, loc *time.Location) {
	g := out.Grid
	fmt.Fprintf(w, "%s %d\n", g.Month, g.Year)

	for i := 0; i < calendar.DaysPerWeek; i++ {
		name := time.Weekday((int(g.WeekStart) + i) % calendar.DaysPerWeek).String()[:3]
		fmt.Fprintf(w, "%-*s", cellWidth, name)
	}
	fmt.Fprintln(w)

	for _, week := range g.Weeks() {
		for _, d := range week {
			fmt.Fprintf(w, "%-*s", cellWidth, cellLabel(d))
		}
		fmt.Fprintln(w)
	}

	if len(out.Events) == 0 {
		fmt.Fprintln(w, "\nNo events this month")
		return
	}

	fmt.Fprintln(w)
	for _, d := range g.Days {
		if d.OutsideMonth || len(d.Events) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\n", d.Date)
		for _, ev := range d.Events {
			fmt.Fprintf(w, "  %s\n", eventLine(ev, loc))
		}
	}
}

func cellLabel(d calendar.Day) string {
	if d.OutsideMonth {
		return "."
	}
	label := fmt.Sprintf("%d", d.Date.Day)
	if d.IsToday {
		label += "*"
	}
	if n := len(d.Events); n > 0 {
		label += fmt.Sprintf("(%d)", n)
	}
	return label
}

func printDay(w io.Writer, out calendar.DayOutput, loc *time.Location) {
	fmt.Fprintf(w, "%s (%s)\n", out.Label, out.Date)
	if len(out.Events) == 0 {
		if out.IsToday {
			fmt.Fprintln(w, "No events scheduled for today")
		} else {
			fmt.Fprintln(w, "No events scheduled for this day")
		}
		return
	}
	for _, ev := range out.Events {
		fmt.Fprintf(w, "  %s\n", eventLine(ev, loc))
		for _, detail := range eventDetails(ev) {
			fmt.Fprintf(w, "      %s\n", detail)
		}
	}
}

func printUpcoming(w io.Writer, out calendar.UpcomingOutput, loc *time.Location) {
	if len(out.Items) == 0 {
		fmt.Fprintln(w, "No upcoming appointments")
		return
	}
	for _, it := range out.Items {
		fmt.Fprintf(w, "%-12s %s\n", it.Label, eventLine(it.Event, loc))
	}
}

func eventLine(ev calendar.Event, loc *time.Location) string {
	if ev.AllDay {
		return fmt.Sprintf("all day       %s [%s]", ev.Title, ev.Kind)
	}
	return fmt.Sprintf("%s - %s %s [%s]", ev.Start.In(loc).Format(timeLayout), ev.End.In(loc).Format(timeLayout), ev.Title, ev.Kind)
}

func eventDetails(ev calendar.Event) []string {
	var details []string
	if ev.JobTitle != "" {
		details = append(details, "Job: "+ev.JobTitle)
	}
	if ev.ClientName != "" {
		details = append(details, "Client: "+ev.ClientName)
	}
	if loc := strings.TrimSpace(ev.LocationAddress + ev.Location); loc != "" {
		details = append(details, "Where: "+loc)
	}
	return details
}
