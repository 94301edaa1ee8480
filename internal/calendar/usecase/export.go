package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/emersion/go-ical"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/model"
	"kwikr-directory/pkg/datemath"
)

func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, input calendar.ExportInput) (calendar.ExportOutput, error) {
	year, month, err := uc.resolveMonth(uc.session(sc), calendar.MonthInput{Year: input.Year, Month: input.Month})
	if err != nil {
		return calendar.ExportOutput{}, err
	}

	first := datemath.Date{Year: year, Month: month, Day: 1}
	last := datemath.Date{Year: year, Month: month, Day: datemath.DaysIn(year, month)}

	events, _, err := uc.fetch(ctx, sc, first, last)
	if err != nil {
		return calendar.ExportOutput{}, err
	}
	if len(events) == 0 {
		return calendar.ExportOutput{}, calendar.ErrNothingToExport
	}
	calendar.SortByStart(events)

	data, err := uc.encodeICS(events)
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.Export: encode: %v", err)
		return calendar.ExportOutput{}, fmt.Errorf("encode calendar: %w", err)
	}

	return calendar.ExportOutput{
		Filename: fmt.Sprintf("kwikr-calendar-%04d-%02d.ics", year, int(month)),
		Data:     data,
		Count:    len(events),
	}, nil
}

func (uc *implUseCase) encodeICS(events []calendar.Event) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, uc.cfg.ProductID)

	stamp := uc.now().UTC()
	for _, ev := range events {
		vevent := ical.NewEvent()
		vevent.Props.SetText(ical.PropUID, eventUID(ev))
		vevent.Props.SetText(ical.PropSummary, ev.Title)
		vevent.Props.SetDateTime(ical.PropDateTimeStamp, stamp)

		if desc := eventDescription(ev); desc != "" {
			vevent.Props.SetText(ical.PropDescription, desc)
		}
		if loc := firstNonEmpty(ev.LocationAddress, ev.Location); loc != "" {
			vevent.Props.SetText(ical.PropLocation, loc)
		}
		vevent.Props.SetText(ical.PropCategories, string(ev.Kind))

		if ev.AllDay {
			vevent.Props.SetDate(ical.PropDateTimeStart, ev.Start.In(uc.cfg.Location))
			vevent.Props.SetDate(ical.PropDateTimeEnd, ev.Start.In(uc.cfg.Location).AddDate(0, 0, 1))
		} else {
			vevent.Props.SetDateTime(ical.PropDateTimeStart, ev.Start.UTC())
			vevent.Props.SetDateTime(ical.PropDateTimeEnd, ev.End.UTC())
		}

		cal.Children = append(cal.Children, vevent.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func eventUID(ev calendar.Event) string {
	id := ev.ID
	if id == "" {
		id = fmt.Sprintf("%d", ev.Start.Unix())
	}
	return fmt.Sprintf("%s-%s@kwikr-directory", ev.Kind, id)
}

func eventDescription(ev calendar.Event) string {
	var parts []string
	if ev.Description != "" {
		parts = append(parts, ev.Description)
	}
	if ev.ClientName != "" {
		parts = append(parts, "Client: "+ev.ClientName)
	}
	if ev.JobTitle != "" {
		parts = append(parts, "Job: "+ev.JobTitle)
	}
	return strings.Join(parts, "\n")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
