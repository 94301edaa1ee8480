package gcal

import (
	"context"
	"fmt"
	"time"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/calendar/repository"
	"kwikr-directory/pkg/gcalendar"
	pkgLog "kwikr-directory/pkg/log"
)

// Lister is the subset of gcalendar.Client used here.
type Lister interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

type implRepository struct {
	client     Lister
	calendarID string
	l          pkgLog.Logger
}

// New creates a personal-event repository backed by a Google calendar.
func New(client Lister, calendarID string, l pkgLog.Logger) repository.PersonalRepository {
	if calendarID == "" {
		calendarID = gcalendar.PrimaryCalendarID
	}
	return &implRepository{client: client, calendarID: calendarID, l: l}
}

func (r *implRepository) ListPersonal(ctx context.Context, opt repository.FetchEventsOptions) ([]calendar.Event, error) {
	loc := opt.Location
	if loc == nil {
		loc = time.UTC
	}

	items, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.calendarID,
		TimeMin:    opt.StartDate.In(loc),
		TimeMax:    opt.EndDate.AddDays(1).In(loc),
		Location:   loc,
	})
	if err != nil {
		r.l.Errorf(ctx, "gcal repository: list %s failed: %v", r.calendarID, err)
		return nil, fmt.Errorf("list google events: %w", err)
	}

	events := make([]calendar.Event, 0, len(items))
	for _, it := range items {
		title := it.Summary
		if title == "" {
			title = calendar.UntitledEvent
		}
		end := it.EndTime
		if end.Before(it.StartTime) {
			end = it.StartTime
		}
		events = append(events, calendar.Event{
			ID:          "gcal:" + it.ID,
			Kind:        calendar.KindPersonal,
			Title:       title,
			Start:       it.StartTime,
			End:         end,
			Description: it.Description,
			EventType:   "google",
			Location:    it.Location,
			AllDay:      it.AllDay,
			ColorCode:   it.ColorID,
		})
	}
	return events, nil
}
