package repository

import (
	"context"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/model"
)

// EventRepository reads a worker's events from the upstream data service.
type EventRepository interface {
	// FetchEvents returns the raw collections for the inclusive date range.
	// Failures are reported as calendar.ErrFetchFailure or calendar.ErrAuthExpired.
	FetchEvents(ctx context.Context, sc model.Scope, opt FetchEventsOptions) (calendar.RawEvents, error)

	// The writes below return the upstream record id. A rejected change is
	// calendar.ErrEventRejected, a missing record calendar.ErrEventNotFound
	// and any other failure calendar.ErrSaveFailure or calendar.ErrAuthExpired.
	CreateAppointment(ctx context.Context, sc model.Scope, opt CreateAppointmentOptions) (string, error)
	UpdateAppointment(ctx context.Context, sc model.Scope, opt UpdateAppointmentOptions) error
	CancelAppointment(ctx context.Context, sc model.Scope, id string) error
	CreateTimeBlock(ctx context.Context, sc model.Scope, opt CreateTimeBlockOptions) (string, error)
}

// PersonalRepository supplies extra personal events from an external calendar.
type PersonalRepository interface {
	ListPersonal(ctx context.Context, opt FetchEventsOptions) ([]calendar.Event, error)
}
