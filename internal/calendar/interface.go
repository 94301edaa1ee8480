package calendar

import (
	"context"

	"kwikr-directory/internal/model"
)

// UseCase defines the business logic interface for the worker calendar.
type UseCase interface {
	// Month builds and binds the grid for a month, applying navigation to the session's displayed month.
	Month(ctx context.Context, sc model.Scope, input MonthInput) (MonthOutput, error)

	// Day returns the schedule for a single date.
	Day(ctx context.Context, sc model.Scope, input DayInput) (DayOutput, error)

	// Today returns today's schedule.
	Today(ctx context.Context, sc model.Scope) (DayOutput, error)

	// Upcoming returns the next appointments within the upcoming horizon.
	Upcoming(ctx context.Context, sc model.Scope) (UpcomingOutput, error)

	// Export renders a month of events as an iCalendar document.
	Export(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)

	// CreateAppointment books an appointment with a client.
	CreateAppointment(ctx context.Context, sc model.Scope, input AppointmentInput) (SaveOutput, error)

	// UpdateAppointment changes an existing appointment.
	UpdateAppointment(ctx context.Context, sc model.Scope, input AppointmentUpdate) (SaveOutput, error)

	// CancelAppointment marks an appointment as cancelled.
	CancelAppointment(ctx context.Context, sc model.Scope, id string) (SaveOutput, error)

	// CreateTimeBlock reserves time on an assigned job.
	CreateTimeBlock(ctx context.Context, sc model.Scope, input TimeBlockInput) (SaveOutput, error)
}
