package repository

import (
	"time"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/pkg/datemath"
)

// FetchEventsOptions bounds a fetch to whole days. EndDate is inclusive.
type FetchEventsOptions struct {
	StartDate datemath.Date
	EndDate   datemath.Date
	Location  *time.Location // Interprets the dates; defaults to UTC
}

// CreateAppointmentOptions carries a new appointment. Times are sent as
// wall-clock values in Location.
type CreateAppointmentOptions struct {
	Appointment calendar.AppointmentInput
	Location    *time.Location
}

type UpdateAppointmentOptions struct {
	Update   calendar.AppointmentUpdate
	Location *time.Location
}

type CreateTimeBlockOptions struct {
	TimeBlock calendar.TimeBlockInput
	Location  *time.Location
}
