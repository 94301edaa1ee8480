package calendar

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the calendar package.
var (
	ErrFetchFailure = errors.New("failed to fetch calendar events")
	ErrAuthExpired  = fmt.Errorf("authentication expired: %w", ErrFetchFailure)
	ErrStaleResult  = errors.New("a newer calendar view was requested")
	ErrInvalidMonth = errors.New("invalid year or month")
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidNav   = errors.New("invalid navigation")

	ErrNothingToExport = errors.New("no events to export")

	ErrInvalidAppointment = errors.New("invalid appointment")
	ErrInvalidTimeBlock   = errors.New("invalid time block")
	ErrEventRejected      = errors.New("the data service rejected the change")
	ErrEventNotFound      = errors.New("event not found")
	ErrSaveFailure        = errors.New("failed to save calendar event")
)
