package http

import (
	"time"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/pkg/datemath"
	"kwikr-directory/pkg/log"
)

// ViewConfig controls how instants are shown to the worker.
type ViewConfig struct {
	Location   *time.Location
	DateLayout string
	TimeLayout string
	SignInURL  string
}

type handler struct {
	l    log.Logger
	uc   calendar.UseCase
	view ViewConfig
}

// New creates a new HTTP handler for the calendar domain.
func New(l log.Logger, uc calendar.UseCase, view ViewConfig) *handler {
	if view.Location == nil {
		view.Location = time.UTC
	}
	if view.DateLayout == "" {
		view.DateLayout = datemath.DefaultDateLayout
	}
	if view.TimeLayout == "" {
		view.TimeLayout = "15:04"
	}
	if view.SignInURL == "" {
		view.SignInURL = "/login"
	}
	return &handler{
		l:    l,
		uc:   uc,
		view: view,
	}
}
