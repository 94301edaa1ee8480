package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/calendar/repository"
	"kwikr-directory/internal/model"
)

func (uc *implUseCase) CreateAppointment(ctx context.Context, sc model.Scope, input calendar.AppointmentInput) (calendar.SaveOutput, error) {
	input.ClientID = strings.TrimSpace(input.ClientID)
	input.Title = strings.TrimSpace(input.Title)

	switch {
	case input.ClientID == "":
		return calendar.SaveOutput{}, fmt.Errorf("%w: client is required", calendar.ErrInvalidAppointment)
	case input.Title == "":
		return calendar.SaveOutput{}, fmt.Errorf("%w: title is required", calendar.ErrInvalidAppointment)
	case input.Start.IsZero() || input.End.IsZero():
		return calendar.SaveOutput{}, fmt.Errorf("%w: start and end are required", calendar.ErrInvalidAppointment)
	case !input.Start.Before(input.End):
		return calendar.SaveOutput{}, fmt.Errorf("%w: start must be before end", calendar.ErrInvalidAppointment)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.FetchTimeout)
	defer cancel()

	id, err := uc.repo.CreateAppointment(ctx, sc, repository.CreateAppointmentOptions{
		Appointment: input,
		Location:    uc.cfg.Location,
	})
	if err != nil {
		return calendar.SaveOutput{}, uc.writeFailed(ctx, sc, "CreateAppointment", err)
	}

	uc.l.Infof(ctx, "calendar.usecase.CreateAppointment: created appointment %s", id)
	return calendar.SaveOutput{ID: id}, nil
}

func (uc *implUseCase) UpdateAppointment(ctx context.Context, sc model.Scope, input calendar.AppointmentUpdate) (calendar.SaveOutput, error) {
	input.ID = strings.TrimSpace(input.ID)
	if input.ID == "" {
		return calendar.SaveOutput{}, fmt.Errorf("%w: id is required", calendar.ErrInvalidAppointment)
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return calendar.SaveOutput{}, fmt.Errorf("%w: title cannot be blank", calendar.ErrInvalidAppointment)
	}
	if input.Start != nil && input.End != nil && !input.Start.Before(*input.End) {
		return calendar.SaveOutput{}, fmt.Errorf("%w: start must be before end", calendar.ErrInvalidAppointment)
	}
	if input.Status != nil && strings.TrimSpace(*input.Status) == "" {
		return calendar.SaveOutput{}, fmt.Errorf("%w: status cannot be blank", calendar.ErrInvalidAppointment)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.FetchTimeout)
	defer cancel()

	err := uc.repo.UpdateAppointment(ctx, sc, repository.UpdateAppointmentOptions{
		Update:   input,
		Location: uc.cfg.Location,
	})
	if err != nil {
		return calendar.SaveOutput{}, uc.writeFailed(ctx, sc, "UpdateAppointment", err)
	}
	return calendar.SaveOutput{ID: input.ID}, nil
}

func (uc *implUseCase) CancelAppointment(ctx context.Context, sc model.Scope, id string) (calendar.SaveOutput, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return calendar.SaveOutput{}, fmt.Errorf("%w: id is required", calendar.ErrInvalidAppointment)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.FetchTimeout)
	defer cancel()

	if err := uc.repo.CancelAppointment(ctx, sc, id); err != nil {
		return calendar.SaveOutput{}, uc.writeFailed(ctx, sc, "CancelAppointment", err)
	}
	return calendar.SaveOutput{ID: id}, nil
}

func (uc *implUseCase) CreateTimeBlock(ctx context.Context, sc model.Scope, input calendar.TimeBlockInput) (calendar.SaveOutput, error) {
	input.JobID = strings.TrimSpace(input.JobID)
	input.BlockName = strings.TrimSpace(input.BlockName)

	switch {
	case input.JobID == "":
		return calendar.SaveOutput{}, fmt.Errorf("%w: job is required", calendar.ErrInvalidTimeBlock)
	case input.BlockName == "":
		return calendar.SaveOutput{}, fmt.Errorf("%w: block name is required", calendar.ErrInvalidTimeBlock)
	case input.Start.IsZero() || input.End.IsZero():
		return calendar.SaveOutput{}, fmt.Errorf("%w: start and end are required", calendar.ErrInvalidTimeBlock)
	case !input.Start.Before(input.End):
		return calendar.SaveOutput{}, fmt.Errorf("%w: start must be before end", calendar.ErrInvalidTimeBlock)
	case input.EstimatedHours < 0 || input.HourlyRate < 0:
		return calendar.SaveOutput{}, fmt.Errorf("%w: hours and rate cannot be negative", calendar.ErrInvalidTimeBlock)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.FetchTimeout)
	defer cancel()

	id, err := uc.repo.CreateTimeBlock(ctx, sc, repository.CreateTimeBlockOptions{
		TimeBlock: input,
		Location:  uc.cfg.Location,
	})
	if err != nil {
		return calendar.SaveOutput{}, uc.writeFailed(ctx, sc, "CreateTimeBlock", err)
	}
	return calendar.SaveOutput{ID: id}, nil
}

// writeFailed applies the same expiry handling as reads and makes sure
// every failure carries a calendar error.
func (uc *implUseCase) writeFailed(ctx context.Context, sc model.Scope, op string, err error) error {
	switch {
	case errors.Is(err, calendar.ErrAuthExpired):
		uc.expireCredential(ctx, sc)
		return err
	case errors.Is(err, calendar.ErrEventRejected), errors.Is(err, calendar.ErrEventNotFound):
		uc.l.Warnf(ctx, "calendar.usecase.%s: %v", op, err)
		return err
	case errors.Is(err, calendar.ErrSaveFailure):
	default:
		err = fmt.Errorf("%w: %v", calendar.ErrSaveFailure, err)
	}
	uc.l.Errorf(ctx, "calendar.usecase.%s: %v", op, err)
	return err
}
