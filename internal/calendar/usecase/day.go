package usecase

import (
	"context"
	"fmt"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/model"
	"kwikr-directory/pkg/datemath"
)

func (uc *implUseCase) Day(ctx context.Context, sc model.Scope, input calendar.DayInput) (calendar.DayOutput, error) {
	date, err := uc.dateMath.Parse(input.Date, uc.now())
	if err != nil {
		return calendar.DayOutput{}, fmt.Errorf("%w: %v", calendar.ErrInvalidDate, err)
	}
	return uc.day(ctx, sc, date)
}

func (uc *implUseCase) Today(ctx context.Context, sc model.Scope) (calendar.DayOutput, error) {
	now := uc.now()
	today := datemath.DateOf(now, uc.cfg.Location)

	out := uc.dayHeader(today)
	events, issues, err := uc.fetch(ctx, sc, today, today)
	if err != nil {
		return out, err
	}
	out.Events = calendar.TodaySchedule(events, now, uc.cfg.Location)
	out.Issues = issues
	return out, nil
}

func (uc *implUseCase) day(ctx context.Context, sc model.Scope, date datemath.Date) (calendar.DayOutput, error) {
	out := uc.dayHeader(date)
	events, issues, err := uc.fetch(ctx, sc, date, date)
	if err != nil {
		return out, err
	}
	out.Events = calendar.EventsOn(events, date, uc.cfg.Location)
	out.Issues = issues
	return out, nil
}

func (uc *implUseCase) dayHeader(date datemath.Date) calendar.DayOutput {
	now := uc.now()
	loc := uc.cfg.Location
	return calendar.DayOutput{
		Date:    date,
		Label:   datemath.RelativeDayLabel(date.In(loc), now, loc, uc.cfg.DateLayout),
		IsToday: date == datemath.DateOf(now, loc),
		Events:  []calendar.Event{},
	}
}
