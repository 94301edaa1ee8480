package usecase

import (
	"context"
	"fmt"
	"time"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/model"
	"kwikr-directory/pkg/datemath"
)

func (uc *implUseCase) Month(ctx context.Context, sc model.Scope, input calendar.MonthInput) (calendar.MonthOutput, error) {
	sess := uc.session(sc)

	year, month, err := uc.resolveMonth(sess, input)
	if err != nil {
		return calendar.MonthOutput{}, err
	}

	grid := calendar.BuildMonthGrid(year, int(month)-1, uc.cfg.Location, uc.cfg.WeekStart)
	grid = calendar.MarkToday(grid, uc.now())

	gen := sess.Begin()
	out := calendar.MonthOutput{Grid: grid, Events: []calendar.Event{}, Generation: gen}

	// Padding days are not fetched; only the displayed month is.
	events, issues, err := uc.fetch(ctx, sc, grid.FirstOfMonth(), grid.LastOfMonth())
	if err != nil {
		if cerr := sess.Commit(gen, grid.Year, grid.Month, nil); cerr != nil {
			return calendar.MonthOutput{}, cerr
		}
		return out, err
	}

	out.Grid = calendar.BindEvents(grid, events)
	out.Events = events
	out.Issues = issues

	if err := sess.Commit(gen, grid.Year, grid.Month, events); err != nil {
		uc.l.Infof(ctx, "calendar.usecase.Month: dropping %d-%02d, generation %d superseded", grid.Year, grid.Month, gen)
		return calendar.MonthOutput{}, err
	}
	return out, nil
}

// resolveMonth applies navigation to the requested or displayed month.
func (uc *implUseCase) resolveMonth(sess *calendar.Session, input calendar.MonthInput) (int, time.Month, error) {
	today := datemath.DateOf(uc.now(), uc.cfg.Location)

	base := datemath.Date{Year: today.Year, Month: today.Month, Day: 1}
	switch {
	case input.Year != 0:
		base = datemath.NewDate(input.Year, time.Month(input.Month), 1)
	default:
		if y, m, ok := sess.Displayed(); ok {
			base = datemath.Date{Year: y, Month: m, Day: 1}
		}
	}

	var target datemath.Date
	switch input.Nav {
	case calendar.NavNone:
		target = base
	case calendar.NavGoto:
		if input.Year == 0 {
			return 0, 0, fmt.Errorf("%w: goto needs a year and month", calendar.ErrInvalidMonth)
		}
		target = base
	case calendar.NavPrev:
		target = datemath.NewDate(base.Year, base.Month-1, 1)
	case calendar.NavNext:
		target = datemath.NewDate(base.Year, base.Month+1, 1)
	case calendar.NavToday:
		target = datemath.Date{Year: today.Year, Month: today.Month, Day: 1}
	default:
		return 0, 0, fmt.Errorf("%w: %q", calendar.ErrInvalidNav, input.Nav)
	}

	if target.Year < 1 || target.Year > 9999 {
		return 0, 0, fmt.Errorf("%w: year %d", calendar.ErrInvalidMonth, target.Year)
	}
	return target.Year, target.Month, nil
}
