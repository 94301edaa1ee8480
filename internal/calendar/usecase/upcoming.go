package usecase

import (
	"context"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/model"
	"kwikr-directory/pkg/datemath"
)

func (uc *implUseCase) Upcoming(ctx context.Context, sc model.Scope) (calendar.UpcomingOutput, error) {
	now := uc.now()
	loc := uc.cfg.Location
	from := datemath.DateOf(now, loc)
	to := from.AddDays(uc.cfg.HorizonDays)

	out := calendar.UpcomingOutput{From: from, To: to, Items: []calendar.UpcomingItem{}}

	events, issues, err := uc.fetch(ctx, sc, from, to)
	if err != nil {
		return out, err
	}

	for _, ev := range calendar.Upcoming(events, now, uc.cfg.UpcomingLimit) {
		out.Items = append(out.Items, calendar.UpcomingItem{
			Event: ev,
			Label: datemath.RelativeDayLabel(ev.Start, now, loc, uc.cfg.DateLayout),
		})
	}
	out.Issues = issues
	return out, nil
}
