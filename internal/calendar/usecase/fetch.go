package usecase

import (
	"context"
	"errors"
	"fmt"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/calendar/repository"
	"kwikr-directory/internal/model"
	"kwikr-directory/pkg/datemath"
)

// fetch loads and normalizes the events of [start, end] under the fetch
// timeout. Google personal events are appended when configured; their
// failures never fail the fetch.
func (uc *implUseCase) fetch(ctx context.Context, sc model.Scope, start, end datemath.Date) ([]calendar.Event, []calendar.DataIssue, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.FetchTimeout)
	defer cancel()

	opt := repository.FetchEventsOptions{StartDate: start, EndDate: end, Location: uc.cfg.Location}

	raw, err := uc.repo.FetchEvents(ctx, sc, opt)
	if err != nil {
		if errors.Is(err, calendar.ErrAuthExpired) {
			uc.expireCredential(ctx, sc)
			return nil, nil, err
		}
		if !errors.Is(err, calendar.ErrFetchFailure) {
			err = fmt.Errorf("%w: %v", calendar.ErrFetchFailure, err)
		}
		uc.l.Errorf(ctx, "calendar.usecase.fetch: %s..%s: %v", start, end, err)
		return nil, nil, err
	}

	events, issues := calendar.Normalize(raw, uc.cfg.Location)
	if len(issues) > 0 {
		uc.l.Warnf(ctx, "calendar.usecase.fetch: %d data issues in %s..%s: %v", len(issues), start, end, issues)
	}

	if uc.personal != nil {
		extra, err := uc.personal.ListPersonal(ctx, opt)
		if err != nil {
			uc.l.Warnf(ctx, "calendar.usecase.fetch: personal calendar skipped: %v", err)
		} else {
			events = append(events, extra...)
		}
	}

	return events, issues, nil
}

// expireCredential forgets a credential the data service rejected.
func (uc *implUseCase) expireCredential(ctx context.Context, sc model.Scope) {
	uc.l.Warnf(ctx, "calendar.usecase.expireCredential: credential for session %q expired", sc.SessionID)
	uc.dropSession(sc)
	if sc.SessionID == "" || uc.creds == nil {
		return
	}
	if err := uc.creds.Clear(ctx, sc.SessionID); err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.expireCredential: clear credential: %v", err)
	}
}
