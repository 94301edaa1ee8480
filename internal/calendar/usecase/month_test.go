package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/calendar/repository"
	"kwikr-directory/internal/model"
	"kwikr-directory/pkg/credential"
	"kwikr-directory/pkg/datemath"
)

var testNow = time.Date(2024, 8, 19, 9, 0, 0, 0, time.UTC)

func TestMonth(t *testing.T) {
	repo := &mockEventRepo{fetchFn: staticEvents(calendar.RawEvents{
		Appointments: calendar.NewRawCollection(
			appointment("1", "Fix sink", "2024-08-20T14:30:00Z", "2024-08-20T15:30:00Z"),
			appointment("2", "Inspect roof", "2024-08-20T09:00:00Z", "2024-08-20T10:00:00Z"),
		),
		TimeBlocks: calendar.RawCollection{},
		Personal:   calendar.RawCollection{},
	})}
	uc := newTestUseCase(repo, nil, nil, testNow)

	out, err := uc.Month(context.Background(), model.Scope{SessionID: "s1"}, calendar.MonthInput{Year: 2024, Month: 8})
	if err != nil {
		t.Fatalf("Month() error = %v", err)
	}

	if out.Grid.Year != 2024 || out.Grid.Month != time.August {
		t.Errorf("grid month = %d-%v", out.Grid.Year, out.Grid.Month)
	}
	if len(repo.calls) != 1 {
		t.Fatalf("fetch calls = %d", len(repo.calls))
	}
	wantStart := datemath.Date{Year: 2024, Month: time.August, Day: 1}
	wantEnd := datemath.Date{Year: 2024, Month: time.August, Day: 31}
	if repo.calls[0].StartDate != wantStart || repo.calls[0].EndDate != wantEnd {
		t.Errorf("fetch range = %v..%v, want the displayed month", repo.calls[0].StartDate, repo.calls[0].EndDate)
	}

	day := out.Grid.Days[out.Grid.Index(datemath.Date{Year: 2024, Month: time.August, Day: 20})]
	if len(day.Events) != 2 || day.Events[0].ID != "2" || day.Events[1].ID != "1" {
		t.Errorf("Aug 20 events = %+v", day.Events)
	}
	today := out.Grid.Days[out.Grid.Index(datemath.Date{Year: 2024, Month: time.August, Day: 19})]
	if !today.IsToday {
		t.Errorf("Aug 19 not marked as today")
	}
}

func TestMonthNavigation(t *testing.T) {
	uc := newTestUseCase(&mockEventRepo{}, nil, nil, testNow)
	ctx := context.Background()
	sc := model.Scope{SessionID: "nav"}

	steps := []struct {
		name      string
		input     calendar.MonthInput
		wantYear  int
		wantMonth time.Month
		wantErr   error
	}{
		{name: "initial is current month", input: calendar.MonthInput{}, wantYear: 2024, wantMonth: time.August},
		{name: "next", input: calendar.MonthInput{Nav: calendar.NavNext}, wantYear: 2024, wantMonth: time.September},
		{name: "goto December", input: calendar.MonthInput{Year: 2024, Month: 12, Nav: calendar.NavGoto}, wantYear: 2024, wantMonth: time.December},
		{name: "next across year", input: calendar.MonthInput{Nav: calendar.NavNext}, wantYear: 2025, wantMonth: time.January},
		{name: "prev back", input: calendar.MonthInput{Nav: calendar.NavPrev}, wantYear: 2024, wantMonth: time.December},
		{name: "today", input: calendar.MonthInput{Nav: calendar.NavToday}, wantYear: 2024, wantMonth: time.August},
		{name: "month 13 rolls over", input: calendar.MonthInput{Year: 2024, Month: 13}, wantYear: 2025, wantMonth: time.January},
		{name: "month 0 rolls back", input: calendar.MonthInput{Year: 2024, Month: 0}, wantYear: 2023, wantMonth: time.December},
		{name: "unknown nav", input: calendar.MonthInput{Nav: "sideways"}, wantErr: calendar.ErrInvalidNav},
		{name: "goto without month", input: calendar.MonthInput{Nav: calendar.NavGoto}, wantErr: calendar.ErrInvalidMonth},
		{name: "year out of range", input: calendar.MonthInput{Year: 10000, Month: 1}, wantErr: calendar.ErrInvalidMonth},
	}

	for _, st := range steps {
		t.Run(st.name, func(t *testing.T) {
			out, err := uc.Month(ctx, sc, st.input)
			if st.wantErr != nil {
				if !errors.Is(err, st.wantErr) {
					t.Fatalf("error = %v, want %v", err, st.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Month() error = %v", err)
			}
			if out.Grid.Year != st.wantYear || out.Grid.Month != st.wantMonth {
				t.Errorf("got %d-%v, want %d-%v", out.Grid.Year, out.Grid.Month, st.wantYear, st.wantMonth)
			}
		})
	}
}

func TestMonthFetchFailureKeepsGrid(t *testing.T) {
	repo := &mockEventRepo{fetchFn: func(context.Context, model.Scope, repository.FetchEventsOptions) (calendar.RawEvents, error) {
		return calendar.RawEvents{}, calendar.ErrFetchFailure
	}}
	uc := newTestUseCase(repo, nil, nil, testNow)

	out, err := uc.Month(context.Background(), model.Scope{SessionID: "s"}, calendar.MonthInput{Year: 2024, Month: 3})
	if !errors.Is(err, calendar.ErrFetchFailure) {
		t.Fatalf("error = %v, want ErrFetchFailure", err)
	}
	if out.Grid.Month != time.March || out.Grid.Days[5].Date.Day != 1 {
		t.Errorf("grid not populated on failure: %+v", out.Grid.Days[5])
	}
	if out.Events == nil || len(out.Events) != 0 {
		t.Errorf("events = %v, want empty", out.Events)
	}
	for _, d := range out.Grid.Days {
		if len(d.Events) != 0 {
			t.Fatalf("grid has events after failure")
		}
	}
}

func TestMonthTimeout(t *testing.T) {
	repo := &mockEventRepo{fetchFn: func(ctx context.Context, _ model.Scope, _ repository.FetchEventsOptions) (calendar.RawEvents, error) {
		<-ctx.Done()
		return calendar.RawEvents{}, ctx.Err()
	}}
	uc := newTestUseCase(repo, nil, nil, testNow)
	uc.cfg.FetchTimeout = 20 * time.Millisecond

	_, err := uc.Month(context.Background(), model.Scope{}, calendar.MonthInput{})
	if !errors.Is(err, calendar.ErrFetchFailure) {
		t.Fatalf("error = %v, want ErrFetchFailure", err)
	}
}

func TestMonthStaleResultDiscarded(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	repo := &mockEventRepo{fetchFn: func(ctx context.Context, _ model.Scope, opt repository.FetchEventsOptions) (calendar.RawEvents, error) {
		if opt.StartDate.Month == time.March {
			close(entered)
			<-release
			return calendar.RawEvents{Appointments: calendar.NewRawCollection(
				appointment("march", "Old", "2024-03-05T10:00:00Z", "2024-03-05T11:00:00Z"),
			)}, nil
		}
		return calendar.RawEvents{Appointments: calendar.NewRawCollection(
			appointment("april", "New", "2024-04-05T10:00:00Z", "2024-04-05T11:00:00Z"),
		)}, nil
	}}
	uc := newTestUseCase(repo, nil, nil, testNow)
	ctx := context.Background()
	sc := model.Scope{SessionID: "race"}

	type result struct {
		out calendar.MonthOutput
		err error
	}
	slow := make(chan result, 1)
	go func() {
		out, err := uc.Month(ctx, sc, calendar.MonthInput{Year: 2024, Month: 3})
		slow <- result{out, err}
	}()
	<-entered

	// The repo mock is not safe for concurrent use; the slow call is parked.
	fast, err := uc.Month(ctx, sc, calendar.MonthInput{Year: 2024, Month: 4})
	if err != nil {
		t.Fatalf("fast Month() error = %v", err)
	}
	close(release)

	res := <-slow
	if !errors.Is(res.err, calendar.ErrStaleResult) {
		t.Fatalf("slow Month() error = %v, want ErrStaleResult", res.err)
	}

	sess := uc.session(sc)
	y, m, _ := sess.Displayed()
	if y != 2024 || m != time.April {
		t.Errorf("displayed = %d-%v, want 2024-April", y, m)
	}
	if evs := sess.Events(); len(evs) != 1 || evs[0].ID != "april" {
		t.Errorf("session events = %+v", evs)
	}
	if fast.Generation <= 1 {
		t.Errorf("fast generation = %d", fast.Generation)
	}
}

func TestAuthExpiredClearsCredential(t *testing.T) {
	ctx := context.Background()
	creds := credential.NewMemoryStore(10, time.Hour)
	creds.Save(ctx, "s1", "tok")

	repo := &mockEventRepo{fetchFn: func(context.Context, model.Scope, repository.FetchEventsOptions) (calendar.RawEvents, error) {
		return calendar.RawEvents{}, calendar.ErrAuthExpired
	}}
	uc := newTestUseCase(repo, nil, creds, testNow)

	_, err := uc.Month(ctx, model.Scope{SessionID: "s1", Token: "tok"}, calendar.MonthInput{})
	if !errors.Is(err, calendar.ErrAuthExpired) {
		t.Fatalf("error = %v, want ErrAuthExpired", err)
	}
	if _, err := creds.Load(ctx, "s1"); !errors.Is(err, credential.ErrNotFound) {
		t.Errorf("credential still stored after auth expiry: %v", err)
	}
}

func TestAuthExpiredWithoutSessionKeepsStoredCredential(t *testing.T) {
	ctx := context.Background()
	creds := credential.NewMemoryStore(10, time.Hour)
	creds.Save(ctx, "s1", "tok")

	repo := &mockEventRepo{fetchFn: func(context.Context, model.Scope, repository.FetchEventsOptions) (calendar.RawEvents, error) {
		return calendar.RawEvents{}, calendar.ErrAuthExpired
	}}
	uc := newTestUseCase(repo, nil, creds, testNow)

	_, err := uc.Month(ctx, model.Scope{Token: "header-tok"}, calendar.MonthInput{})
	if !errors.Is(err, calendar.ErrAuthExpired) {
		t.Fatalf("error = %v, want ErrAuthExpired", err)
	}
	if tok, err := creds.Load(ctx, "s1"); err != nil || tok != "tok" {
		t.Errorf("stored credential = %q, %v; want it untouched", tok, err)
	}
}

func TestPersonalEventsMerged(t *testing.T) {
	gym := calendar.Event{ID: "gcal:1", Kind: calendar.KindPersonal, Title: "Gym",
		Start: time.Date(2024, 8, 20, 7, 0, 0, 0, time.UTC), End: time.Date(2024, 8, 20, 8, 0, 0, 0, time.UTC)}
	repo := &mockEventRepo{fetchFn: staticEvents(calendar.RawEvents{
		Appointments: calendar.NewRawCollection(appointment("1", "Fix sink", "2024-08-20T14:30:00Z", "2024-08-20T15:30:00Z")),
		TimeBlocks:   calendar.RawCollection{},
		Personal:     calendar.RawCollection{},
	})}

	t.Run("merged", func(t *testing.T) {
		uc := newTestUseCase(repo, &mockPersonalRepo{events: []calendar.Event{gym}}, nil, testNow)
		out, err := uc.Month(context.Background(), model.Scope{}, calendar.MonthInput{Year: 2024, Month: 8})
		if err != nil {
			t.Fatalf("Month() error = %v", err)
		}
		if len(out.Events) != 2 || out.Events[1].ID != "gcal:1" {
			t.Errorf("events = %+v", out.Events)
		}
	})

	t.Run("failure ignored", func(t *testing.T) {
		uc := newTestUseCase(repo, &mockPersonalRepo{err: errors.New("quota")}, nil, testNow)
		out, err := uc.Month(context.Background(), model.Scope{}, calendar.MonthInput{Year: 2024, Month: 8})
		if err != nil {
			t.Fatalf("Month() error = %v", err)
		}
		if len(out.Events) != 1 {
			t.Errorf("events = %+v", out.Events)
		}
	})
}
