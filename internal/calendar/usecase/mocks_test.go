package usecase

import (
	"context"
	"time"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/calendar/repository"
	"kwikr-directory/internal/model"
	"kwikr-directory/pkg/credential"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock event repository for testing
type mockEventRepo struct {
	fetchFn func(ctx context.Context, sc model.Scope, opt repository.FetchEventsOptions) (calendar.RawEvents, error)
	calls   []repository.FetchEventsOptions

	writeID      string
	writeErr     error
	appointments []repository.CreateAppointmentOptions
	updates      []repository.UpdateAppointmentOptions
	cancelled    []string
	timeBlocks   []repository.CreateTimeBlockOptions
}

func (m *mockEventRepo) FetchEvents(ctx context.Context, sc model.Scope, opt repository.FetchEventsOptions) (calendar.RawEvents, error) {
	m.calls = append(m.calls, opt)
	if m.fetchFn != nil {
		return m.fetchFn(ctx, sc, opt)
	}
	return calendar.RawEvents{Appointments: calendar.RawCollection{}, TimeBlocks: calendar.RawCollection{}, Personal: calendar.RawCollection{}}, nil
}

func (m *mockEventRepo) CreateAppointment(ctx context.Context, sc model.Scope, opt repository.CreateAppointmentOptions) (string, error) {
	m.appointments = append(m.appointments, opt)
	return m.writeID, m.writeErr
}

func (m *mockEventRepo) UpdateAppointment(ctx context.Context, sc model.Scope, opt repository.UpdateAppointmentOptions) error {
	m.updates = append(m.updates, opt)
	return m.writeErr
}

func (m *mockEventRepo) CancelAppointment(ctx context.Context, sc model.Scope, id string) error {
	m.cancelled = append(m.cancelled, id)
	return m.writeErr
}

func (m *mockEventRepo) CreateTimeBlock(ctx context.Context, sc model.Scope, opt repository.CreateTimeBlockOptions) (string, error) {
	m.timeBlocks = append(m.timeBlocks, opt)
	return m.writeID, m.writeErr
}

// Mock personal repository for testing
type mockPersonalRepo struct {
	events []calendar.Event
	err    error
}

func (m *mockPersonalRepo) ListPersonal(ctx context.Context, opt repository.FetchEventsOptions) ([]calendar.Event, error) {
	return m.events, m.err
}

func staticEvents(raw calendar.RawEvents) func(context.Context, model.Scope, repository.FetchEventsOptions) (calendar.RawEvents, error) {
	return func(context.Context, model.Scope, repository.FetchEventsOptions) (calendar.RawEvents, error) {
		return raw, nil
	}
}

func appointment(id, title, start, end string) calendar.RawEvent {
	return calendar.RawEvent{ID: calendar.RawID(id), Title: title, StartDatetime: start, EndDatetime: end}
}

// newTestUseCase builds a use case pinned to now in UTC.
func newTestUseCase(repo repository.EventRepository, personal repository.PersonalRepository, creds credential.Store, now time.Time) *implUseCase {
	uc := New(&mockLogger{}, repo, personal, creds, Config{
		Location:     time.UTC,
		WeekStart:    time.Sunday,
		FetchTimeout: time.Second,
	})
	uc.now = func() time.Time { return now }
	return uc
}
