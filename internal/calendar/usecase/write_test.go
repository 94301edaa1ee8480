package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/model"
	"kwikr-directory/pkg/credential"
)

func validAppointment() calendar.AppointmentInput {
	return calendar.AppointmentInput{
		ClientID: "42",
		Title:    "Fix sink",
		Start:    time.Date(2024, 8, 20, 14, 30, 0, 0, time.UTC),
		End:      time.Date(2024, 8, 20, 15, 30, 0, 0, time.UTC),
	}
}

func TestCreateAppointment(t *testing.T) {
	repo := &mockEventRepo{writeID: "99"}
	uc := newTestUseCase(repo, nil, nil, testNow)

	out, err := uc.CreateAppointment(context.Background(), model.Scope{Token: "tok"}, validAppointment())
	if err != nil {
		t.Fatalf("CreateAppointment() error = %v", err)
	}
	if out.ID != "99" {
		t.Errorf("ID = %q, want 99", out.ID)
	}
	if len(repo.appointments) != 1 {
		t.Fatalf("repo calls = %d, want 1", len(repo.appointments))
	}
	if got := repo.appointments[0]; got.Location != time.UTC || got.Appointment.Title != "Fix sink" {
		t.Errorf("forwarded options = %+v", got)
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *calendar.AppointmentInput)
	}{
		{name: "no client", mutate: func(in *calendar.AppointmentInput) { in.ClientID = " " }},
		{name: "no title", mutate: func(in *calendar.AppointmentInput) { in.Title = "" }},
		{name: "no end", mutate: func(in *calendar.AppointmentInput) { in.End = time.Time{} }},
		{name: "end before start", mutate: func(in *calendar.AppointmentInput) { in.End = in.Start.Add(-time.Hour) }},
		{name: "zero length", mutate: func(in *calendar.AppointmentInput) { in.End = in.Start }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockEventRepo{}
			uc := newTestUseCase(repo, nil, nil, testNow)

			in := validAppointment()
			tt.mutate(&in)
			_, err := uc.CreateAppointment(context.Background(), model.Scope{Token: "tok"}, in)
			if !errors.Is(err, calendar.ErrInvalidAppointment) {
				t.Fatalf("error = %v, want ErrInvalidAppointment", err)
			}
			if len(repo.appointments) != 0 {
				t.Errorf("invalid appointment was forwarded")
			}
		})
	}
}

func TestWriteErrors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "rejected", repoErr: calendar.ErrEventRejected, wantErr: calendar.ErrEventRejected},
		{name: "not found", repoErr: calendar.ErrEventNotFound, wantErr: calendar.ErrEventNotFound},
		{name: "save failure", repoErr: calendar.ErrSaveFailure, wantErr: calendar.ErrSaveFailure},
		{name: "unclassified", repoErr: errors.New("boom"), wantErr: calendar.ErrSaveFailure},
		{name: "expired", repoErr: calendar.ErrAuthExpired, wantErr: calendar.ErrAuthExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&mockEventRepo{writeErr: tt.repoErr}, nil, nil, testNow)
			_, err := uc.CancelAppointment(context.Background(), model.Scope{Token: "tok"}, "7")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWriteAuthExpiredClearsCredential(t *testing.T) {
	ctx := context.Background()
	creds := credential.NewMemoryStore(10, time.Hour)
	creds.Save(ctx, "s1", "tok")

	uc := newTestUseCase(&mockEventRepo{writeErr: calendar.ErrAuthExpired}, nil, creds, testNow)

	_, err := uc.CreateAppointment(ctx, model.Scope{SessionID: "s1", Token: "tok"}, validAppointment())
	if !errors.Is(err, calendar.ErrAuthExpired) {
		t.Fatalf("error = %v, want ErrAuthExpired", err)
	}
	if _, err := creds.Load(ctx, "s1"); !errors.Is(err, credential.ErrNotFound) {
		t.Errorf("credential still stored after auth expiry: %v", err)
	}
}

func TestUpdateAppointment(t *testing.T) {
	start := time.Date(2024, 8, 21, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	before := start.Add(-time.Hour)
	blank := " "
	done := "completed"

	tests := []struct {
		name    string
		input   calendar.AppointmentUpdate
		wantErr bool
	}{
		{name: "reschedule", input: calendar.AppointmentUpdate{ID: "7", Start: &start, End: &end}},
		{name: "status only", input: calendar.AppointmentUpdate{ID: "7", Status: &done}},
		{name: "missing id", input: calendar.AppointmentUpdate{Status: &done}, wantErr: true},
		{name: "backwards", input: calendar.AppointmentUpdate{ID: "7", Start: &start, End: &before}, wantErr: true},
		{name: "blank title", input: calendar.AppointmentUpdate{ID: "7", Title: &blank}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockEventRepo{}
			uc := newTestUseCase(repo, nil, nil, testNow)

			out, err := uc.UpdateAppointment(context.Background(), model.Scope{Token: "tok"}, tt.input)
			if tt.wantErr {
				if !errors.Is(err, calendar.ErrInvalidAppointment) {
					t.Fatalf("error = %v, want ErrInvalidAppointment", err)
				}
				if len(repo.updates) != 0 {
					t.Errorf("invalid update was forwarded")
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateAppointment() error = %v", err)
			}
			if out.ID != "7" || len(repo.updates) != 1 {
				t.Errorf("out = %+v, repo calls = %d", out, len(repo.updates))
			}
		})
	}
}

func TestCreateTimeBlock(t *testing.T) {
	start := time.Date(2024, 8, 22, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   calendar.TimeBlockInput
		wantErr bool
	}{
		{name: "valid", input: calendar.TimeBlockInput{JobID: "5", BlockName: "Demolition", Start: start, End: start.Add(4 * time.Hour)}},
		{name: "no job", input: calendar.TimeBlockInput{BlockName: "Demolition", Start: start, End: start.Add(time.Hour)}, wantErr: true},
		{name: "no name", input: calendar.TimeBlockInput{JobID: "5", Start: start, End: start.Add(time.Hour)}, wantErr: true},
		{name: "backwards", input: calendar.TimeBlockInput{JobID: "5", BlockName: "x", Start: start, End: start.Add(-time.Hour)}, wantErr: true},
		{name: "negative rate", input: calendar.TimeBlockInput{JobID: "5", BlockName: "x", Start: start, End: start.Add(time.Hour), HourlyRate: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockEventRepo{writeID: "b1"}
			uc := newTestUseCase(repo, nil, nil, testNow)

			out, err := uc.CreateTimeBlock(context.Background(), model.Scope{Token: "tok"}, tt.input)
			if tt.wantErr {
				if !errors.Is(err, calendar.ErrInvalidTimeBlock) {
					t.Fatalf("error = %v, want ErrInvalidTimeBlock", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateTimeBlock() error = %v", err)
			}
			if out.ID != "b1" || len(repo.timeBlocks) != 1 {
				t.Errorf("out = %+v, repo calls = %d", out, len(repo.timeBlocks))
			}
		})
	}
}
