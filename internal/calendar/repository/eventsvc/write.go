package eventsvc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/calendar/repository"
	"kwikr-directory/internal/model"
)

// wireLayout matches the SQLite DATETIME text the data service stores.
const wireLayout = "2006-01-02 15:04:05"

func (r *implRepository) CreateAppointment(ctx context.Context, sc model.Scope, opt repository.CreateAppointmentOptions) (string, error) {
	a := opt.Appointment
	req := AppointmentRequest{
		ClientID:        a.ClientID,
		Title:           a.Title,
		Description:     a.Description,
		AppointmentType: a.AppointmentType,
		StartDatetime:   wireTime(a.Start, opt.Location),
		EndDatetime:     wireTime(a.End, opt.Location),
		LocationType:    a.LocationType,
		LocationAddress: a.LocationAddress,
		MeetingLink:     a.MeetingLink,
	}
	if a.JobID != "" {
		req.JobID = &a.JobID
	}

	resp, err := r.client.CreateAppointment(ctx, sc.Token, req)
	if err := r.writeResult(ctx, sc, "create appointment", resp, err); err != nil {
		return "", err
	}
	return string(resp.AppointmentID), nil
}

func (r *implRepository) UpdateAppointment(ctx context.Context, sc model.Scope, opt repository.UpdateAppointmentOptions) error {
	u := opt.Update
	patch := AppointmentPatch{
		Title:           u.Title,
		Description:     u.Description,
		AppointmentType: u.AppointmentType,
		LocationType:    u.LocationType,
		LocationAddress: u.LocationAddress,
		MeetingLink:     u.MeetingLink,
		Status:          u.Status,
	}
	if u.Start != nil {
		s := wireTime(*u.Start, opt.Location)
		patch.StartDatetime = &s
	}
	if u.End != nil {
		e := wireTime(*u.End, opt.Location)
		patch.EndDatetime = &e
	}

	resp, err := r.client.UpdateAppointment(ctx, sc.Token, u.ID, patch)
	return r.writeResult(ctx, sc, "update appointment "+u.ID, resp, err)
}

func (r *implRepository) CancelAppointment(ctx context.Context, sc model.Scope, id string) error {
	resp, err := r.client.CancelAppointment(ctx, sc.Token, id)
	return r.writeResult(ctx, sc, "cancel appointment "+id, resp, err)
}

func (r *implRepository) CreateTimeBlock(ctx context.Context, sc model.Scope, opt repository.CreateTimeBlockOptions) (string, error) {
	b := opt.TimeBlock
	req := TimeBlockRequest{
		JobID:          b.JobID,
		BlockName:      b.BlockName,
		Description:    b.Description,
		StartDatetime:  wireTime(b.Start, opt.Location),
		EndDatetime:    wireTime(b.End, opt.Location),
		BlockType:      b.BlockType,
		IsBillable:     b.Billable == nil || *b.Billable,
		EstimatedHours: b.EstimatedHours,
		HourlyRate:     b.HourlyRate,
	}

	resp, err := r.client.CreateTimeBlock(ctx, sc.Token, req)
	if err := r.writeResult(ctx, sc, "create time block", resp, err); err != nil {
		return "", err
	}
	return string(resp.TimeBlockID), nil
}

// writeResult classifies a write and, on success, drops the credential's
// cached ranges so the next view shows the change.
func (r *implRepository) writeResult(ctx context.Context, sc model.Scope, op string, resp *WriteResponse, err error) error {
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			switch {
			case apiErr.Expired:
				r.l.Warnf(ctx, "eventsvc repository: %s: session rejected: %v", op, err)
				return fmt.Errorf("%w: %s", calendar.ErrAuthExpired, apiErr.Message)
			case apiErr.StatusCode == http.StatusBadRequest:
				r.l.Warnf(ctx, "eventsvc repository: %s rejected: %v", op, err)
				return fmt.Errorf("%w: %s", calendar.ErrEventRejected, failureMessage(apiErr.Message))
			case apiErr.StatusCode == http.StatusNotFound:
				return fmt.Errorf("%w: %s", calendar.ErrEventNotFound, failureMessage(apiErr.Message))
			}
		}
		r.l.Errorf(ctx, "eventsvc repository: %s failed: %v", op, err)
		return fmt.Errorf("%w: %v", calendar.ErrSaveFailure, err)
	}

	if !resp.Success {
		r.l.Warnf(ctx, "eventsvc repository: %s: data service reported failure: %q", op, resp.Error)
		return fmt.Errorf("%w: %s", calendar.ErrSaveFailure, failureMessage(resp.Error))
	}

	r.invalidate(sc.Token)
	return nil
}

func wireTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(wireLayout)
}
