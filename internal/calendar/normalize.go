package calendar

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"kwikr-directory/pkg/datemath"
)

// Normalize flattens the three raw collections into one sequence in fetch
// order: appointments, then time blocks, then personal events. Records that
// cannot be placed on a calendar are skipped; every default applied is
// reported as a DataIssue.
func Normalize(raw RawEvents, loc *time.Location) ([]Event, []DataIssue) {
	if loc == nil {
		loc = time.UTC
	}

	n := &normalizer{loc: loc}
	n.collection(KindAppointment, raw.Appointments)
	n.collection(KindTimeBlock, raw.TimeBlocks)
	n.collection(KindPersonal, raw.Personal)
	return n.events, n.issues
}

type normalizer struct {
	loc    *time.Location
	events []Event
	issues []DataIssue
}

func (n *normalizer) collection(kind EventKind, items RawCollection) {
	if items == nil {
		n.issues = append(n.issues, DataIssue{Kind: IssueMissingCollection, Event: kind, Index: -1})
		return
	}
	for i, item := range items {
		raw, ok := n.decode(kind, i, item)
		if !ok {
			continue
		}
		if ev, ok := n.event(kind, i, raw); ok {
			n.events = append(n.events, ev)
		}
	}
}

// decode keeps a record whose object shape is intact even when some of its
// fields carry the wrong type; those fields are left empty.
func (n *normalizer) decode(kind EventKind, index int, item json.RawMessage) (RawEvent, bool) {
	trimmed := bytes.TrimSpace(item)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		n.issues = append(n.issues, DataIssue{Kind: IssueMalformedRecord, Event: kind, Index: index, Detail: "not an object"})
		return RawEvent{}, false
	}

	var raw RawEvent
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			n.issues = append(n.issues, DataIssue{Kind: IssueMalformedRecord, Event: kind, Index: index, Detail: err.Error()})
			return RawEvent{}, false
		}
		n.issues = append(n.issues, DataIssue{
			Kind:    IssueMalformedRecord,
			Event:   kind,
			EventID: string(raw.ID),
			Index:   index,
			Detail:  fmt.Sprintf("field %q: expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value),
		})
	}
	return raw, true
}

func (n *normalizer) event(kind EventKind, index int, raw RawEvent) (Event, bool) {
	id := string(raw.ID)
	issue := func(k IssueKind, detail string) {
		n.issues = append(n.issues, DataIssue{Kind: k, Event: kind, EventID: id, Index: index, Detail: detail})
	}

	start, err := datemath.ParseTimestamp(raw.StartDatetime, n.loc)
	if err != nil {
		issue(IssueInvalidStart, fmt.Sprintf("%q", raw.StartDatetime))
		return Event{}, false
	}

	end, err := datemath.ParseTimestamp(raw.EndDatetime, n.loc)
	switch {
	case err != nil:
		issue(IssueInvalidEnd, fmt.Sprintf("%q", raw.EndDatetime))
		end = start
	case end.Before(start):
		issue(IssueEndBeforeStart, fmt.Sprintf("%s < %s", raw.EndDatetime, raw.StartDatetime))
		end = start
	}

	title := strings.TrimSpace(raw.Title)
	if title == "" && kind == KindTimeBlock {
		title = strings.TrimSpace(raw.BlockName)
	}
	if title == "" {
		issue(IssueMissingTitle, "")
		title = UntitledEvent
	}

	ev := Event{
		ID:          id,
		Kind:        kind,
		Title:       title,
		Start:       start,
		End:         end,
		Description: raw.Description,
		JobID:       string(raw.JobID),
		JobTitle:    raw.JobTitle,
	}

	switch kind {
	case KindAppointment:
		ev.AppointmentType = raw.AppointmentType
		ev.Status = raw.Status
		ev.ClientName = strings.TrimSpace(raw.ClientFirstName + " " + raw.ClientLastName)
		ev.LocationType = raw.LocationType
		ev.LocationAddress = raw.LocationAddress
	case KindTimeBlock:
		ev.BlockKind = raw.BlockType
		ev.Billable = bool(raw.IsBillable)
	case KindPersonal:
		ev.Location = raw.Location
		ev.AllDay = bool(raw.AllDay)
		ev.ColorCode = raw.ColorCode
		ev.EventType = raw.EventType
	}
	return ev, true
}
