package gcalendar

import "time"

const (
	// PrimaryCalendarID addresses the authenticated account's own calendar.
	PrimaryCalendarID = "primary"

	// DefaultMaxResults caps a single ListEvents page.
	DefaultMaxResults = 250
)

// Event is a simplified, read-only view of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	ColorID     string
	HtmlLink    string
	AllDay      bool
	StartTime   time.Time
	EndTime     time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
	// Location interprets all-day dates. Defaults to UTC.
	Location *time.Location
}
