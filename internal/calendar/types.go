package calendar

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"kwikr-directory/pkg/datemath"
)

// EventKind discriminates the three event collections served by the data service.
type EventKind string

const (
	KindAppointment EventKind = "appointment"
	KindTimeBlock   EventKind = "time_block"
	KindPersonal    EventKind = "personal"
)

const (
	GridSize    = 42
	DaysPerWeek = 7

	DefaultUpcomingLimit = 5
	DefaultHorizonDays   = 7

	UntitledEvent = "Untitled"
)

// Event is a normalized calendar entry. Fields that only apply to one kind
// are left empty for the others.
type Event struct {
	ID          string
	Kind        EventKind
	Title       string
	Start       time.Time
	End         time.Time
	Description string

	// Appointment
	AppointmentType string
	Status          string
	ClientName      string
	JobID           string
	JobTitle        string
	LocationType    string
	LocationAddress string

	// Time block
	BlockKind string
	Billable  bool

	// Personal
	EventType string
	Location  string
	AllDay    bool
	ColorCode string
}

// Date returns the calendar date the event starts on in loc.
func (e Event) Date(loc *time.Location) datemath.Date {
	return datemath.DateOf(e.Start, loc)
}

// Day is one cell of a month grid.
type Day struct {
	Date         datemath.Date
	OutsideMonth bool
	IsToday      bool
	Events       []Event
}

// MonthGrid is the 6x7 layout of a displayed month, padded with the
// trailing days of the previous month and the leading days of the next.
type MonthGrid struct {
	Year      int
	Month     time.Month
	Location  *time.Location
	WeekStart time.Weekday
	Days      [GridSize]Day
}

// First returns the date of the top-left cell.
func (g MonthGrid) First() datemath.Date { return g.Days[0].Date }

// Last returns the date of the bottom-right cell.
func (g MonthGrid) Last() datemath.Date { return g.Days[GridSize-1].Date }

// FirstOfMonth returns the 1st of the displayed month.
func (g MonthGrid) FirstOfMonth() datemath.Date {
	return datemath.Date{Year: g.Year, Month: g.Month, Day: 1}
}

// LastOfMonth returns the final day of the displayed month.
func (g MonthGrid) LastOfMonth() datemath.Date {
	return datemath.Date{Year: g.Year, Month: g.Month, Day: datemath.DaysIn(g.Year, g.Month)}
}

// Index returns the cell position of d, or -1 when d is outside the grid.
func (g MonthGrid) Index(d datemath.Date) int {
	first := g.First().In(time.UTC)
	offset := int(d.In(time.UTC).Sub(first).Hours() / 24)
	if offset < 0 || offset >= GridSize || g.Days[offset].Date != d {
		return -1
	}
	return offset
}

// Weeks splits the grid into its six rows.
func (g MonthGrid) Weeks() [][]Day {
	weeks := make([][]Day, 0, GridSize/DaysPerWeek)
	for i := 0; i < GridSize; i += DaysPerWeek {
		weeks = append(weeks, g.Days[i:i+DaysPerWeek])
	}
	return weeks
}

// IssueKind names a data-quality problem found while normalizing.
type IssueKind string

const (
	IssueMissingCollection IssueKind = "missing_collection"
	IssueMissingTitle      IssueKind = "missing_title"
	IssueInvalidStart      IssueKind = "invalid_start"
	IssueInvalidEnd        IssueKind = "invalid_end"
	IssueEndBeforeStart    IssueKind = "end_before_start"
	IssueMalformedRecord   IssueKind = "malformed_record"
)

// DataIssue records one defensive default applied to upstream data.
type DataIssue struct {
	Kind    IssueKind `json:"kind"`
	Event   EventKind `json:"event_kind"`
	EventID string    `json:"event_id,omitempty"`
	Index   int       `json:"index"`
	Detail  string    `json:"detail,omitempty"`
}

func (i DataIssue) String() string {
	var b strings.Builder
	b.WriteString(string(i.Kind))
	b.WriteString(" in ")
	b.WriteString(string(i.Event))
	if i.EventID != "" {
		b.WriteString(" ")
		b.WriteString(i.EventID)
	}
	if i.Detail != "" {
		b.WriteString(": ")
		b.WriteString(i.Detail)
	}
	return b.String()
}

// RawEvents is the events envelope returned by the data service. A nil
// collection means the field was absent, null or not an array.
type RawEvents struct {
	Appointments RawCollection `json:"appointments"`
	TimeBlocks   RawCollection `json:"time_blocks"`
	Personal     RawCollection `json:"personal"`
}

// RawCollection keeps each record undecoded so one bad record can be
// reported on its own by Normalize.
type RawCollection []json.RawMessage

func (c *RawCollection) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		*c = nil
		return nil
	}
	items := []json.RawMessage{}
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*c = items
	return nil
}

// NewRawCollection encodes records into a collection as the data service
// would send them.
func NewRawCollection(events ...RawEvent) RawCollection {
	c := make(RawCollection, 0, len(events))
	for _, ev := range events {
		b, err := json.Marshal(ev)
		if err != nil {
			continue
		}
		c = append(c, b)
	}
	return c
}

// RawEvent is the union of the fields the data service returns for any
// of the three collections.
type RawEvent struct {
	ID            RawID  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	StartDatetime string `json:"start_datetime"`
	EndDatetime   string `json:"end_datetime"`

	AppointmentType string `json:"appointment_type"`
	Status          string `json:"status"`
	LocationType    string `json:"location_type"`
	LocationAddress string `json:"location_address"`
	JobID           RawID  `json:"job_id"`
	JobTitle        string `json:"job_title"`
	ClientFirstName string `json:"client_first_name"`
	ClientLastName  string `json:"client_last_name"`

	BlockName  string  `json:"block_name"`
	BlockType  string  `json:"block_type"`
	IsBillable RawFlag `json:"is_billable"`

	EventType string  `json:"event_type"`
	AllDay    RawFlag `json:"all_day"`
	ColorCode string  `json:"color_code"`
	Location  string  `json:"location"`
}

// RawID accepts numeric and string identifiers.
type RawID string

func (id *RawID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RawID(s)
		return nil
	}
	*id = RawID(data)
	return nil
}

// RawFlag accepts true/false as well as the 0/1 integers SQLite returns.
type RawFlag bool

func (f *RawFlag) UnmarshalJSON(data []byte) error {
	switch strings.Trim(string(bytes.TrimSpace(data)), `"`) {
	case "true", "1":
		*f = true
	default:
		*f = false
	}
	return nil
}

// Nav moves the displayed month.
type Nav string

const (
	NavNone  Nav = ""
	NavPrev  Nav = "prev"
	NavNext  Nav = "next"
	NavToday Nav = "today"
	NavGoto  Nav = "goto"
)

// MonthInput selects the month to display. Month is 1-12; values outside
// that range roll over into adjacent years. A zero Year means "no explicit
// month" and the session's displayed month (or the current month) is used.
type MonthInput struct {
	Year  int
	Month int
	Nav   Nav
}

// MonthOutput is a fully bound month view.
type MonthOutput struct {
	Grid       MonthGrid
	Events     []Event
	Issues     []DataIssue
	Generation uint64
}

type DayInput struct {
	// Date is YYYY-MM-DD or a relative phrase such as "tomorrow".
	Date string
}

// DayOutput is the schedule of a single date.
type DayOutput struct {
	Date    datemath.Date
	Label   string
	IsToday bool
	Events  []Event
	Issues  []DataIssue
}

// UpcomingItem is an appointment with its relative day label.
type UpcomingItem struct {
	Event Event
	Label string
}

type UpcomingOutput struct {
	From   datemath.Date
	To     datemath.Date
	Items  []UpcomingItem
	Issues []DataIssue
}

type ExportInput struct {
	Year  int
	Month int
}

type ExportOutput struct {
	Filename string
	Data     []byte
	Count    int
}

// AppointmentInput is a new appointment with a client.
type AppointmentInput struct {
	ClientID        string
	JobID           string
	Title           string
	Description     string
	AppointmentType string
	Start           time.Time
	End             time.Time
	LocationType    string
	LocationAddress string
	MeetingLink     string
}

// AppointmentUpdate changes the non-nil fields of an appointment.
type AppointmentUpdate struct {
	ID              string
	Title           *string
	Description     *string
	AppointmentType *string
	Start           *time.Time
	End             *time.Time
	LocationType    *string
	LocationAddress *string
	MeetingLink     *string
	Status          *string
}

// TimeBlockInput reserves time on a job. A nil Billable means billable.
type TimeBlockInput struct {
	JobID          string
	BlockName      string
	Description    string
	BlockType      string
	Start          time.Time
	End            time.Time
	Billable       *bool
	EstimatedHours float64
	HourlyRate     float64
}

// SaveOutput identifies the record a write created or changed.
type SaveOutput struct {
	ID string
}
