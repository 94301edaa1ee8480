package http

import (
	"fmt"
	"strings"
	"time"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/pkg/datemath"
)

// --- Request DTOs ---

type monthReq struct {
	Year  int    `form:"year"`
	Month int    `form:"month"`
	Nav   string `form:"nav"`
}

func (r monthReq) validate() error {
	if r.Year != 0 && (r.Year < 1 || r.Year > 9999) {
		return calendar.ErrInvalidMonth
	}
	if (r.Year == 0) != (r.Month == 0) {
		return fmt.Errorf("%w: year and month go together", calendar.ErrInvalidMonth)
	}
	switch calendar.Nav(r.Nav) {
	case calendar.NavNone, calendar.NavPrev, calendar.NavNext, calendar.NavToday, calendar.NavGoto:
		return nil
	default:
		return calendar.ErrInvalidNav
	}
}

func (r monthReq) toInput() calendar.MonthInput {
	return calendar.MonthInput{Year: r.Year, Month: r.Month, Nav: calendar.Nav(r.Nav)}
}

type dayReq struct {
	Date string `form:"date"`
}

func (r dayReq) toInput() calendar.DayInput {
	return calendar.DayInput{Date: r.Date}
}

type exportReq struct {
	Year  int `form:"year"`
	Month int `form:"month"`
}

func (r exportReq) validate() error {
	if (r.Year == 0) != (r.Month == 0) {
		return fmt.Errorf("%w: year and month go together", calendar.ErrInvalidMonth)
	}
	return nil
}

func (r exportReq) toInput() calendar.ExportInput {
	return calendar.ExportInput{Year: r.Year, Month: r.Month}
}

type appointmentReq struct {
	ClientID        string `form:"client_id" json:"client_id"`
	JobID           string `form:"job_id" json:"job_id"`
	Title           string `form:"title" json:"title"`
	Description     string `form:"description" json:"description"`
	AppointmentType string `form:"appointment_type" json:"appointment_type"`
	StartDatetime   string `form:"start_datetime" json:"start_datetime"`
	EndDatetime     string `form:"end_datetime" json:"end_datetime"`
	LocationType    string `form:"location_type" json:"location_type"`
	LocationAddress string `form:"location_address" json:"location_address"`
	MeetingLink     string `form:"meeting_link" json:"meeting_link"`
}

func (r appointmentReq) toInput(loc *time.Location) (calendar.AppointmentInput, error) {
	start, err := parseFormTime(r.StartDatetime, loc, calendar.ErrInvalidAppointment, "start_datetime")
	if err != nil {
		return calendar.AppointmentInput{}, err
	}
	end, err := parseFormTime(r.EndDatetime, loc, calendar.ErrInvalidAppointment, "end_datetime")
	if err != nil {
		return calendar.AppointmentInput{}, err
	}
	return calendar.AppointmentInput{
		ClientID:        r.ClientID,
		JobID:           strings.TrimSpace(r.JobID),
		Title:           r.Title,
		Description:     r.Description,
		AppointmentType: r.AppointmentType,
		Start:           start,
		End:             end,
		LocationType:    r.LocationType,
		LocationAddress: r.LocationAddress,
		MeetingLink:     r.MeetingLink,
	}, nil
}

type appointmentPatchReq struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	AppointmentType *string `json:"appointment_type"`
	StartDatetime   *string `json:"start_datetime"`
	EndDatetime     *string `json:"end_datetime"`
	LocationType    *string `json:"location_type"`
	LocationAddress *string `json:"location_address"`
	MeetingLink     *string `json:"meeting_link"`
	Status          *string `json:"status"`
}

func (r appointmentPatchReq) toInput(id string, loc *time.Location) (calendar.AppointmentUpdate, error) {
	in := calendar.AppointmentUpdate{
		ID:              id,
		Title:           r.Title,
		Description:     r.Description,
		AppointmentType: r.AppointmentType,
		LocationType:    r.LocationType,
		LocationAddress: r.LocationAddress,
		MeetingLink:     r.MeetingLink,
		Status:          r.Status,
	}
	if r.StartDatetime != nil {
		t, err := parseFormTime(*r.StartDatetime, loc, calendar.ErrInvalidAppointment, "start_datetime")
		if err != nil {
			return in, err
		}
		in.Start = &t
	}
	if r.EndDatetime != nil {
		t, err := parseFormTime(*r.EndDatetime, loc, calendar.ErrInvalidAppointment, "end_datetime")
		if err != nil {
			return in, err
		}
		in.End = &t
	}
	return in, nil
}

type timeBlockReq struct {
	JobID          string  `json:"job_id"`
	BlockName      string  `json:"block_name"`
	Description    string  `json:"description"`
	BlockType      string  `json:"block_type"`
	StartDatetime  string  `json:"start_datetime"`
	EndDatetime    string  `json:"end_datetime"`
	IsBillable     *bool   `json:"is_billable"`
	EstimatedHours float64 `json:"estimated_hours"`
	HourlyRate     float64 `json:"hourly_rate"`
}

func (r timeBlockReq) toInput(loc *time.Location) (calendar.TimeBlockInput, error) {
	start, err := parseFormTime(r.StartDatetime, loc, calendar.ErrInvalidTimeBlock, "start_datetime")
	if err != nil {
		return calendar.TimeBlockInput{}, err
	}
	end, err := parseFormTime(r.EndDatetime, loc, calendar.ErrInvalidTimeBlock, "end_datetime")
	if err != nil {
		return calendar.TimeBlockInput{}, err
	}
	return calendar.TimeBlockInput{
		JobID:          r.JobID,
		BlockName:      r.BlockName,
		Description:    r.Description,
		BlockType:      r.BlockType,
		Start:          start,
		End:            end,
		Billable:       r.IsBillable,
		EstimatedHours: r.EstimatedHours,
		HourlyRate:     r.HourlyRate,
	}, nil
}

// parseFormTime reads datetime-local and ISO-8601 values; zoneless ones are
// wall-clock time in loc.
func parseFormTime(value string, loc *time.Location, kind error, field string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", kind, field)
	}
	t, err := datemath.ParseTimestamp(value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", kind, field, err)
	}
	return t, nil
}

// --- Response DTOs ---

type saveResp struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type eventResp struct {
	ID              string             `json:"id"`
	Kind            calendar.EventKind `json:"kind"`
	Type            string             `json:"type"`
	Title           string             `json:"title"`
	Start           time.Time          `json:"start"`
	End             time.Time          `json:"end"`
	StartTime       string             `json:"start_time"`
	EndTime         string             `json:"end_time"`
	Description     string             `json:"description,omitempty"`
	AppointmentType string             `json:"appointment_type,omitempty"`
	Status          string             `json:"status,omitempty"`
	ClientName      string             `json:"client_name,omitempty"`
	JobID           string             `json:"job_id,omitempty"`
	JobTitle        string             `json:"job_title,omitempty"`
	Location        string             `json:"location,omitempty"`
	BlockKind       string             `json:"block_kind,omitempty"`
	Billable        bool               `json:"billable,omitempty"`
	AllDay          bool               `json:"all_day,omitempty"`
	ColorCode       string             `json:"color_code,omitempty"`
	Icon            string             `json:"icon"`
	Style           string             `json:"style"`
}

// Tooltip is the hover text of a grid entry.
func (e eventResp) Tooltip() string {
	if e.Description == "" {
		return e.Title
	}
	return e.Title + " - " + e.Description
}

type kindStyle struct {
	cssType string
	icon    string
	style   string
}

var kindStyles = map[calendar.EventKind]kindStyle{
	calendar.KindAppointment: {cssType: "appointment", icon: "fas fa-handshake", style: "bg-blue-50 border-blue-200"},
	calendar.KindTimeBlock:   {cssType: "work", icon: "fas fa-tools", style: "bg-green-50 border-green-200"},
	calendar.KindPersonal:    {cssType: "personal", icon: "fas fa-calendar-alt", style: "bg-blue-50 border-blue-200"},
}

func (h *handler) newEventResp(ev calendar.Event) eventResp {
	st := kindStyles[ev.Kind]
	loc := h.view.Location

	resp := eventResp{
		ID:              ev.ID,
		Kind:            ev.Kind,
		Type:            st.cssType,
		Title:           ev.Title,
		Start:           ev.Start.In(loc),
		End:             ev.End.In(loc),
		StartTime:       ev.Start.In(loc).Format(h.view.TimeLayout),
		EndTime:         ev.End.In(loc).Format(h.view.TimeLayout),
		Description:     ev.Description,
		AppointmentType: ev.AppointmentType,
		Status:          ev.Status,
		ClientName:      ev.ClientName,
		JobID:           ev.JobID,
		JobTitle:        ev.JobTitle,
		Location:        firstNonEmpty(ev.LocationAddress, ev.Location),
		BlockKind:       ev.BlockKind,
		Billable:        ev.Billable,
		AllDay:          ev.AllDay,
		ColorCode:       ev.ColorCode,
		Icon:            st.icon,
		Style:           st.style,
	}
	if ev.AllDay {
		resp.StartTime, resp.EndTime = "All day", ""
	}
	return resp
}

func (h *handler) newEventResps(events []calendar.Event) []eventResp {
	out := make([]eventResp, len(events))
	for i, ev := range events {
		out[i] = h.newEventResp(ev)
	}
	return out
}

type dayCellResp struct {
	Date         string      `json:"date"`
	Day          int         `json:"day"`
	OutsideMonth bool        `json:"outside_month"`
	IsToday      bool        `json:"is_today"`
	Events       []eventResp `json:"events"`
}

type monthResp struct {
	Year       int                  `json:"year"`
	Month      int                  `json:"month"`
	Title      string               `json:"title"`
	Weekdays   []string             `json:"weekdays"`
	Days       []dayCellResp        `json:"days"`
	EventCount int                  `json:"event_count"`
	Issues     []calendar.DataIssue `json:"issues,omitempty"`
	Generation uint64               `json:"generation"`
	Notice     string               `json:"notice,omitempty"`
}

func (h *handler) newMonthResp(out calendar.MonthOutput) monthResp {
	g := out.Grid
	days := make([]dayCellResp, len(g.Days))
	for i, d := range g.Days {
		days[i] = dayCellResp{
			Date:         d.Date.String(),
			Day:          d.Date.Day,
			OutsideMonth: d.OutsideMonth,
			IsToday:      d.IsToday,
			Events:       h.newEventResps(d.Events),
		}
	}
	return monthResp{
		Year:       g.Year,
		Month:      int(g.Month),
		Title:      fmt.Sprintf("%s %d", g.Month, g.Year),
		Weekdays:   weekdayNames(g.WeekStart),
		Days:       days,
		EventCount: len(out.Events),
		Issues:     out.Issues,
		Generation: out.Generation,
	}
}

func weekdayNames(start time.Weekday) []string {
	names := make([]string, calendar.DaysPerWeek)
	for i := range names {
		names[i] = time.Weekday((int(start) + i) % calendar.DaysPerWeek).String()[:3]
	}
	return names
}

type dayResp struct {
	Date    string               `json:"date"`
	Label   string               `json:"label"`
	IsToday bool                 `json:"is_today"`
	Events  []eventResp          `json:"events"`
	Empty   string               `json:"empty_message,omitempty"`
	Issues  []calendar.DataIssue `json:"issues,omitempty"`
	Notice  string               `json:"notice,omitempty"`
}

const (
	emptyTodayMessage    = "No events scheduled for today"
	emptyDayMessage      = "No events scheduled for this day"
	emptyUpcomingMessage = "No upcoming appointments"
	fetchFailedNotice    = "Failed to load calendar events"
	saveFailedNotice     = "Failed to save calendar event"

	appointmentCreatedMessage   = "Appointment created successfully"
	appointmentUpdatedMessage   = "Appointment updated successfully"
	appointmentCancelledMessage = "Appointment cancelled successfully"
	timeBlockCreatedMessage     = "Time block created successfully"
)

func (h *handler) newDayResp(out calendar.DayOutput) dayResp {
	resp := dayResp{
		Date:    out.Date.String(),
		Label:   out.Label,
		IsToday: out.IsToday,
		Events:  h.newEventResps(out.Events),
		Issues:  out.Issues,
	}
	if len(resp.Events) == 0 {
		resp.Empty = emptyDayMessage
		if out.IsToday {
			resp.Empty = emptyTodayMessage
		}
	}
	return resp
}

type upcomingItemResp struct {
	eventResp
	Label string `json:"label"`
}

type upcomingResp struct {
	From   string               `json:"from"`
	To     string               `json:"to"`
	Items  []upcomingItemResp   `json:"items"`
	Empty  string               `json:"empty_message,omitempty"`
	Issues []calendar.DataIssue `json:"issues,omitempty"`
	Notice string               `json:"notice,omitempty"`
}

func (h *handler) newUpcomingResp(out calendar.UpcomingOutput) upcomingResp {
	items := make([]upcomingItemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = upcomingItemResp{eventResp: h.newEventResp(it.Event), Label: it.Label}
	}
	resp := upcomingResp{
		From:   out.From.String(),
		To:     out.To.String(),
		Items:  items,
		Issues: out.Issues,
	}
	if len(items) == 0 {
		resp.Empty = emptyUpcomingMessage
	}
	return resp
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
