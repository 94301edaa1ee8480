package eventsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kwikr-directory/internal/calendar"
)

const DefaultTimeout = 10 * time.Second

// Auth error strings the data service returns with a 401 for a session
// that must be re-established.
var authExpiredMessages = map[string]bool{
	"Session expired":            true,
	"Invalid or expired session": true,
	"No session token provided":  true,
	"Authentication required":    true,
}

// Client is the HTTP wrapper for the calendar endpoints of the data service.
type Client struct {
	baseURL    string
	namespace  string
	httpClient *http.Client
}

// NewClient creates a new data service client. A non-positive timeout
// means DefaultTimeout.
func NewClient(baseURL, namespace string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		namespace:  strings.Trim(namespace, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListEvents calls GET {base}/{namespace}/calendar/events for the
// inclusive range [startDate, endDate] (YYYY-MM-DD).
func (c *Client) ListEvents(ctx context.Context, token, startDate, endDate string) (*EventsResponse, error) {
	q := url.Values{}
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)

	var events EventsResponse
	if err := c.send(ctx, http.MethodGet, "/calendar/events?"+q.Encode(), token, nil, &events); err != nil {
		return nil, err
	}
	return &events, nil
}

// CreateAppointment calls POST {base}/{namespace}/calendar/appointments.
func (c *Client) CreateAppointment(ctx context.Context, token string, req AppointmentRequest) (*WriteResponse, error) {
	var out WriteResponse
	if err := c.send(ctx, http.MethodPost, "/calendar/appointments", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAppointment calls PUT {base}/{namespace}/calendar/appointments/{id}.
func (c *Client) UpdateAppointment(ctx context.Context, token, id string, patch AppointmentPatch) (*WriteResponse, error) {
	var out WriteResponse
	if err := c.send(ctx, http.MethodPut, "/calendar/appointments/"+url.PathEscape(id), token, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelAppointment calls DELETE {base}/{namespace}/calendar/appointments/{id}.
// The data service keeps the record with status cancelled.
func (c *Client) CancelAppointment(ctx context.Context, token, id string) (*WriteResponse, error) {
	var out WriteResponse
	if err := c.send(ctx, http.MethodDelete, "/calendar/appointments/"+url.PathEscape(id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTimeBlock calls POST {base}/{namespace}/calendar/time-blocks.
func (c *Client) CreateTimeBlock(ctx context.Context, token string, req TimeBlockRequest) (*WriteResponse, error) {
	var out WriteResponse
	if err := c.send(ctx, http.MethodPost, "/calendar/time-blocks", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) send(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := fmt.Sprintf("%s/%s%s", c.baseURL, c.namespace, path)
	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func newAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: string(raw)}
	var body errorBody
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Message = body.Error
		apiErr.Expired = status == http.StatusUnauthorized &&
			(body.Expired || authExpiredMessages[body.Error])
	}
	return apiErr
}

// ---- Request/Response types scoped to this package ----

// EventsResponse is the body of a calendar events call.
type EventsResponse struct {
	Success bool               `json:"success"`
	Error   string             `json:"error,omitempty"`
	Events  calendar.RawEvents `json:"events"`
}

// AppointmentRequest is the body of an appointment create call. Times are
// wall-clock "YYYY-MM-DD HH:MM:SS" values.
type AppointmentRequest struct {
	ClientID        string  `json:"client_id"`
	JobID           *string `json:"job_id"`
	Title           string  `json:"title"`
	Description     string  `json:"description,omitempty"`
	AppointmentType string  `json:"appointment_type,omitempty"`
	StartDatetime   string  `json:"start_datetime"`
	EndDatetime     string  `json:"end_datetime"`
	LocationType    string  `json:"location_type,omitempty"`
	LocationAddress string  `json:"location_address,omitempty"`
	MeetingLink     string  `json:"meeting_link,omitempty"`
}

// AppointmentPatch is the body of an appointment update call. Omitted
// fields keep their stored value.
type AppointmentPatch struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	AppointmentType *string `json:"appointment_type,omitempty"`
	StartDatetime   *string `json:"start_datetime,omitempty"`
	EndDatetime     *string `json:"end_datetime,omitempty"`
	LocationType    *string `json:"location_type,omitempty"`
	LocationAddress *string `json:"location_address,omitempty"`
	MeetingLink     *string `json:"meeting_link,omitempty"`
	Status          *string `json:"status,omitempty"`
}

// TimeBlockRequest is the body of a time block create call.
type TimeBlockRequest struct {
	JobID          string  `json:"job_id"`
	BlockName      string  `json:"block_name"`
	Description    string  `json:"description,omitempty"`
	StartDatetime  string  `json:"start_datetime"`
	EndDatetime    string  `json:"end_datetime"`
	BlockType      string  `json:"block_type,omitempty"`
	IsBillable     bool    `json:"is_billable"`
	EstimatedHours float64 `json:"estimated_hours,omitempty"`
	HourlyRate     float64 `json:"hourly_rate,omitempty"`
}

// WriteResponse is the body of any create, update or cancel call.
type WriteResponse struct {
	Success       bool           `json:"success"`
	Error         string         `json:"error,omitempty"`
	Message       string         `json:"message,omitempty"`
	AppointmentID calendar.RawID `json:"appointment_id"`
	TimeBlockID   calendar.RawID `json:"time_block_id"`
}

type errorBody struct {
	Error   string `json:"error"`
	Expired bool   `json:"expired"`
}

// APIError is a non-200 response from the data service.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
	Expired    bool
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("data service error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("data service error %d: %s", e.StatusCode, e.Body)
}
