package session

import "time"

// StartInput carries the bearer credential obtained from the auth service.
type StartInput struct {
	Token string
}

type StartOutput struct {
	SessionID string
	ExpiresAt time.Time
}
