package session

import "errors"

// Domain-specific errors for the session package.
var (
	ErrEmptyToken = errors.New("token is empty")
	ErrNoSession  = errors.New("no session token provided")
)
