package model

// Scope identifies the caller of a use case: the portal session it came
// through and the bearer credential forwarded to the data service.
type Scope struct {
	SessionID string
	Token     string
}

// Authenticated reports whether a bearer credential is attached.
func (sc Scope) Authenticated() bool {
	return sc.Token != ""
}
