package usecase

import (
	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/model"
)

// session returns the view state of the caller's portal session. Callers
// without a session id get a throwaway session.
func (uc *implUseCase) session(sc model.Scope) *calendar.Session {
	if sc.SessionID == "" {
		return calendar.NewSession()
	}

	uc.sessionsMu.Lock()
	defer uc.sessionsMu.Unlock()

	if s, ok := uc.sessions.Get(sc.SessionID); ok {
		return s
	}
	s := calendar.NewSession()
	uc.sessions.Add(sc.SessionID, s)
	return s
}

func (uc *implUseCase) dropSession(sc model.Scope) {
	if sc.SessionID == "" {
		return
	}
	uc.sessionsMu.Lock()
	uc.sessions.Remove(sc.SessionID)
	uc.sessionsMu.Unlock()
}
