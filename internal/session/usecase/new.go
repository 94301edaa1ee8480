package usecase

import (
	"time"

	"kwikr-directory/pkg/credential"
	pkgLog "kwikr-directory/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	store credential.Store
	ttl   time.Duration
	now   func() time.Time
	newID func() string
}

// New creates a new session UseCase instance.
func New(l pkgLog.Logger, store credential.Store, ttl time.Duration) *implUseCase {
	if ttl <= 0 {
		ttl = credential.DefaultTTL
	}
	return &implUseCase{
		l:     l,
		store: store,
		ttl:   ttl,
		now:   time.Now,
		newID: newSessionID,
	}
}
