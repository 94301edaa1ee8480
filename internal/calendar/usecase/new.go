package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/calendar/repository"
	"kwikr-directory/pkg/credential"
	"kwikr-directory/pkg/datemath"
	pkgLog "kwikr-directory/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.EventRepository
	personal repository.PersonalRepository
	creds    credential.Store
	dateMath *datemath.Parser
	cfg      Config
	now      func() time.Time

	sessionsMu sync.Mutex
	sessions   *expirable.LRU[string, *calendar.Session]
}

// New creates a new calendar UseCase instance. personal may be nil.
func New(
	l pkgLog.Logger,
	repo repository.EventRepository,
	personal repository.PersonalRepository,
	creds credential.Store,
	cfg Config,
) *implUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.DateLayout == "" {
		cfg.DateLayout = datemath.DefaultDateLayout
	}
	if cfg.UpcomingLimit <= 0 {
		cfg.UpcomingLimit = calendar.DefaultUpcomingLimit
	}
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = calendar.DefaultHorizonDays
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}
	if cfg.SessionSize <= 0 {
		cfg.SessionSize = defaultSessionSize
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.ProductID == "" {
		cfg.ProductID = defaultProductID
	}

	return &implUseCase{
		l:        l,
		repo:     repo,
		personal: personal,
		creds:    creds,
		dateMath: datemath.NewParserIn(cfg.Location),
		cfg:      cfg,
		now:      time.Now,
		sessions: expirable.NewLRU[string, *calendar.Session](cfg.SessionSize, nil, cfg.SessionTTL),
	}
}
