package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"kwikr-directory/pkg/credential"
	"kwikr-directory/pkg/log"
)

const purgeTimeout = 30 * time.Second

// Scheduler runs periodic maintenance of the credential store.
type Scheduler struct {
	l      log.Logger
	cron   *cron.Cron
	purger credential.Purger
	spec   string
}

// New validates spec and builds a scheduler in loc.
func New(l log.Logger, purger credential.Purger, spec string, loc *time.Location) (*Scheduler, error) {
	if purger == nil {
		return nil, fmt.Errorf("scheduler: purger is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("scheduler: invalid purge schedule %q: %w", spec, err)
	}

	return &Scheduler{
		l:      l,
		cron:   cron.New(cron.WithLocation(loc)),
		purger: purger,
		spec:   spec,
	}, nil
}

// Start registers the jobs and blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.purgeExpired(ctx) }); err != nil {
		return fmt.Errorf("add credential purge: %w", err)
	}

	s.cron.Start()
	s.l.Infof(ctx, "Scheduler started (credential purge: %s)", s.spec)

	<-ctx.Done()
	s.Stop()
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.l.Info(context.Background(), "Scheduler stopped")
}

func (s *Scheduler) purgeExpired(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, purgeTimeout)
	defer cancel()

	n, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		s.l.Errorf(ctx, "scheduler.purgeExpired: %v", err)
		return
	}
	if n > 0 {
		s.l.Infof(ctx, "Purged %d expired credentials", n)
	}
}
