package scheduler

import (
	"context"
	"time"

	"shop-payment-reconciler/internal/core/ports"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler runs the renewal sweep on a cron schedule.
type Scheduler struct {
	cron       *cron.Cron
	renewalSvc ports.RenewalService
	timeout    time.Duration
	log        zerolog.Logger
}

// New creates a Scheduler. The schedule uses standard 5-field cron syntax.
func New(renewalSvc ports.RenewalService, timeout time.Duration, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		renewalSvc: renewalSvc,
		timeout:    timeout,
		log:        log,
	}
}

// Start registers the sweep under the given schedule and starts the cron
// loop in its own goroutine.
func (s *Scheduler) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, s.runSweep)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("schedule", schedule).Msg("renewal sweep scheduled")
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("scheduler stopped")
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	renewed, lapsed, err := s.renewalSvc.SweepExpired(ctx)
	if err != nil {
		// The next tick recomputes its work from scratch, so a failed
		// run is only logged.
		s.log.Error().Err(err).Msg("renewal sweep failed")
		return
	}
	s.log.Info().
		Int("renewed", renewed).
		Int("lapsed", lapsed).
		Msg("renewal sweep tick complete")
}
