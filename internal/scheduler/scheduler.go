// Package scheduler runs the availability batch on a timer for deployments
// without an external cron service.  It is a thin wrapper over robfig/cron;
// the batch logic itself lives with the trigger handler so both entry
// points share one code path.
package scheduler

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// BatchFunc is one full availability run.  It never returns an error: the
// batch contains its failures per event and per store call.
type BatchFunc func(ctx context.Context)

// Scheduler triggers the availability batch on a cron spec such as
// "@every 15m".  There is intentionally no run lock: if a batch overruns
// into the next tick the two runs interleave and the last write wins, which
// is acceptable because every run converges to the latest observed state.
type Scheduler struct {
	cron *cron.Cron
	spec string
	run  BatchFunc
}

// New builds a scheduler for the given cron spec.
func New(spec string, run BatchFunc) *Scheduler {
	return &Scheduler{cron: cron.New(), spec: spec, run: run}
}

// Start registers the job and launches the cron loop.  An immediate first
// run is kicked off so a fresh deploy has data before the first tick.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, func() {
		s.run(context.Background())
	}); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("[scheduler] availability check scheduled: %s", s.spec)

	go s.run(context.Background())
	return nil
}

// Stop halts the cron loop.  In-flight batches run to completion; each
// fetch inside is individually timeout-bounded so completion is prompt.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
