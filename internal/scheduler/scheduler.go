// Package scheduler runs the background credential keep-alive job.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/quicklist/internal/ebay"
	"github.com/donaldgifford/quicklist/internal/metrics"
)

// Keep-alive run results, used as the metric label.
const (
	ResultRefreshed    = "refreshed"
	ResultFresh        = "fresh"
	ResultNoCredential = "no_credential"
	ResultError        = "error"
)

// jobTimeout bounds one keep-alive run.
const jobTimeout = 2 * time.Minute

// Refresher refreshes the stored credential when it is about to expire.
type Refresher interface {
	RefreshIfExpiring(ctx context.Context, within time.Duration) (bool, error)
}

// Scheduler refreshes the credential on a fixed interval so the refresh
// token stays in use while nobody is creating listings.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	interval  time.Duration
	log       *slog.Logger
}

// NewScheduler registers the keep-alive job. Every run refreshes when the
// access token would expire before the next run.
func NewScheduler(refresher Refresher, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("keep-alive interval must be positive, got %s", interval)
	}
	if log == nil {
		log = slog.Default()
	}

	c := cron.New()
	s := &Scheduler{
		cron:      c,
		refresher: refresher,
		interval:  interval,
		log:       log,
	}

	if _, err := c.AddFunc("@every "+interval.String(), s.runKeepAlive); err != nil {
		return nil, fmt.Errorf("registering keep-alive job: %w", err)
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("keep-alive scheduler started", "interval", s.interval)
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("keep-alive scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// RunOnce performs one keep-alive check and returns its result label.
func (s *Scheduler) RunOnce(ctx context.Context) string {
	refreshed, err := s.refresher.RefreshIfExpiring(ctx, s.interval+time.Minute)

	var result string
	switch {
	case errors.Is(err, ebay.ErrAuthRequired):
		result = ResultNoCredential
		s.log.Warn("keep-alive skipped, seller authorization required", "error", err)
	case err != nil:
		result = ResultError
		s.log.Error("keep-alive refresh failed", "error", err)
	case refreshed:
		result = ResultRefreshed
		s.log.Info("keep-alive refreshed credential")
	default:
		result = ResultFresh
		s.log.Debug("keep-alive found credential fresh")
	}

	metrics.KeepAliveRunsTotal.WithLabelValues(result).Inc()
	return result
}

func (s *Scheduler) runKeepAlive() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	s.RunOnce(ctx)
}
