package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/i474232898/weather-chat/internal/store"
)

// StatsSource is anything that can report history statistics.
type StatsSource interface {
	Stats() store.Stats
}

// Scheduler periodically logs how much chat history the process holds.
// History is never evicted, so this is the only view of its growth.
type Scheduler struct {
	scheduler *gocron.Scheduler
	source    StatsSource
	interval  time.Duration
	logger    *zap.Logger
}

// New creates a new Scheduler.
func New(source StatsSource, interval time.Duration, logger *zap.Logger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		source:    source,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the report job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.logger.Info("scheduler: history report disabled")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 1
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		s.Report()
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Report logs the current history statistics.
func (s *Scheduler) Report() store.Stats {
	st := s.source.Stats()
	s.logger.Info("scheduler: chat history size",
		zap.Int("clients", st.Clients),
		zap.Int("exchanges", st.Exchanges))
	return st
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
