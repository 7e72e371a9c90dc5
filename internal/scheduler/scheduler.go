package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Refresher is the slice of the weather service the scheduler drives.
type Refresher interface {
	RefreshAll(ctx context.Context)
}

// Scheduler periodically refreshes snapshots for all tracked locations.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   Refresher
	interval  time.Duration
	timeout   time.Duration
}

// New creates a Scheduler running every interval, bounding each refresh pass
// by timeout.
func New(service Refresher, interval, timeout time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		interval:  interval,
		timeout:   timeout,
	}
}

// Start schedules the periodic job, runs it once immediately, and starts the
// underlying scheduler.
func (s *Scheduler) Start() error {
	interval := s.interval
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	job := func() {
		log.Println("scheduler: refreshing weather snapshots")

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		s.service.RefreshAll(ctx)
	}

	if _, err := s.scheduler.Every(interval).StartImmediately().Do(job); err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
