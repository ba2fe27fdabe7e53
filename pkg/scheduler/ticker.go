package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

const tickResolution = 15 * time.Second

// Job is one recurring piece of work. Schedule accepts either a Go duration
// ("5m") or a standard five-field cron expression ("30 3 * * *").
type Job struct {
	Name     string
	Schedule string
	Run      func(context.Context)
}

// Ticker drives recurring jobs off a single loop. Jobs run inline and must
// be fast or enqueue their real work.
type Ticker struct {
	jobs   []Job
	logger *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	ticker  *time.Ticker
	lastRun map[string]time.Time
	wg      sync.WaitGroup
}

// NewTicker creates an empty ticker.
func NewTicker(logger *slog.Logger) *Ticker {
	return &Ticker{
		logger:  logger,
		lastRun: make(map[string]time.Time),
	}
}

// Add registers a job. Must be called before Start.
func (t *Ticker) Add(name, schedule string, run func(context.Context)) {
	t.jobs = append(t.jobs, Job{Name: name, Schedule: schedule, Run: run})
}

// Start begins the loop. Safe to call more than once.
func (t *Ticker) Start(ctx context.Context) {
	t.mu.Lock()
	if t.ticker != nil {
		t.mu.Unlock()
		return
	}
	loopCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.ticker = time.NewTicker(tickResolution)
	ticker := t.ticker
	t.mu.Unlock()

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		for {
			select {
			case <-loopCtx.Done():
				return
			case now := <-ticker.C:
				t.runDue(loopCtx, now.UTC())
			}
		}
	}()
}

// Stop halts the loop and waits for an in-flight pass to finish.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if t.ticker == nil {
		t.mu.Unlock()
		return
	}
	t.ticker.Stop()
	t.ticker = nil
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.mu.Unlock()

	t.wg.Wait()
}

func (t *Ticker) runDue(ctx context.Context, now time.Time) {
	for _, job := range t.jobs {
		t.mu.Lock()
		last, ran := t.lastRun[job.Name]
		t.mu.Unlock()

		anchor := last
		if !ran {
			anchor = now.Add(-tickResolution)
		}
		due, err := scheduleDue(job.Schedule, anchor, now)
		if err != nil {
			t.logger.Warn("invalid job schedule",
				slog.String("job", job.Name),
				slog.String("schedule", job.Schedule),
				slog.String("error", err.Error()))
			continue
		}
		if !due {
			continue
		}

		t.mu.Lock()
		t.lastRun[job.Name] = now
		t.mu.Unlock()
		job.Run(ctx)
	}
}

// scheduleDue reports whether a job anchored at its last run is due at now.
func scheduleDue(schedule string, anchor, now time.Time) (bool, error) {
	schedule = strings.TrimSpace(schedule)
	if schedule == "" {
		return false, fmt.Errorf("schedule is required")
	}

	if interval, err := time.ParseDuration(schedule); err == nil {
		if interval <= 0 {
			return false, fmt.Errorf("interval must be > 0")
		}
		return !anchor.Add(interval).After(now), nil
	}

	spec, err := cron.ParseStandard(schedule)
	if err != nil {
		return false, err
	}
	return !spec.Next(anchor).After(now), nil
}
