// Package digest summarises the previous day on a cron schedule.
package digest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Tiliavir/trivial-mood-tracker/internal/calendar"
	"github.com/Tiliavir/trivial-mood-tracker/internal/summary"
)

// Summarizer is the part of the engine the digest needs.
type Summarizer interface {
	SummaryForDay(d calendar.Date) summary.Summary
	Location() *time.Location
}

// Sink receives each digest.
type Sink func(day calendar.Date, s summary.Summary)

// Scheduler runs the digest job.
type Scheduler struct {
	schedule string
	src      Summarizer
	sink     Sink
	logger   *zap.Logger

	mu   sync.Mutex
	cron *cron.Cron
	done chan struct{}
}

// New validates schedule and returns a scheduler that is not yet running.
func New(schedule string, src Summarizer, sink Sink, logger *zap.Logger) (*Scheduler, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", schedule, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{schedule: schedule, src: src, sink: sink, logger: logger}, nil
}

// LogSink writes each digest as a structured log line.
func LogSink(logger *zap.Logger) Sink {
	return func(day calendar.Date, s summary.Summary) {
		fields := []zap.Field{zap.String("day", day.String()), zap.Int("total", s.Total)}
		for _, r := range s.Rows() {
			fields = append(fields, zap.Int(string(r.Mood), r.Count))
		}
		logger.Info("daily mood digest", fields...)
	}
}

// RunOnce summarises the day before now and hands it to the sink.
func (s *Scheduler) RunOnce(now time.Time) {
	day := calendar.DateOf(now, s.src.Location()).AddDays(-1)
	s.sink(day, s.src.SummaryForDay(day))
}

// Start begins running the job until ctx is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return fmt.Errorf("digest already started")
	}

	c := cron.New(cron.WithLocation(s.src.Location()))
	if _, err := c.AddFunc(s.schedule, func() { s.RunOnce(time.Now()) }); err != nil {
		return fmt.Errorf("scheduling digest: %w", err)
	}
	c.Start()
	done := make(chan struct{})
	s.cron, s.done = c, done
	s.logger.Info("digest scheduled", zap.String("schedule", s.schedule))

	go func() {
		select {
		case <-ctx.Done():
			s.Stop()
		case <-done:
		}
	}()
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	c, done := s.cron, s.done
	s.cron, s.done = nil, nil
	s.mu.Unlock()
	if c == nil {
		return
	}
	close(done)
	<-c.Stop().Done()
}
