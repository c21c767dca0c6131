// Package scheduler wraps gocron for the service's background jobs
package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// Scheduler runs named cron jobs until shut down
type Scheduler struct {
	inner gocron.Scheduler
	log   *zap.Logger
}

// New creates and starts a scheduler
func New(log *zap.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
		gocron.WithLogger(&zapAdapter{log: log}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	s.Start()
	return &Scheduler{inner: s, log: log}, nil
}

// AddJob schedules job under name using a cron expression
func (s *Scheduler) AddJob(name, cronExpr string, job func()) error {
	_, err := s.inner.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(job),
		gocron.WithName(name),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule job %q: %w", name, err)
	}
	s.log.Info("job scheduled", zap.String("name", name), zap.String("cron", cronExpr))
	return nil
}

// Stop gracefully shuts the scheduler down, waiting for running jobs
func (s *Scheduler) Stop() error {
	if err := s.inner.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown scheduler: %w", err)
	}
	return nil
}

// zapAdapter implements gocron.Logger on top of zap's sugared logger
type zapAdapter struct {
	log *zap.Logger
}

func (a *zapAdapter) Debug(msg string, args ...any) { a.log.Sugar().Debugw(msg, args...) }
func (a *zapAdapter) Error(msg string, args ...any) { a.log.Sugar().Errorw(msg, args...) }
func (a *zapAdapter) Info(msg string, args ...any)  { a.log.Sugar().Infow(msg, args...) }
func (a *zapAdapter) Warn(msg string, args ...any)  { a.log.Sugar().Warnw(msg, args...) }
