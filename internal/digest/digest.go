// Package digest periodically emails users their expense forecast.
package digest

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Dan9191/easyliving-service/internal/forecast"
	"github.com/Dan9191/easyliving-service/internal/models"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// UserLister lists the users to send digests to
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// Forecaster produces a forecast for one user
type Forecaster interface {
	ForecastExpenses(ctx context.Context, req forecast.Request) (*forecast.Result, error)
}

// Notifier delivers a digest
type Notifier interface {
	SendForecastDigest(to, name string, res *forecast.Result) error
}

// Job forecasts the coming week for every user and sends the result
type Job struct {
	users      UserLister
	forecaster Forecaster
	notifier   Notifier
	log        *logrus.Logger
}

// NewJob creates a digest job
func NewJob(users UserLister, forecaster Forecaster, notifier Notifier, log *logrus.Logger) *Job {
	return &Job{users: users, forecaster: forecaster, notifier: notifier, log: log}
}

// Run sends one digest per user. A failure for one user is logged and does
// not stop the others; the number of digests sent is returned.
func (j *Job) Run(ctx context.Context) (int, error) {
	users, err := j.users.ListUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list digest recipients: %w", err)
	}

	sent := 0
	for _, u := range users {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		res, err := j.forecaster.ForecastExpenses(ctx, forecast.Request{
			UserID: strconv.FormatInt(u.ID, 10),
			Days:   forecast.DefaultForecastDays,
		})
		if err != nil {
			j.log.WithError(err).Warnf("Skipping digest for user %d", u.ID)
			continue
		}
		if err := j.notifier.SendForecastDigest(u.Email, u.Name, res); err != nil {
			j.log.WithError(err).Warnf("Failed to deliver digest to user %d", u.ID)
			continue
		}
		sent++
	}

	j.log.Infof("Forecast digest sent to %d of %d users", sent, len(users))
	return sent, nil
}

// Scheduler runs the digest job on a cron schedule
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler registers the job under a standard 5-field cron spec
func NewScheduler(spec string, job *Job, log *logrus.Logger) (*Scheduler, error) {
	c := cron.New(cron.WithLogger(cron.PrintfLogger(log)))
	_, err := c.AddFunc(spec, func() {
		if _, err := job.Run(context.Background()); err != nil {
			log.WithError(err).Error("Forecast digest failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", spec, err)
	}
	return &Scheduler{cron: c}, nil
}

// Start begins running scheduled jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and returns a context done when running jobs finish
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
