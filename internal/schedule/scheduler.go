// Package schedule owns the recurring per-user triggers: the daily prompt,
// the weekly summary and the monthly report.
package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Cron specs, evaluated in the user's timezone via a CRON_TZ prefix.
const (
	dailySpec   = "0 8 * * *"  // every day 08:00
	weeklySpec  = "10 8 * * 1" // Monday 08:10
	monthlySpec = "15 8 1 * *" // 1st of the month 08:15

	jobTimeout = time.Minute
)

// Jobs is the set of handlers the scheduler fires. Implemented by
// app.NotifyService.
type Jobs interface {
	DailyPrompt(ctx context.Context, userID int64)
	WeeklySummary(ctx context.Context, userID int64)
	MonthlyReport(ctx context.Context, userID int64)
}

// Scheduler keeps exactly one cron entry per registered user per job kind.
// Entries fire in their own goroutine, so a slow handler for one user never
// delays another user's due time.
type Scheduler struct {
	cron *cron.Cron
	jobs Jobs
	log  *zap.SugaredLogger

	mu      sync.Mutex
	entries map[int64][]cron.EntryID
}

// New creates a stopped Scheduler; call Start once the process is wired.
func New(jobs Jobs, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		jobs:    jobs,
		log:     log,
		entries: make(map[int64][]cron.EntryID),
	}
}

// Register installs the user's three triggers in tz, replacing any existing
// registration wholesale: every previous entry for the user is removed
// before the new ones are added, so repeated onboarding never duplicates a
// firing. Re-registering is also the only way a timezone change takes
// effect; entries keep the timezone they were registered with.
func (s *Scheduler) Register(userID int64, tz string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(userID)

	for _, j := range []struct {
		spec string
		run  func(context.Context, int64)
	}{
		{dailySpec, s.jobs.DailyPrompt},
		{weeklySpec, s.jobs.WeeklySummary},
		{monthlySpec, s.jobs.MonthlyReport},
	} {
		run := j.run
		id, err := s.cron.AddFunc(fmt.Sprintf("CRON_TZ=%s %s", tz, j.spec), func() {
			ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
			defer cancel()
			run(ctx, userID)
		})
		if err != nil {
			s.removeLocked(userID)
			return fmt.Errorf("register %q for user %d: %w", j.spec, userID, err)
		}
		s.entries[userID] = append(s.entries[userID], id)
	}
	s.log.Infow("jobs registered", "user", userID, "tz", tz)
	return nil
}

// Cancel removes every entry for the user.
func (s *Scheduler) Cancel(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(userID)
}

// Registered returns how many entries the user currently has.
func (s *Scheduler) Registered(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries[userID])
}

// Start begins firing due entries.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops firing and waits for jobs already running to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) removeLocked(userID int64) {
	for _, id := range s.entries[userID] {
		s.cron.Remove(id)
	}
	delete(s.entries, userID)
}
