package events

import (
	"context"
	"fmt"
	"time"

	"classsync/internal/logging"
	"classsync/internal/model"
	"classsync/internal/urgency"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type AssignmentLister interface {
	ListDueBetween(ctx context.Context, from, to model.Date) ([]model.Assignment, error)
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
}

const reminderTTL = 48 * time.Hour

// ReminderWorker announces approved class assignments that are due within
// the next 24 hours. Each assignment is announced once per due moment.
type ReminderWorker struct {
	assignments AssignmentLister
	publisher   Publisher
	sent        Cache
	logger      *logging.Logger
	now         func() time.Time
	loc         *time.Location
}

func NewReminderWorker(assignments AssignmentLister, publisher Publisher, sent Cache, logger *logging.Logger) *ReminderWorker {
	return &ReminderWorker{
		assignments: assignments,
		publisher:   publisher,
		sent:        sent,
		logger:      logger,
		now:         time.Now,
		loc:         time.Local,
	}
}

// Run performs one pass and returns how many reminders were published.
func (w *ReminderWorker) Run(ctx context.Context) int {
	now := w.now().In(w.loc)
	today := model.DateOf(now)
	tomorrow := model.DateOf(now.AddDate(0, 0, 1))

	list, err := w.assignments.ListDueBetween(ctx, today, tomorrow)
	if err != nil {
		w.logger.Error(ctx, "Failed to get assignments due soon", zap.Error(err))
		return 0
	}

	published := 0
	for i := range list {
		a := &list[i]
		c := urgency.ClassifyAssignment(a, now)
		if c.Bucket != urgency.DueToday && c.Bucket != urgency.Tomorrow {
			continue
		}
		key := reminderKey(a)
		if _, done := w.sent.Get(ctx, key); done {
			continue
		}

		event := NewEvent(TypeAssignmentReminder, a, now)
		event.Urgency = c.Label
		if err := w.publisher.Publish(ctx, event); err != nil {
			w.logger.Error(ctx, "Failed to send reminder", zap.String("assignment_id", a.ID.String()), zap.Error(err))
			continue
		}
		w.sent.Set(ctx, key, []byte("1"), reminderTTL)
		published++
		w.logger.Info(ctx, "Sent reminder", zap.String("assignment_id", a.ID.String()))
	}
	return published
}

func reminderKey(a *model.Assignment) string {
	due := ""
	if a.DueDate != nil {
		due = a.DueDate.String()
	}
	if a.DueTime != nil {
		due += "T" + a.DueTime.String()
	}
	return fmt.Sprintf("reminder:%s:%s", a.ID, due)
}

// Scheduler runs the worker on a cron spec, skipping a tick while the
// previous run is still going.
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(ctx context.Context, spec string, w *ReminderWorker) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(spec, func() { w.Run(ctx) }); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running pass to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}
