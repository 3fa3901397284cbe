package reconciler_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"classsync/internal/model"
	"classsync/internal/reconciler"
)

type fakeTimer struct {
	clock    *fakeClock
	at       time.Time
	fn       func()
	stopped  bool
	finished bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.finished
	t.stopped = true
	return active
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) reconciler.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now.Add(d), fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward and fires due timers outside the lock.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.finished && !t.at.After(c.now) {
			t.finished = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	sort.Slice(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
	for _, t := range due {
		t.fn()
	}
}

type upsert struct {
	state model.PersonalState
	seq   int64
}

// fakeStore records upserts; a non-nil gate blocks each call until released.
type fakeStore struct {
	mu      sync.Mutex
	calls   []upsert
	fail    bool
	gate    chan struct{}
	entered chan struct{}
}

var errBackendDown = errors.New("backend down")

func (s *fakeStore) UpsertState(ctx context.Context, state model.PersonalState, seq int64) error {
	if s.entered != nil {
		s.entered <- struct{}{}
	}
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, upsert{state: state, seq: seq})
	if s.fail {
		return errBackendDown
	}
	return nil
}

func (s *fakeStore) Calls() []upsert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]upsert(nil), s.calls...)
}
