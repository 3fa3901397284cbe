package reconciler

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultUndoWindow = 5 * time.Second

// UndoWindow remembers the last completed assignment for a short time.
type UndoWindow struct {
	mu       sync.Mutex
	clock    Clock
	window   time.Duration
	target   uuid.UUID
	deadline time.Time
	armed    bool
	timer    Timer
	onChange func()
}

func NewUndoWindow(clock Clock, window time.Duration, onChange func()) *UndoWindow {
	if window <= 0 {
		window = DefaultUndoWindow
	}
	if onChange == nil {
		onChange = func() {}
	}
	return &UndoWindow{clock: clock, window: window, onChange: onChange}
}

// Arm opens a fresh window for id, replacing any previous one.
func (w *UndoWindow) Arm(id uuid.UUID) {
	w.arm(id, w.clock.Now().Add(w.window))
}

// Restore re-opens a window with a deadline recorded earlier. Deadlines that
// already passed are ignored.
func (w *UndoWindow) Restore(id uuid.UUID, deadline time.Time) bool {
	if !w.clock.Now().Before(deadline) {
		return false
	}
	w.arm(id, deadline)
	return true
}

func (w *UndoWindow) arm(id uuid.UUID, deadline time.Time) {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.target = id
	w.deadline = deadline
	w.armed = true
	w.timer = w.clock.AfterFunc(deadline.Sub(w.clock.Now()), func() {
		w.expire(id, deadline)
	})
	w.mu.Unlock()
	w.onChange()
}

func (w *UndoWindow) expire(id uuid.UUID, deadline time.Time) {
	w.mu.Lock()
	if !w.armed || w.target != id || !w.deadline.Equal(deadline) {
		w.mu.Unlock()
		return
	}
	w.clear()
	w.mu.Unlock()
	w.onChange()
}

// Take consumes the window if it is still open.
func (w *UndoWindow) Take() (uuid.UUID, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.armed {
		return uuid.Nil, false
	}
	id := w.target
	open := w.clock.Now().Before(w.deadline)
	w.clear()
	return id, open
}

func (w *UndoWindow) Pending() (uuid.UUID, time.Time, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.armed || !w.clock.Now().Before(w.deadline) {
		return uuid.Nil, time.Time{}, false
	}
	return w.target, w.deadline, true
}

func (w *UndoWindow) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.clear()
}

func (w *UndoWindow) clear() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.armed = false
	w.target = uuid.Nil
	w.deadline = time.Time{}
}
