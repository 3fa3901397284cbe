// Package reconciler keeps the caller's personal assignment state.
//
// Updates are merged into the local cache and published to subscribers right
// away; persistence to the backend happens in the background. Each write
// carries a client sequence so the backend can discard stale upserts that
// arrive out of order.
package reconciler

import (
	"context"
	"sync"
	"time"

	"classsync/internal/logging"
	"classsync/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Store interface {
	UpsertState(ctx context.Context, state model.PersonalState, seq int64) error
}

// Policy decides what happens to an optimistic update whose write failed.
type Policy int

const (
	// RetainOptimistic keeps the local value; the backend is a durability sink.
	RetainOptimistic Policy = iota
	// RollbackOnFailure restores the last value the backend accepted unless
	// a newer local write for the same assignment happened in the meantime.
	RollbackOnFailure
)

func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "", "retain":
		return RetainOptimistic, true
	case "rollback":
		return RollbackOnFailure, true
	default:
		return RetainOptimistic, false
	}
}

type Config struct {
	Policy     Policy
	UndoWindow time.Duration
	Clock      Clock
	Logger     *logging.Logger
}

type entry struct {
	state model.PersonalState
	seq   int64
}

type Reconciler struct {
	mu      sync.Mutex
	userID  uuid.UUID
	store   Store
	policy  Policy
	clock   Clock
	logger  *logging.Logger
	entries map[uuid.UUID]entry
	// confirmed holds the last value known to be stored by the backend.
	confirmed map[uuid.UUID]entry
	inflight  map[uuid.UUID]int
	lastSeq   int64
	undo      *UndoWindow
	wg        sync.WaitGroup

	subMu       sync.Mutex
	subscribers []func(model.PersonalState)
	undoSubs    []func()
}

func New(userID uuid.UUID, store Store, cfg Config) *Reconciler {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}
	r := &Reconciler{
		userID:    userID,
		store:     store,
		policy:    cfg.Policy,
		clock:     cfg.Clock,
		logger:    cfg.Logger,
		entries:   make(map[uuid.UUID]entry),
		confirmed: make(map[uuid.UUID]entry),
		inflight:  make(map[uuid.UUID]int),
	}
	r.undo = NewUndoWindow(cfg.Clock, cfg.UndoWindow, r.notifyUndo)
	return r
}

func (r *Reconciler) UserID() uuid.UUID {
	return r.userID
}

// Subscribe registers fn to receive every state change, local or rolled back.
func (r *Reconciler) Subscribe(fn func(model.PersonalState)) {
	r.subMu.Lock()
	defer r.subMu.Unlock()
	r.subscribers = append(r.subscribers, fn)
}

// SubscribeUndo registers fn to be called when the undo window opens or closes.
func (r *Reconciler) SubscribeUndo(fn func()) {
	r.subMu.Lock()
	defer r.subMu.Unlock()
	r.undoSubs = append(r.undoSubs, fn)
}

// Load replaces the cache with states fetched from the backend. Assignments
// with writes still in flight keep their local value.
func (r *Reconciler) Load(states []model.PersonalState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make(map[uuid.UUID]entry, len(states))
	confirmed := make(map[uuid.UUID]entry, len(states))
	for _, s := range states {
		if s.UserID != r.userID {
			continue
		}
		next[s.AssignmentID] = entry{state: s}
		confirmed[s.AssignmentID] = entry{state: s}
	}
	for id, n := range r.inflight {
		if n > 0 {
			if e, ok := r.entries[id]; ok {
				next[id] = e
			}
		}
	}
	r.entries = next
	r.confirmed = confirmed
}

func (r *Reconciler) Get(assignmentID uuid.UUID) (model.PersonalState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[assignmentID]
	return e.state, ok
}

func (r *Reconciler) Snapshot() map[uuid.UUID]model.PersonalState {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[uuid.UUID]model.PersonalState, len(r.entries))
	for id, e := range r.entries {
		out[id] = e.state
	}
	return out
}

// Apply merges update into the cached state for assignmentID and schedules
// the write. The merged state is returned before the backend answers.
func (r *Reconciler) Apply(ctx context.Context, assignmentID uuid.UUID, update model.StateUpdate) model.PersonalState {
	r.mu.Lock()
	prev := r.entries[assignmentID]
	next := update.Merge(prev.state)
	next.AssignmentID = assignmentID
	next.UserID = r.userID

	seq := r.nextSeq()
	r.entries[assignmentID] = entry{state: next, seq: seq}
	r.inflight[assignmentID]++
	r.wg.Add(1)
	r.mu.Unlock()

	if update.Completed != nil && *update.Completed {
		r.undo.Arm(assignmentID)
	}
	r.notify(next)

	go r.persist(context.WithoutCancel(ctx), next, seq)
	return next
}

func (r *Reconciler) nextSeq() int64 {
	seq := r.clock.Now().UnixNano()
	if seq <= r.lastSeq {
		seq = r.lastSeq + 1
	}
	r.lastSeq = seq
	return seq
}

func (r *Reconciler) persist(ctx context.Context, state model.PersonalState, seq int64) {
	defer r.wg.Done()

	err := r.store.UpsertState(ctx, state, seq)

	r.mu.Lock()
	r.inflight[state.AssignmentID]--
	if r.inflight[state.AssignmentID] <= 0 {
		delete(r.inflight, state.AssignmentID)
	}
	if err == nil {
		if c, ok := r.confirmed[state.AssignmentID]; !ok || c.seq < seq {
			r.confirmed[state.AssignmentID] = entry{state: state, seq: seq}
		}
		r.mu.Unlock()
		return
	}

	r.logger.Error(ctx, "failed to persist personal state",
		zap.String("assignment_id", state.AssignmentID.String()),
		zap.Int64("seq", seq),
		zap.Error(err),
	)

	if r.policy != RollbackOnFailure {
		r.mu.Unlock()
		return
	}
	cur, ok := r.entries[state.AssignmentID]
	if !ok || cur.seq != seq {
		r.mu.Unlock()
		return
	}
	prev, hadPrev := r.confirmed[state.AssignmentID]
	restored := prev.state
	if hadPrev {
		r.entries[state.AssignmentID] = prev
	} else {
		delete(r.entries, state.AssignmentID)
		restored = model.PersonalState{UserID: r.userID, AssignmentID: state.AssignmentID}
	}
	r.mu.Unlock()

	r.logger.Warn(ctx, "rolled back personal state", zap.String("assignment_id", state.AssignmentID.String()))
	r.notify(restored)
}

// Undo reverts the last completion if its window is still open.
func (r *Reconciler) Undo(ctx context.Context) (model.PersonalState, bool) {
	id, ok := r.undo.Take()
	r.notifyUndo()
	if !ok {
		return model.PersonalState{}, false
	}
	reopened := false
	return r.Apply(ctx, id, model.StateUpdate{Completed: &reopened}), true
}

func (r *Reconciler) PendingUndo() (uuid.UUID, time.Time, bool) {
	return r.undo.Pending()
}

// RestoreUndo re-opens an undo window recorded by an earlier session.
func (r *Reconciler) RestoreUndo(assignmentID uuid.UUID, deadline time.Time) bool {
	return r.undo.Restore(assignmentID, deadline)
}

// Wait blocks until every scheduled write has finished.
func (r *Reconciler) Wait() {
	r.wg.Wait()
}

// Close stops the undo timer and waits for pending writes.
func (r *Reconciler) Close() {
	r.undo.Stop()
	r.wg.Wait()
}

func (r *Reconciler) notify(state model.PersonalState) {
	r.subMu.Lock()
	subs := append([]func(model.PersonalState){}, r.subscribers...)
	r.subMu.Unlock()
	for _, fn := range subs {
		fn(state)
	}
}

func (r *Reconciler) notifyUndo() {
	r.subMu.Lock()
	subs := append([]func(){}, r.undoSubs...)
	r.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
