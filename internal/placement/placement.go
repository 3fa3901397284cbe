// Package placement decides where a personal task is stored: on the backend
// or only on this device.
package placement

import (
	"context"
	"fmt"
	"sync"
	"time"

	"classsync/internal/devicestore"
	"classsync/internal/errdefs"
	"classsync/internal/model"

	"github.com/google/uuid"
)

type Remote interface {
	InsertAssignment(ctx context.Context, input *model.CreateAssignmentInput) (*model.Assignment, error)
	UpsertState(ctx context.Context, state model.PersonalState, seq int64) error
}

type NewTask struct {
	Title        string
	DueDate      *model.Date
	DueTime      *model.TimeOfDay
	KeepOnDevice bool
}

type Router struct {
	remote Remote
	prefs  *devicestore.Preferences
	now    func() time.Time

	// mu serializes read-modify-write of the device state list.
	mu sync.Mutex
}

func NewRouter(remote Remote, prefs *devicestore.Preferences, now func() time.Time) *Router {
	if now == nil {
		now = time.Now
	}
	return &Router{remote: remote, prefs: prefs, now: now}
}

// CreatePersonalTask stores a task for owner. Device tasks never reach the
// backend, and a failed remote insert is returned as is.
func (r *Router) CreatePersonalTask(ctx context.Context, owner uuid.UUID, task NewTask) (*model.Assignment, error) {
	if task.Title == "" {
		return nil, fmt.Errorf("%w: title is required", errdefs.ErrValidation)
	}
	if task.DueTime != nil && task.DueDate == nil {
		return nil, fmt.Errorf("%w: due time without due date", errdefs.ErrValidation)
	}

	if !task.KeepOnDevice {
		created, err := r.remote.InsertAssignment(ctx, &model.CreateAssignmentInput{
			Title:      task.Title,
			DueDate:    task.DueDate,
			DueTime:    task.DueTime,
			IsPersonal: true,
		})
		if err != nil {
			return nil, fmt.Errorf("insert personal task: %w", err)
		}
		created.Storage = model.StorageRemote
		return created, nil
	}

	ownerID := owner
	local := model.Assignment{
		ID:         uuid.New(),
		Title:      task.Title,
		DueDate:    task.DueDate,
		DueTime:    task.DueTime,
		Status:     model.StatusApproved,
		OwnerID:    &ownerID,
		IsPersonal: true,
		Storage:    model.StorageDevice,
		CreatedAt:  r.now().UTC(),
	}
	tasks := append(r.prefs.LocalTasks(), local)
	if err := r.prefs.SetLocalTasks(tasks); err != nil {
		return nil, fmt.Errorf("save device task: %w", err)
	}
	return &local, nil
}

// LocalTasks returns the device tasks owned by owner.
func (r *Router) LocalTasks(owner uuid.UUID) []model.Assignment {
	var out []model.Assignment
	for _, t := range r.prefs.LocalTasks() {
		if t.OwnedBy(owner) {
			t.Storage = model.StorageDevice
			out = append(out, t)
		}
	}
	return out
}

// IsLocal reports whether id names a task kept on this device.
func (r *Router) IsLocal(id uuid.UUID) bool {
	for _, t := range r.prefs.LocalTasks() {
		if t.ID == id {
			return true
		}
	}
	return false
}

// RemoveLocal deletes a device task owned by owner.
func (r *Router) RemoveLocal(owner, id uuid.UUID) error {
	tasks := r.prefs.LocalTasks()
	for i, t := range tasks {
		if t.ID != id {
			continue
		}
		if !t.OwnedBy(owner) {
			return errdefs.ErrPermissionDenied
		}
		tasks = append(tasks[:i], tasks[i+1:]...)
		if err := r.prefs.SetLocalTasks(tasks); err != nil {
			return fmt.Errorf("save device tasks: %w", err)
		}
		return r.dropLocalState(id)
	}
	return errdefs.ErrNotFound
}

// UpsertState persists a personal state next to its assignment: device
// tasks keep theirs on the device, everything else goes to the backend.
// A device write older than the stored one is ignored.
func (r *Router) UpsertState(ctx context.Context, state model.PersonalState, seq int64) error {
	if !r.IsLocal(state.AssignmentID) {
		return r.remote.UpsertState(ctx, state, seq)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	states := r.prefs.LocalStates()
	for i, s := range states {
		if s.State.UserID != state.UserID || s.State.AssignmentID != state.AssignmentID {
			continue
		}
		if s.Seq > seq {
			return nil
		}
		states[i] = devicestore.LocalState{State: state, Seq: seq}
		return r.saveLocalStates(states)
	}
	return r.saveLocalStates(append(states, devicestore.LocalState{State: state, Seq: seq}))
}

// LocalStates returns owner's states for tasks still kept on this device.
func (r *Router) LocalStates(owner uuid.UUID) []model.PersonalState {
	tasks := make(map[uuid.UUID]struct{})
	for _, t := range r.LocalTasks(owner) {
		tasks[t.ID] = struct{}{}
	}
	var out []model.PersonalState
	for _, s := range r.prefs.LocalStates() {
		if _, ok := tasks[s.State.AssignmentID]; ok && s.State.UserID == owner {
			out = append(out, s.State)
		}
	}
	return out
}

func (r *Router) dropLocalState(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	states := r.prefs.LocalStates()
	kept := states[:0]
	for _, s := range states {
		if s.State.AssignmentID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(states) {
		return nil
	}
	return r.saveLocalStates(kept)
}

func (r *Router) saveLocalStates(states []devicestore.LocalState) error {
	if err := r.prefs.SetLocalStates(states); err != nil {
		return fmt.Errorf("save device task state: %w", err)
	}
	return nil
}

// Merge returns remote followed by the caller's device tasks. A device task
// whose id also comes from the backend is dropped.
func Merge(remote, local []model.Assignment, owner uuid.UUID) []model.Assignment {
	seen := make(map[uuid.UUID]struct{}, len(remote))
	out := make([]model.Assignment, 0, len(remote)+len(local))
	for _, a := range remote {
		if a.Storage == "" {
			a.Storage = model.StorageRemote
		}
		seen[a.ID] = struct{}{}
		out = append(out, a)
	}
	for _, a := range local {
		if !a.OwnedBy(owner) {
			continue
		}
		if _, dup := seen[a.ID]; dup {
			continue
		}
		a.Storage = model.StorageDevice
		out = append(out, a)
	}
	return out
}
