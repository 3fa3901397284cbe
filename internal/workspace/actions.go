package workspace

import (
	"context"
	"fmt"
	"strings"

	"classsync/internal/errdefs"
	"classsync/internal/model"
	"classsync/internal/placement"

	"github.com/google/uuid"
)

// ToggleEnrollment adds classID to the caller's classes or removes it.
func (w *Workspace) ToggleEnrollment(ctx context.Context, classID uuid.UUID) (bool, error) {
	profile, _, err := w.ready()
	if err != nil {
		return false, err
	}
	enrolled := !profile.IsEnrolled(classID)
	ids := make([]uuid.UUID, 0, len(profile.EnrolledClasses)+1)
	for _, id := range profile.EnrolledClasses {
		if id != classID {
			ids = append(ids, id)
		}
	}
	if enrolled {
		ids = append(ids, classID)
	}

	updated, err := w.backend.SetEnrollment(ctx, ids)
	if err != nil {
		return false, fmt.Errorf("set enrollment: %w", err)
	}
	w.mu.Lock()
	w.profile = updated
	w.mu.Unlock()
	w.emit(EventData)
	return enrolled, nil
}

// SuggestAssignment submits a class assignment. Whether it is published
// right away is decided by the backend.
func (w *Workspace) SuggestAssignment(ctx context.Context, title string, classID uuid.UUID, due *model.Date, at *model.TimeOfDay) (*model.Assignment, error) {
	if _, _, err := w.ready(); err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", errdefs.ErrValidation)
	}
	created, err := w.backend.InsertAssignment(ctx, &model.CreateAssignmentInput{
		Title:   title,
		ClassID: &classID,
		DueDate: due,
		DueTime: at,
	})
	if err != nil {
		return nil, fmt.Errorf("suggest assignment: %w", err)
	}
	w.addAssignment(*created)
	return created, nil
}

func (w *Workspace) SuggestClass(ctx context.Context, name, teacher string) (*model.ClassRecord, error) {
	if _, _, err := w.ready(); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: class name is required", errdefs.ErrValidation)
	}
	created, err := w.backend.CreateClass(ctx, &model.CreateClassInput{Name: name, Teacher: strings.TrimSpace(teacher)})
	if err != nil {
		return nil, fmt.Errorf("suggest class: %w", err)
	}
	w.mu.Lock()
	w.classes = append(w.classes, *created)
	w.mu.Unlock()
	w.emit(EventData)
	return created, nil
}

// AddPersonalTask stores a private task on the backend or, with
// KeepOnDevice, only on this device.
func (w *Workspace) AddPersonalTask(ctx context.Context, task placement.NewTask) (*model.Assignment, error) {
	profile, _, err := w.ready()
	if err != nil {
		return nil, err
	}
	task.Title = strings.TrimSpace(task.Title)
	created, err := w.router.CreatePersonalTask(ctx, profile.ID, task)
	if err != nil {
		return nil, err
	}
	w.addAssignment(*created)
	return created, nil
}

func (w *Workspace) DeletePersonalTask(ctx context.Context, id uuid.UUID) error {
	profile, _, err := w.ready()
	if err != nil {
		return err
	}
	if w.router.IsLocal(id) {
		err = w.router.RemoveLocal(profile.ID, id)
	} else {
		err = w.backend.DeleteAssignment(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("delete personal task: %w", err)
	}
	w.removeAssignment(id)
	return nil
}

// UpdatePersonalState applies update optimistically and returns the merged
// state. Persistence happens in the background.
func (w *Workspace) UpdatePersonalState(ctx context.Context, assignmentID uuid.UUID, update model.StateUpdate) (model.PersonalState, error) {
	_, rec, err := w.ready()
	if err != nil {
		return model.PersonalState{}, err
	}
	if update.IsEmpty() {
		state, _ := rec.Get(assignmentID)
		return state, nil
	}
	return rec.Apply(ctx, assignmentID, update), nil
}

// Undo reopens the most recently completed assignment while its undo window
// is open. It reports false when there is nothing to undo.
func (w *Workspace) Undo(ctx context.Context) (bool, error) {
	_, rec, err := w.ready()
	if err != nil {
		return false, err
	}
	_, ok := rec.Undo(ctx)
	return ok, nil
}

func (w *Workspace) SetAssignmentStatus(ctx context.Context, id uuid.UUID, status model.ModerationStatus) error {
	if _, err := w.admin(); err != nil {
		return err
	}
	if !status.IsValid() {
		return fmt.Errorf("%w: status %q", errdefs.ErrValidation, status)
	}
	if err := w.backend.SetAssignmentStatus(ctx, id, status); err != nil {
		return fmt.Errorf("set assignment status: %w", err)
	}
	if status == model.StatusDeleted {
		w.removeAssignment(id)
		return nil
	}
	w.mu.Lock()
	for i := range w.assignments {
		if w.assignments[i].ID == id {
			w.assignments[i].Status = status
		}
	}
	w.mu.Unlock()
	w.emit(EventData)
	return nil
}

func (w *Workspace) SetClassStatus(ctx context.Context, id uuid.UUID, status model.ModerationStatus) error {
	if _, err := w.admin(); err != nil {
		return err
	}
	if !status.IsValid() {
		return fmt.Errorf("%w: status %q", errdefs.ErrValidation, status)
	}
	if err := w.backend.SetClassStatus(ctx, id, status); err != nil {
		return fmt.Errorf("set class status: %w", err)
	}
	w.mu.Lock()
	kept := w.classes[:0]
	for _, c := range w.classes {
		if c.ID == id {
			if status == model.StatusDeleted {
				continue
			}
			c.Status = status
		}
		kept = append(kept, c)
	}
	w.classes = kept
	w.mu.Unlock()
	w.emit(EventData)
	return nil
}

// ToggleBan flips the banned flag of another profile.
func (w *Workspace) ToggleBan(ctx context.Context, profileID uuid.UUID) (bool, error) {
	me, err := w.admin()
	if err != nil {
		return false, err
	}
	if profileID == me.ID {
		return false, fmt.Errorf("%w: cannot ban yourself", errdefs.ErrValidation)
	}

	w.mu.RLock()
	banned := true
	for _, p := range w.profiles {
		if p.ID == profileID {
			banned = !p.IsBanned
		}
	}
	w.mu.RUnlock()

	updated, err := w.backend.SetBanned(ctx, profileID, banned)
	if err != nil {
		return false, fmt.Errorf("set banned: %w", err)
	}
	w.mu.Lock()
	for i := range w.profiles {
		if w.profiles[i].ID == profileID {
			w.profiles[i] = *updated
		}
	}
	w.mu.Unlock()
	w.emit(EventData)
	return updated.IsBanned, nil
}

func (w *Workspace) ToggleModeration(ctx context.Context) (bool, error) {
	if _, err := w.admin(); err != nil {
		return false, err
	}
	w.mu.RLock()
	enabled := !w.settings.ModerationEnabled
	w.mu.RUnlock()

	settings, err := w.backend.SetModeration(ctx, enabled)
	if err != nil {
		return false, fmt.Errorf("set moderation: %w", err)
	}
	w.mu.Lock()
	w.settings = *settings
	w.mu.Unlock()
	w.emit(EventData)
	return settings.ModerationEnabled, nil
}

// SetView switches the current screen. Transient screens are not remembered.
func (w *Workspace) SetView(view string) error {
	w.mu.Lock()
	w.view = view
	w.mu.Unlock()
	err := w.prefs.SetLastView(view)
	w.emit(EventPrefs)
	return err
}

func (w *Workspace) SetDarkMode(on bool) error {
	err := w.prefs.SetDarkMode(on)
	w.emit(EventPrefs)
	return err
}

func (w *Workspace) SetAccent(accent string) error {
	err := w.prefs.SetAccent(accent)
	w.emit(EventPrefs)
	return err
}

func (w *Workspace) SetClassColor(classID uuid.UUID, color string) error {
	err := w.prefs.SetClassColor(classID, color)
	w.emit(EventPrefs)
	return err
}

func (w *Workspace) addAssignment(a model.Assignment) {
	w.mu.Lock()
	w.assignments = append(w.assignments, a)
	w.mu.Unlock()
	w.emit(EventData)
}

func (w *Workspace) removeAssignment(id uuid.UUID) {
	w.mu.Lock()
	kept := w.assignments[:0]
	for _, a := range w.assignments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	w.assignments = kept
	w.mu.Unlock()
	w.emit(EventData)
}
