package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"classsync/internal/errdefs"
	"classsync/internal/events"
	"classsync/internal/logging"
	"classsync/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AssignmentService struct {
	callers
	assignments AssignmentRepository
	settings    *SettingsService
	publisher   Publisher
	now         func() time.Time
}

func NewAssignmentService(
	assignments AssignmentRepository,
	profiles ProfileRepository,
	settings *SettingsService,
	publisher Publisher,
) *AssignmentService {
	return &AssignmentService{
		callers:     callers{profiles: profiles},
		assignments: assignments,
		settings:    settings,
		publisher:   publisher,
		now:         time.Now,
	}
}

// ListAssignments never returns another user's personal tasks, not even to
// admins.
func (s *AssignmentService) ListAssignments(ctx context.Context) ([]model.Assignment, error) {
	profile, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if !profile.IsAdmin {
		return s.assignments.ListVisibleAssignments(ctx, profile.ID)
	}

	all, err := s.assignments.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, a := range all {
		if a.IsPersonal && !a.OwnedBy(profile.ID) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// CreateAssignment stores a class assignment or a personal task. Personal
// tasks are always approved and owned by the caller. Class assignments are
// approved when the caller is an admin or moderation is off, pending
// otherwise.
func (s *AssignmentService) CreateAssignment(ctx context.Context, input *model.CreateAssignmentInput) (*model.Assignment, error) {
	profile, err := s.writer(ctx)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" || (input.DueTime != nil && input.DueDate == nil) {
		return nil, errdefs.ErrValidation
	}
	if input.IsPersonal == (input.ClassID != nil) {
		return nil, errdefs.ErrValidation
	}

	status := model.StatusApproved
	if !input.IsPersonal && !profile.IsAdmin {
		settings, err := s.settings.load(ctx)
		if err != nil {
			return nil, err
		}
		if settings.ModerationEnabled {
			status = model.StatusPending
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	owner := profile.ID
	created, err := s.assignments.CreateAssignment(ctx, &model.RepositoryCreateAssignmentInput{
		ID:          id,
		Title:       title,
		ClassID:     input.ClassID,
		DueDate:     input.DueDate,
		DueTime:     input.DueTime,
		Status:      status,
		SuggestedBy: profile.FullName,
		OwnerID:     &owner,
		IsPersonal:  input.IsPersonal,
	})
	if err != nil {
		return nil, err
	}

	if !created.IsPersonal && created.Status == model.StatusApproved {
		s.announce(ctx, created)
	}
	return created, nil
}

// SetAssignmentStatus moderates a class assignment; StatusDeleted removes
// the row.
func (s *AssignmentService) SetAssignmentStatus(ctx context.Context, id uuid.UUID, input *model.SetStatusInput) error {
	if _, err := s.admin(ctx); err != nil {
		return err
	}
	if !input.Status.IsValid() {
		return errdefs.ErrValidation
	}

	current, err := s.assignments.GetAssignment(ctx, id)
	if err != nil {
		return err
	}
	if current.IsPersonal {
		return errdefs.ErrNotFound
	}

	if input.Status == model.StatusDeleted {
		return s.assignments.DeleteAssignment(ctx, id)
	}

	updated, err := s.assignments.SetAssignmentStatus(ctx, id, input.Status)
	if err != nil {
		return err
	}
	if current.Status != model.StatusApproved && updated.Status == model.StatusApproved {
		s.announce(ctx, updated)
	}
	return nil
}

// DeleteAssignment removes a personal task of the caller. Admins may also
// delete class assignments this way.
func (s *AssignmentService) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	profile, err := s.writer(ctx)
	if err != nil {
		return err
	}

	a, err := s.assignments.GetAssignment(ctx, id)
	if err != nil {
		return err
	}

	switch {
	case a.OwnedBy(profile.ID):
	case a.IsPersonal:
		return errdefs.ErrNotFound
	case !profile.IsAdmin:
		return errdefs.ErrPermissionDenied
	}
	return s.assignments.DeleteAssignment(ctx, id)
}

// announce publishes best-effort; the write already happened.
func (s *AssignmentService) announce(ctx context.Context, a *model.Assignment) {
	err := s.publisher.Publish(ctx, events.NewEvent(events.TypeAssignmentPublished, a, s.now()))
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	if logger, ok := logging.GetFromContext(ctx); ok {
		logger.Error(ctx, "Failed to publish assignment event",
			zap.String("assignment_id", a.ID.String()), zap.Error(err))
	}
}
