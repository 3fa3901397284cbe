package service

import (
	"context"

	"classsync/internal/errdefs"
	"classsync/internal/logging"
	"classsync/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StateService struct {
	callers
	states      StateRepository
	assignments AssignmentRepository
}

func NewStateService(states StateRepository, assignments AssignmentRepository, profiles ProfileRepository) *StateService {
	return &StateService{callers: callers{profiles: profiles}, states: states, assignments: assignments}
}

func (s *StateService) ListStates(ctx context.Context) ([]model.PersonalState, error) {
	profile, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return s.states.ListStates(ctx, profile.ID)
}

// UpsertState stores the caller's state for one assignment. The owner is
// always the authenticated caller. A write carrying an older seq than the
// stored one is dropped and reported as applied=false.
func (s *StateService) UpsertState(ctx context.Context, assignmentID uuid.UUID, input *model.UpsertStateInput) (bool, error) {
	profile, err := s.writer(ctx)
	if err != nil {
		return false, err
	}

	a, err := s.assignments.GetAssignment(ctx, assignmentID)
	if err != nil {
		return false, err
	}
	if a.IsPersonal && !a.OwnedBy(profile.ID) {
		return false, errdefs.ErrNotFound
	}

	state := &model.PersonalState{
		UserID:       profile.ID,
		AssignmentID: assignmentID,
		Completed:    input.Completed,
		Note:         input.Note,
		Link:         input.Link,
	}
	applied, err := s.states.UpsertState(ctx, state, input.Seq)
	if err != nil {
		return false, err
	}
	if !applied {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Debug(ctx, "Dropped stale state write",
				zap.String("assignment_id", assignmentID.String()), zap.Int64("seq", input.Seq))
		}
	}
	return applied, nil
}
