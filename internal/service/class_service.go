package service

import (
	"context"
	"strings"

	"classsync/internal/errdefs"
	"classsync/internal/model"

	"github.com/google/uuid"
)

type ClassService struct {
	callers
	classes ClassRepository
}

func NewClassService(classes ClassRepository, profiles ProfileRepository) *ClassService {
	return &ClassService{callers: callers{profiles: profiles}, classes: classes}
}

// ListClasses returns every class to admins and approved classes plus the
// caller's own suggestions to everyone else.
func (s *ClassService) ListClasses(ctx context.Context) ([]model.ClassRecord, error) {
	profile, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if profile.IsAdmin {
		return s.classes.ListClasses(ctx)
	}
	return s.classes.ListVisibleClasses(ctx, profile.ID)
}

func (s *ClassService) CreateClass(ctx context.Context, input *model.CreateClassInput) (*model.ClassRecord, error) {
	profile, err := s.writer(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errdefs.ErrValidation
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	status := model.StatusPending
	if profile.IsAdmin {
		status = model.StatusApproved
	}

	return s.classes.CreateClass(ctx, &model.RepositoryCreateClassInput{
		ID:          id,
		Name:        name,
		Teacher:     strings.TrimSpace(input.Teacher),
		Status:      status,
		SuggestedBy: profile.FullName,
		SubmitterID: profile.ID,
	})
}

// SetClassStatus moderates a class; StatusDeleted removes the row.
func (s *ClassService) SetClassStatus(ctx context.Context, id uuid.UUID, input *model.SetStatusInput) error {
	if _, err := s.admin(ctx); err != nil {
		return err
	}
	if !input.Status.IsValid() {
		return errdefs.ErrValidation
	}
	if input.Status == model.StatusDeleted {
		return s.classes.DeleteClass(ctx, id)
	}
	return s.classes.SetClassStatus(ctx, id, input.Status)
}
