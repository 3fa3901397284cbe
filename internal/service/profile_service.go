package service

import (
	"context"
	"time"

	"classsync/internal/errdefs"
	"classsync/internal/model"

	"github.com/google/uuid"
)

type ProfileService struct {
	callers
	now func() time.Time
}

func NewProfileService(profiles ProfileRepository) *ProfileService {
	return &ProfileService{callers: callers{profiles: profiles}, now: time.Now}
}

// GetMe returns the caller's profile and records the visit.
func (s *ProfileService) GetMe(ctx context.Context) (*model.Profile, error) {
	profile, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return s.profiles.TouchLastSeen(ctx, profile.ID, s.now().UTC())
}

func (s *ProfileService) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	if _, err := s.admin(ctx); err != nil {
		return nil, err
	}
	return s.profiles.ListProfiles(ctx)
}

// SetEnrollment replaces the caller's enrolled classes. Duplicate ids are
// collapsed and order is kept.
func (s *ProfileService) SetEnrollment(ctx context.Context, input *model.SetEnrollmentInput) (*model.Profile, error) {
	profile, err := s.writer(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(input.ClassIDs))
	ids := make([]uuid.UUID, 0, len(input.ClassIDs))
	for _, id := range input.ClassIDs {
		if id == uuid.Nil {
			return nil, errdefs.ErrValidation
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return s.profiles.SetEnrollment(ctx, profile.ID, ids)
}

func (s *ProfileService) SetBanned(ctx context.Context, id uuid.UUID, input *model.SetBannedInput) (*model.Profile, error) {
	admin, err := s.admin(ctx)
	if err != nil {
		return nil, err
	}
	if admin.ID == id {
		return nil, errdefs.ErrValidation
	}
	return s.profiles.SetBanned(ctx, id, input.Banned)
}
