package data

import (
	"context"
	"time"

	"classsync/internal/model"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

type ProfileRepository struct {
	db Querier
}

func NewProfileRepository(db Querier) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetProfile(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	profile := &model.Profile{}
	if err := pgxscan.Get(ctx, r.db, profile, query, id); err != nil {
		return nil, handleError(err)
	}
	return profile, nil
}

// TouchLastSeen records activity and returns the updated profile.
func (r *ProfileRepository) TouchLastSeen(ctx context.Context, id uuid.UUID, at time.Time) (*model.Profile, error) {
	query := `UPDATE profiles SET last_seen = $1 WHERE id = $2 RETURNING ` + profileColumns
	profile := &model.Profile{}
	if err := pgxscan.Get(ctx, r.db, profile, query, at, id); err != nil {
		return nil, handleError(err)
	}
	return profile, nil
}

func (r *ProfileRepository) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY full_name, id`
	var profiles []model.Profile
	if err := pgxscan.Select(ctx, r.db, &profiles, query); err != nil {
		return nil, handleError(err)
	}
	return profiles, nil
}

func (r *ProfileRepository) SetEnrollment(ctx context.Context, id uuid.UUID, classIDs []uuid.UUID) (*model.Profile, error) {
	if classIDs == nil {
		classIDs = []uuid.UUID{}
	}
	query := `UPDATE profiles SET enrolled_classes = $1 WHERE id = $2 RETURNING ` + profileColumns
	profile := &model.Profile{}
	if err := pgxscan.Get(ctx, r.db, profile, query, classIDs, id); err != nil {
		return nil, handleError(err)
	}
	return profile, nil
}

func (r *ProfileRepository) SetBanned(ctx context.Context, id uuid.UUID, banned bool) (*model.Profile, error) {
	query := `UPDATE profiles SET is_banned = $1 WHERE id = $2 RETURNING ` + profileColumns
	profile := &model.Profile{}
	if err := pgxscan.Get(ctx, r.db, profile, query, banned, id); err != nil {
		return nil, handleError(err)
	}
	return profile, nil
}
