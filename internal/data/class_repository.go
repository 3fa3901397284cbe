package data

import (
	"context"

	"classsync/internal/errdefs"
	"classsync/internal/model"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

const classColumns = `id, name, teacher, status, suggested_by, submitter_id, created_at`

type ClassRepository struct {
	db Querier
}

func NewClassRepository(db Querier) *ClassRepository {
	return &ClassRepository{db: db}
}

func (r *ClassRepository) ListClasses(ctx context.Context) ([]model.ClassRecord, error) {
	query := `SELECT ` + classColumns + ` FROM classes ORDER BY name, id`
	var classes []model.ClassRecord
	if err := pgxscan.Select(ctx, r.db, &classes, query); err != nil {
		return nil, handleError(err)
	}
	return classes, nil
}

// ListVisibleClasses returns approved classes plus the caller's own suggestions.
func (r *ClassRepository) ListVisibleClasses(ctx context.Context, userID uuid.UUID) ([]model.ClassRecord, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE status = 'approved' OR submitter_id = $1 ORDER BY name, id`
	var classes []model.ClassRecord
	if err := pgxscan.Select(ctx, r.db, &classes, query, userID); err != nil {
		return nil, handleError(err)
	}
	return classes, nil
}

func (r *ClassRepository) CreateClass(ctx context.Context, input *model.RepositoryCreateClassInput) (*model.ClassRecord, error) {
	query := `
INSERT INTO classes (id, name, teacher, status, suggested_by, submitter_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + classColumns

	class := &model.ClassRecord{}
	err := pgxscan.Get(ctx, r.db, class, query,
		input.ID,
		input.Name,
		input.Teacher,
		input.Status,
		input.SuggestedBy,
		input.SubmitterID,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return class, nil
}

func (r *ClassRepository) SetClassStatus(ctx context.Context, id uuid.UUID, status model.ModerationStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE classes SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

func (r *ClassRepository) DeleteClass(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}
