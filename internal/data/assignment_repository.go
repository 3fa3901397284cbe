package data

import (
	"context"

	"classsync/internal/errdefs"
	"classsync/internal/model"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

type AssignmentRepository struct {
	db Querier
}

func NewAssignmentRepository(db Querier) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) ListAssignments(ctx context.Context) ([]model.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments ORDER BY created_at, id`
	var rows []assignmentRow
	if err := pgxscan.Select(ctx, r.db, &rows, query); err != nil {
		return nil, handleError(err)
	}
	return toModels(rows), nil
}

// ListVisibleAssignments returns approved class assignments, the caller's
// own pending suggestions and the caller's personal tasks.
func (r *AssignmentRepository) ListVisibleAssignments(ctx context.Context, userID uuid.UUID) ([]model.Assignment, error) {
	query := `
SELECT ` + assignmentColumns + `
FROM assignments
WHERE (NOT is_personal AND (status = 'approved' OR owner_id = $1))
   OR (is_personal AND owner_id = $1)
ORDER BY created_at, id`
	var rows []assignmentRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, userID); err != nil {
		return nil, handleError(err)
	}
	return toModels(rows), nil
}

func (r *AssignmentRepository) GetAssignment(ctx context.Context, id uuid.UUID) (*model.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1`
	var row assignmentRow
	if err := pgxscan.Get(ctx, r.db, &row, query, id); err != nil {
		return nil, handleError(err)
	}
	a := row.toModel()
	return &a, nil
}

func (r *AssignmentRepository) CreateAssignment(ctx context.Context, input *model.RepositoryCreateAssignmentInput) (*model.Assignment, error) {
	query := `
INSERT INTO assignments (id, title, class_id, due_date, due_time, status, suggested_by, owner_id, is_personal)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + assignmentColumns

	var row assignmentRow
	err := pgxscan.Get(ctx, r.db, &row, query,
		input.ID,
		input.Title,
		input.ClassID,
		toPgDate(input.DueDate),
		toPgTime(input.DueTime),
		input.Status,
		input.SuggestedBy,
		input.OwnerID,
		input.IsPersonal,
	)
	if err != nil {
		return nil, handleError(err)
	}
	a := row.toModel()
	return &a, nil
}

func (r *AssignmentRepository) SetAssignmentStatus(ctx context.Context, id uuid.UUID, status model.ModerationStatus) (*model.Assignment, error) {
	query := `UPDATE assignments SET status = $1 WHERE id = $2 RETURNING ` + assignmentColumns
	var row assignmentRow
	if err := pgxscan.Get(ctx, r.db, &row, query, status, id); err != nil {
		return nil, handleError(err)
	}
	a := row.toModel()
	return &a, nil
}

func (r *AssignmentRepository) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

// ListDueBetween returns approved class assignments due on a day in [from, to].
func (r *AssignmentRepository) ListDueBetween(ctx context.Context, from, to model.Date) ([]model.Assignment, error) {
	query := `
SELECT ` + assignmentColumns + `
FROM assignments
WHERE status = 'approved' AND NOT is_personal AND due_date BETWEEN $1 AND $2
ORDER BY due_date, due_time NULLS LAST, id`
	var rows []assignmentRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, toPgDate(&from), toPgDate(&to)); err != nil {
		return nil, handleError(err)
	}
	return toModels(rows), nil
}
