package data

import (
	"context"

	"classsync/internal/model"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

type StateRepository struct {
	db Querier
}

func NewStateRepository(db Querier) *StateRepository {
	return &StateRepository{db: db}
}

func (r *StateRepository) ListStates(ctx context.Context, userID uuid.UUID) ([]model.PersonalState, error) {
	query := `
SELECT user_id, assignment_id, is_completed, private_note, private_link
FROM user_assignment_states
WHERE user_id = $1`
	var states []model.PersonalState
	if err := pgxscan.Select(ctx, r.db, &states, query, userID); err != nil {
		return nil, handleError(err)
	}
	return states, nil
}

// UpsertState writes state unless a write with a newer sequence is already
// stored. It reports whether the row changed.
func (r *StateRepository) UpsertState(ctx context.Context, state *model.PersonalState, seq int64) (bool, error) {
	query := `
INSERT INTO user_assignment_states (user_id, assignment_id, is_completed, private_note, private_link, seq, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
ON CONFLICT (user_id, assignment_id) DO UPDATE
SET is_completed = EXCLUDED.is_completed,
    private_note = EXCLUDED.private_note,
    private_link = EXCLUDED.private_link,
    seq = EXCLUDED.seq,
    updated_at = now()
WHERE user_assignment_states.seq < EXCLUDED.seq`

	tag, err := r.db.Exec(ctx, query,
		state.UserID,
		state.AssignmentID,
		state.Completed,
		state.Note,
		state.Link,
		seq,
	)
	if err != nil {
		return false, handleError(err)
	}
	return tag.RowsAffected() > 0, nil
}
