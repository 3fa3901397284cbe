package data

import (
	"context"
	"testing"
	"time"

	"classsync/internal/errdefs"
	"classsync/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	profileCols    = []string{"id", "full_name", "is_admin", "is_banned", "enrolled_classes", "last_seen"}
	classCols      = []string{"id", "name", "teacher", "status", "suggested_by", "submitter_id", "created_at"}
	assignmentCols = []string{"id", "title", "class_id", "due_date", "due_time", "status", "suggested_by", "owner_id", "is_personal", "created_at"}
)

type AnyTime struct{}

func (a AnyTime) Match(v interface{}) bool {
	_, ok := v.(time.Time)
	return ok
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mockPool.ExpectationsWereMet())
		mockPool.Close()
	})
	return mockPool
}

// ── accounts ────────────────────────────────────────────────────────

func TestAccountRepository_CreateAccount(t *testing.T) {
	mockPool := newMock(t)
	repo := NewAccountRepository(mockPool)
	id := uuid.New()
	hash := []byte("hash")

	mockPool.ExpectQuery("WITH account AS").
		WithArgs(id, "ada@example.com", hash, "Ada").
		WillReturnRows(pgxmock.NewRows(profileCols).
			AddRow(id, "Ada", true, false, []uuid.UUID{}, (*time.Time)(nil)))

	profile, err := repo.CreateAccount(context.Background(), &model.RepositoryCreateAccountInput{
		ID: id, Email: "ada@example.com", PasswordHash: hash, FullName: "Ada",
	})
	require.NoError(t, err)
	assert.Equal(t, id, profile.ID)
	assert.True(t, profile.IsAdmin)
	assert.Nil(t, profile.LastSeen)
}

func TestAccountRepository_CreateAccount_Duplicate(t *testing.T) {
	mockPool := newMock(t)
	repo := NewAccountRepository(mockPool)

	mockPool.ExpectQuery("WITH account AS").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.CreateAccount(context.Background(), &model.RepositoryCreateAccountInput{ID: uuid.New()})
	assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
}

func TestAccountRepository_GetAccountByEmail_NotFound(t *testing.T) {
	mockPool := newMock(t)
	repo := NewAccountRepository(mockPool)

	mockPool.ExpectQuery("SELECT id, email, password_hash FROM accounts").
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetAccountByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

// ── profiles ────────────────────────────────────────────────────────

func TestProfileRepository_TouchLastSeen(t *testing.T) {
	mockPool := newMock(t)
	repo := NewProfileRepository(mockPool)
	id := uuid.New()
	classID := uuid.New()
	now := time.Now()

	mockPool.ExpectQuery("UPDATE profiles SET last_seen").
		WithArgs(AnyTime{}, id).
		WillReturnRows(pgxmock.NewRows(profileCols).
			AddRow(id, "Ada", false, false, []uuid.UUID{classID}, &now))

	profile, err := repo.TouchLastSeen(context.Background(), id, now)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{classID}, profile.EnrolledClasses)
	require.NotNil(t, profile.LastSeen)
	assert.True(t, now.Equal(*profile.LastSeen))
}

func TestProfileRepository_SetEnrollment_NilBecomesEmpty(t *testing.T) {
	mockPool := newMock(t)
	repo := NewProfileRepository(mockPool)
	id := uuid.New()

	mockPool.ExpectQuery("UPDATE profiles SET enrolled_classes").
		WithArgs([]uuid.UUID{}, id).
		WillReturnRows(pgxmock.NewRows(profileCols).
			AddRow(id, "Ada", false, false, []uuid.UUID{}, (*time.Time)(nil)))

	profile, err := repo.SetEnrollment(context.Background(), id, nil)
	require.NoError(t, err)
	assert.Empty(t, profile.EnrolledClasses)
}

func TestProfileRepository_SetBanned_NotFound(t *testing.T) {
	mockPool := newMock(t)
	repo := NewProfileRepository(mockPool)
	id := uuid.New()

	mockPool.ExpectQuery("UPDATE profiles SET is_banned").
		WithArgs(true, id).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.SetBanned(context.Background(), id, true)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

// ── classes ─────────────────────────────────────────────────────────

func TestClassRepository_ListVisibleClasses(t *testing.T) {
	mockPool := newMock(t)
	repo := NewClassRepository(mockPool)
	userID := uuid.New()
	now := time.Now()

	mockPool.ExpectQuery("SELECT .* FROM classes WHERE status = 'approved' OR submitter_id = \\$1").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(classCols).
			AddRow(uuid.New(), "Biology", "Dr. Kim", model.StatusApproved, "", (*uuid.UUID)(nil), now).
			AddRow(uuid.New(), "Chemistry", "", model.StatusPending, "Ada", &userID, now))

	classes, err := repo.ListVisibleClasses(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "Biology", classes[0].Name)
	assert.Equal(t, model.StatusPending, classes[1].Status)
	require.NotNil(t, classes[1].SubmitterID)
	assert.Equal(t, userID, *classes[1].SubmitterID)
}

func TestClassRepository_SetClassStatus(t *testing.T) {
	mockPool := newMock(t)
	repo := NewClassRepository(mockPool)
	id := uuid.New()

	mockPool.ExpectExec("UPDATE classes SET status").
		WithArgs(model.StatusApproved, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mockPool.ExpectExec("UPDATE classes SET status").
		WithArgs(model.StatusApproved, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.SetClassStatus(context.Background(), id, model.StatusApproved))
	assert.ErrorIs(t, repo.SetClassStatus(context.Background(), id, model.StatusApproved), errdefs.ErrNotFound)
}

func TestClassRepository_DeleteClass(t *testing.T) {
	mockPool := newMock(t)
	repo := NewClassRepository(mockPool)
	id := uuid.New()

	mockPool.ExpectExec("DELETE FROM classes").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.DeleteClass(context.Background(), id))
}

// ── assignments ─────────────────────────────────────────────────────

func TestAssignmentRepository_CreateAssignment(t *testing.T) {
	mockPool := newMock(t)
	repo := NewAssignmentRepository(mockPool)
	id, classID, ownerID := uuid.New(), uuid.New(), uuid.New()
	due := model.NewDate(2024, time.June, 10)
	at := model.NewTimeOfDay(14, 30)
	pgDate := pgtype.Date{Time: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), Valid: true}
	pgTime := pgtype.Time{Microseconds: (14*60 + 30) * 60 * 1_000_000, Valid: true}

	mockPool.ExpectQuery("INSERT INTO assignments").
		WithArgs(id, "Lab report", &classID, pgDate, pgTime, model.StatusPending, "Ada", &ownerID, false).
		WillReturnRows(pgxmock.NewRows(assignmentCols).
			AddRow(id, "Lab report", &classID, pgDate, pgTime, model.StatusPending, "Ada", &ownerID, false, time.Now()))

	a, err := repo.CreateAssignment(context.Background(), &model.RepositoryCreateAssignmentInput{
		ID:          id,
		Title:       "Lab report",
		ClassID:     &classID,
		DueDate:     &due,
		DueTime:     &at,
		Status:      model.StatusPending,
		SuggestedBy: "Ada",
		OwnerID:     &ownerID,
	})
	require.NoError(t, err)
	require.NotNil(t, a.DueDate)
	require.NotNil(t, a.DueTime)
	assert.Equal(t, due, *a.DueDate)
	assert.Equal(t, at, *a.DueTime)
	assert.Equal(t, model.StorageRemote, a.Storage)
}

func TestAssignmentRepository_CreateAssignment_UnknownClass(t *testing.T) {
	mockPool := newMock(t)
	repo := NewAssignmentRepository(mockPool)

	mockPool.ExpectQuery("INSERT INTO assignments").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	classID := uuid.New()
	_, err := repo.CreateAssignment(context.Background(), &model.RepositoryCreateAssignmentInput{ID: uuid.New(), ClassID: &classID})
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestAssignmentRepository_ListVisibleAssignments_NoDate(t *testing.T) {
	mockPool := newMock(t)
	repo := NewAssignmentRepository(mockPool)
	userID := uuid.New()

	mockPool.ExpectQuery("FROM assignments").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(assignmentCols).
			AddRow(uuid.New(), "Read", (*uuid.UUID)(nil), pgtype.Date{}, pgtype.Time{}, model.StatusApproved, "", &userID, true, time.Now()))

	list, err := repo.ListVisibleAssignments(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].DueDate)
	assert.Nil(t, list[0].DueTime)
	assert.True(t, list[0].OwnedBy(userID))
}

func TestAssignmentRepository_DeleteAssignment_NotFound(t *testing.T) {
	mockPool := newMock(t)
	repo := NewAssignmentRepository(mockPool)
	id := uuid.New()

	mockPool.ExpectExec("DELETE FROM assignments").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.DeleteAssignment(context.Background(), id), errdefs.ErrNotFound)
}

func TestAssignmentRepository_ListDueBetween(t *testing.T) {
	mockPool := newMock(t)
	repo := NewAssignmentRepository(mockPool)
	from := model.NewDate(2024, time.June, 9)
	to := model.NewDate(2024, time.June, 10)

	mockPool.ExpectQuery("due_date BETWEEN").
		WithArgs(toPgDate(&from), toPgDate(&to)).
		WillReturnRows(pgxmock.NewRows(assignmentCols))

	list, err := repo.ListDueBetween(context.Background(), from, to)
	require.NoError(t, err)
	assert.Empty(t, list)
}

// ── states ──────────────────────────────────────────────────────────

func TestStateRepository_UpsertState(t *testing.T) {
	mockPool := newMock(t)
	repo := NewStateRepository(mockPool)
	state := &model.PersonalState{UserID: uuid.New(), AssignmentID: uuid.New(), Completed: true, Note: "n"}

	mockPool.ExpectExec("INSERT INTO user_assignment_states").
		WithArgs(state.UserID, state.AssignmentID, true, "n", "", int64(7)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mockPool.ExpectExec("INSERT INTO user_assignment_states").
		WithArgs(state.UserID, state.AssignmentID, true, "n", "", int64(3)).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	applied, err := repo.UpsertState(context.Background(), state, 7)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.UpsertState(context.Background(), state, 3)
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestStateRepository_UpsertState_MissingAssignment(t *testing.T) {
	mockPool := newMock(t)
	repo := NewStateRepository(mockPool)

	mockPool.ExpectExec("INSERT INTO user_assignment_states").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := repo.UpsertState(context.Background(), &model.PersonalState{}, 1)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestStateRepository_ListStates(t *testing.T) {
	mockPool := newMock(t)
	repo := NewStateRepository(mockPool)
	userID, assignmentID := uuid.New(), uuid.New()

	mockPool.ExpectQuery("FROM user_assignment_states").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "assignment_id", "is_completed", "private_note", "private_link"}).
			AddRow(userID, assignmentID, true, "", "https://example.com"))

	states, err := repo.ListStates(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, model.PersonalState{UserID: userID, AssignmentID: assignmentID, Completed: true, Link: "https://example.com"}, states[0])
}

// ── settings ────────────────────────────────────────────────────────

func TestSettingsRepository(t *testing.T) {
	mockPool := newMock(t)
	repo := NewSettingsRepository(mockPool)

	mockPool.ExpectQuery("SELECT moderation_enabled FROM app_settings").
		WillReturnRows(pgxmock.NewRows([]string{"moderation_enabled"}).AddRow(true))
	mockPool.ExpectQuery("INSERT INTO app_settings").
		WithArgs(false).
		WillReturnRows(pgxmock.NewRows([]string{"moderation_enabled"}).AddRow(false))

	s, err := repo.GetSettings(context.Background())
	require.NoError(t, err)
	assert.True(t, s.ModerationEnabled)

	s, err = repo.SetModeration(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, s.ModerationEnabled)
}

// ── conversions ─────────────────────────────────────────────────────

func TestDateTimeConversions(t *testing.T) {
	d := model.NewDate(2024, time.February, 29)
	assert.Equal(t, &d, fromPgDate(toPgDate(&d)))
	assert.Nil(t, fromPgDate(toPgDate(nil)))
	assert.Nil(t, fromPgDate(pgtype.Date{Valid: true, InfinityModifier: pgtype.Infinity}))

	tod := model.EndOfDay
	assert.Equal(t, &tod, fromPgTime(toPgTime(&tod)))
	assert.Nil(t, fromPgTime(toPgTime(nil)))
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"NoRows", pgx.ErrNoRows, errdefs.ErrNotFound},
		{"Unique", &pgconn.PgError{Code: "23505"}, errdefs.ErrAlreadyExists},
		{"ForeignKey", &pgconn.PgError{Code: "23503"}, errdefs.ErrNotFound},
		{"Check", &pgconn.PgError{Code: "23514", ConstraintName: "assignments_check"}, errdefs.ErrValidation},
		{"Timeout", context.DeadlineExceeded, errdefs.ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, handleError(tt.err), tt.want)
		})
	}

	err := handleError(&pgconn.PgError{Code: "42P01"})
	assert.Contains(t, err.Error(), "repository error")
}
