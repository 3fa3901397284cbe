package views_test

import (
	"testing"

	"classsync/internal/model"
	"classsync/internal/views"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func classTask(title string, class uuid.UUID, date string, status model.ModerationStatus) model.Assignment {
	a := model.Assignment{ID: uuid.New(), Title: title, ClassID: ptr(class), Status: status}
	if date != "" {
		d, _ := model.ParseDate(date)
		a.DueDate = &d
	}
	return a
}

func titles(list []model.Assignment) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Title)
	}
	return out
}

func TestBuild(t *testing.T) {
	me := uuid.New()
	other := uuid.New()
	math := uuid.New()
	art := uuid.New()

	late := classTask("late", math, "2024-06-20", model.StatusApproved)
	early := classTask("early", math, "2024-06-10", model.StatusApproved)
	undated := classTask("undated", math, "", model.StatusApproved)
	notEnrolled := classTask("art", art, "2024-06-01", model.StatusApproved)
	pending := classTask("pending", math, "2024-06-05", model.StatusPending)
	done := classTask("done", math, "2024-06-02", model.StatusApproved)
	mine := model.Assignment{ID: uuid.New(), Title: "mine", IsPersonal: true, OwnerID: ptr(me), Status: model.StatusApproved,
		DueDate: ptr(model.NewDate(2024, 6, 15))}
	theirs := model.Assignment{ID: uuid.New(), Title: "theirs", IsPersonal: true, OwnerID: ptr(other), Status: model.StatusApproved}

	in := views.Input{
		Assignments: []model.Assignment{late, undated, early, notEnrolled, pending, done, mine, theirs},
		Enrollment:  []uuid.UUID{math},
		States: map[uuid.UUID]model.PersonalState{
			done.ID:  {AssignmentID: done.ID, UserID: me, Completed: true},
			early.ID: {AssignmentID: early.ID, UserID: me, Note: "started"},
		},
		Caller: me,
	}

	t.Run("Student", func(t *testing.T) {
		got := views.Build(in)
		if diff := cmp.Diff([]string{"early", "mine", "late", "undated"}, titles(got.Active)); diff != "" {
			t.Errorf("active mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, []string{"done"}, titles(got.Completed))
		assert.Empty(t, got.PendingModeration)
		assert.Zero(t, got.PendingCount())
	})

	t.Run("AdminSeesPendingRegardlessOfEnrollment", func(t *testing.T) {
		admin := in
		admin.IsAdmin = true
		admin.Enrollment = nil
		got := views.Build(admin)
		assert.Equal(t, []string{"pending"}, titles(got.PendingModeration))
		assert.Equal(t, []string{"mine"}, titles(got.Active))
	})
}

func TestBuild_ActiveAndCompletedAreDisjoint(t *testing.T) {
	me := uuid.New()
	class := uuid.New()
	var all []model.Assignment
	states := map[uuid.UUID]model.PersonalState{}
	for i := 0; i < 20; i++ {
		a := classTask("t", class, "2024-07-01", model.StatusApproved)
		all = append(all, a)
		if i%3 == 0 {
			states[a.ID] = model.PersonalState{AssignmentID: a.ID, UserID: me, Completed: true}
		}
	}

	got := views.Build(views.Input{Assignments: all, Enrollment: []uuid.UUID{class}, States: states, Caller: me})
	seen := map[uuid.UUID]bool{}
	for _, a := range got.Active {
		seen[a.ID] = true
	}
	for _, a := range got.Completed {
		require.False(t, seen[a.ID], "assignment %s in both views", a.ID)
	}
	assert.Len(t, got.Active, 13)
	assert.Len(t, got.Completed, 7)
}

func TestBuild_Classes(t *testing.T) {
	classes := []model.ClassRecord{
		{ID: uuid.New(), Name: "Math", Status: model.StatusApproved},
		{ID: uuid.New(), Name: "Draft", Status: model.StatusPending},
	}

	got := views.Build(views.Input{Classes: classes})
	require.Len(t, got.ApprovedClasses, 1)
	assert.Empty(t, got.PendingClasses)

	got = views.Build(views.Input{Classes: classes, IsAdmin: true})
	require.Len(t, got.PendingClasses, 1)
	assert.Equal(t, "Draft", got.PendingClasses[0].Name)
	assert.Equal(t, 1, got.PendingCount())
}

func TestSortByDue(t *testing.T) {
	class := uuid.New()
	a := classTask("a", class, "2024-06-10", model.StatusApproved)
	a.DueTime = ptr(model.NewTimeOfDay(14, 0))
	b := classTask("b", class, "2024-06-10", model.StatusApproved)
	c := classTask("c", class, "2024-06-10", model.StatusApproved)
	c.DueTime = ptr(model.NewTimeOfDay(8, 30))
	none1 := classTask("none1", class, "", model.StatusApproved)
	none2 := classTask("none2", class, "", model.StatusApproved)
	d := classTask("d", class, "2023-12-31", model.StatusApproved)

	list := []model.Assignment{none1, a, b, none2, c, d}
	views.SortByDue(list)
	assert.Equal(t, []string{"d", "c", "a", "b", "none1", "none2"}, titles(list))
}
