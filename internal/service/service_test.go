package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"classsync/internal/auth"
	"classsync/internal/ctxdata"
	"classsync/internal/errdefs"
	"classsync/internal/events"
	"classsync/internal/model"
	"classsync/internal/service"
	"classsync/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type env struct {
	accounts    *mocks.MockAccountRepository
	profiles    *mocks.MockProfileRepository
	classes     *mocks.MockClassRepository
	assignments *mocks.MockAssignmentRepository
	states      *mocks.MockStateRepository
	settings    *mocks.MockSettingsRepository
	issuer      *mocks.MockTokenIssuer
	cache       *mocks.MockCache
	publisher   *mocks.MockPublisher

	authSvc       *service.AuthService
	profileSvc    *service.ProfileService
	classSvc      *service.ClassService
	assignmentSvc *service.AssignmentService
	stateSvc      *service.StateService
	settingsSvc   *service.SettingsService
}

func setup(t *testing.T) *env {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	e := &env{
		accounts:    mocks.NewMockAccountRepository(ctrl),
		profiles:    mocks.NewMockProfileRepository(ctrl),
		classes:     mocks.NewMockClassRepository(ctrl),
		assignments: mocks.NewMockAssignmentRepository(ctrl),
		states:      mocks.NewMockStateRepository(ctrl),
		settings:    mocks.NewMockSettingsRepository(ctrl),
		issuer:      mocks.NewMockTokenIssuer(ctrl),
		cache:       mocks.NewMockCache(ctrl),
		publisher:   mocks.NewMockPublisher(ctrl),
	}
	e.authSvc = service.NewAuthService(e.accounts, e.issuer)
	e.profileSvc = service.NewProfileService(e.profiles)
	e.classSvc = service.NewClassService(e.classes, e.profiles)
	e.settingsSvc = service.NewSettingsService(e.settings, e.profiles, e.cache, time.Minute)
	e.assignmentSvc = service.NewAssignmentService(e.assignments, e.profiles, e.settingsSvc, e.publisher)
	e.stateSvc = service.NewStateService(e.states, e.assignments, e.profiles)
	return e
}

func userCtx(userID uuid.UUID) context.Context {
	return ctxdata.WithUserID(context.Background(), userID)
}

// as registers the profile lookup for a caller and returns its context.
func (e *env) as(p *model.Profile) context.Context {
	e.profiles.EXPECT().GetProfile(gomock.Any(), p.ID).Return(p, nil)
	return userCtx(p.ID)
}

func student() *model.Profile {
	return &model.Profile{ID: uuid.New(), FullName: "Sam Student"}
}

func admin() *model.Profile {
	return &model.Profile{ID: uuid.New(), FullName: "Ada Admin", IsAdmin: true}
}

func banned() *model.Profile {
	return &model.Profile{ID: uuid.New(), FullName: "Ben Banned", IsBanned: true}
}

func moderation(t *testing.T, e *env, enabled bool) {
	data, err := json.Marshal(model.AppSettings{ModerationEnabled: enabled})
	require.NoError(t, err)
	e.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(data, true)
}

// ── Auth ────────────────────────────────────────────────────────────

func TestSignUp(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		e := setup(t)
		expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		var created *model.RepositoryCreateAccountInput

		e.accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *model.RepositoryCreateAccountInput) (*model.Profile, error) {
				created = in
				return &model.Profile{ID: in.ID, FullName: in.FullName}, nil
			})
		e.issuer.EXPECT().Issue(gomock.Any()).Return("token", expires, nil)

		session, err := e.authSvc.SignUp(context.Background(), &model.SignUpInput{
			Email: " Sam@Example.com ", Password: "secret1", FullName: "  Sam  ",
		})
		require.NoError(t, err)
		assert.Equal(t, "token", session.AccessToken)
		assert.Equal(t, created.ID, session.UserID)
		assert.Equal(t, "sam@example.com", created.Email)
		assert.Equal(t, "Sam", created.FullName)
		assert.NoError(t, auth.CheckPassword(created.PasswordHash, "secret1"))
	})

	t.Run("BlankName", func(t *testing.T) {
		e := setup(t)

		_, err := e.authSvc.SignUp(context.Background(), &model.SignUpInput{Email: "a@b.c", Password: "secret1", FullName: "  "})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		e := setup(t)
		e.accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil, errdefs.ErrAlreadyExists)

		_, err := e.authSvc.SignUp(context.Background(), &model.SignUpInput{Email: "a@b.c", Password: "secret1", FullName: "A"})
		assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	})
}

func TestSignIn(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	account := &model.Account{ID: uuid.New(), Email: "a@b.c", PasswordHash: hash}

	t.Run("Success", func(t *testing.T) {
		e := setup(t)
		e.accounts.EXPECT().GetAccountByEmail(gomock.Any(), "a@b.c").Return(account, nil)
		e.issuer.EXPECT().Issue(account.ID).Return("token", time.Now().Add(time.Hour), nil)

		session, err := e.authSvc.SignIn(context.Background(), &model.SignInInput{Email: "a@b.c", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, account.ID, session.UserID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		e := setup(t)
		e.accounts.EXPECT().GetAccountByEmail(gomock.Any(), "a@b.c").Return(account, nil)

		_, err := e.authSvc.SignIn(context.Background(), &model.SignInInput{Email: "a@b.c", Password: "nope"})
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		e := setup(t)
		e.accounts.EXPECT().GetAccountByEmail(gomock.Any(), "x@b.c").Return(nil, errdefs.ErrNotFound)

		_, err := e.authSvc.SignIn(context.Background(), &model.SignInInput{Email: "x@b.c", Password: "secret1"})
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)
	})
}

// ── Profiles ────────────────────────────────────────────────────────

func TestGetMe(t *testing.T) {
	t.Run("TouchesLastSeen", func(t *testing.T) {
		e := setup(t)
		me := student()
		ctx := e.as(me)
		e.profiles.EXPECT().TouchLastSeen(gomock.Any(), me.ID, gomock.Any()).Return(me, nil)

		got, err := e.profileSvc.GetMe(ctx)
		require.NoError(t, err)
		assert.Equal(t, me.ID, got.ID)
	})

	t.Run("NoUserIDInContext", func(t *testing.T) {
		e := setup(t)

		_, err := e.profileSvc.GetMe(context.Background())
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)
	})

	t.Run("ProfileGone", func(t *testing.T) {
		e := setup(t)
		id := uuid.New()
		e.profiles.EXPECT().GetProfile(gomock.Any(), id).Return(nil, errdefs.ErrNotFound)

		_, err := e.profileSvc.GetMe(userCtx(id))
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)
	})
}

func TestSetEnrollment(t *testing.T) {
	t.Run("DeduplicatesInOrder", func(t *testing.T) {
		e := setup(t)
		me := student()
		ctx := e.as(me)
		a, b := uuid.New(), uuid.New()
		e.profiles.EXPECT().SetEnrollment(gomock.Any(), me.ID, []uuid.UUID{a, b}).Return(me, nil)

		_, err := e.profileSvc.SetEnrollment(ctx, &model.SetEnrollmentInput{ClassIDs: []uuid.UUID{a, b, a}})
		require.NoError(t, err)
	})

	t.Run("Banned", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(banned())

		_, err := e.profileSvc.SetEnrollment(ctx, &model.SetEnrollmentInput{})
		assert.ErrorIs(t, err, errdefs.ErrBanned)
	})
}

func TestSetBanned(t *testing.T) {
	t.Run("Admin", func(t *testing.T) {
		e := setup(t)
		target := uuid.New()
		ctx := e.as(admin())
		e.profiles.EXPECT().SetBanned(gomock.Any(), target, true).Return(&model.Profile{ID: target, IsBanned: true}, nil)

		got, err := e.profileSvc.SetBanned(ctx, target, &model.SetBannedInput{Banned: true})
		require.NoError(t, err)
		assert.True(t, got.IsBanned)
	})

	t.Run("Self", func(t *testing.T) {
		e := setup(t)
		me := admin()
		ctx := e.as(me)

		_, err := e.profileSvc.SetBanned(ctx, me.ID, &model.SetBannedInput{Banned: true})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("NotAdmin", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(student())

		_, err := e.profileSvc.SetBanned(ctx, uuid.New(), &model.SetBannedInput{Banned: true})
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}

func TestListProfiles_NotAdmin(t *testing.T) {
	e := setup(t)
	ctx := e.as(student())

	_, err := e.profileSvc.ListProfiles(ctx)
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

// ── Classes ─────────────────────────────────────────────────────────

func TestListClasses(t *testing.T) {
	t.Run("Admin", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(admin())
		e.classes.EXPECT().ListClasses(gomock.Any()).Return([]model.ClassRecord{{Name: "Math"}}, nil)

		got, err := e.classSvc.ListClasses(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Student", func(t *testing.T) {
		e := setup(t)
		me := student()
		ctx := e.as(me)
		e.classes.EXPECT().ListVisibleClasses(gomock.Any(), me.ID).Return(nil, nil)

		_, err := e.classSvc.ListClasses(ctx)
		require.NoError(t, err)
	})
}

func TestCreateClass(t *testing.T) {
	cases := []struct {
		name   string
		caller *model.Profile
		want   model.ModerationStatus
	}{
		{"AdminApproved", admin(), model.StatusApproved},
		{"StudentPending", student(), model.StatusPending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := setup(t)
			ctx := e.as(tc.caller)
			e.classes.EXPECT().CreateClass(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, in *model.RepositoryCreateClassInput) (*model.ClassRecord, error) {
					assert.Equal(t, tc.want, in.Status)
					assert.Equal(t, "Physics", in.Name)
					assert.Equal(t, tc.caller.FullName, in.SuggestedBy)
					assert.Equal(t, tc.caller.ID, in.SubmitterID)
					return &model.ClassRecord{ID: in.ID, Status: in.Status}, nil
				})

			got, err := e.classSvc.CreateClass(ctx, &model.CreateClassInput{Name: " Physics "})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Status)
		})
	}

	t.Run("Banned", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(banned())

		_, err := e.classSvc.CreateClass(ctx, &model.CreateClassInput{Name: "Physics"})
		assert.ErrorIs(t, err, errdefs.ErrBanned)
	})
}

func TestSetClassStatus(t *testing.T) {
	t.Run("Approve", func(t *testing.T) {
		e := setup(t)
		id := uuid.New()
		ctx := e.as(admin())
		e.classes.EXPECT().SetClassStatus(gomock.Any(), id, model.StatusApproved).Return(nil)

		assert.NoError(t, e.classSvc.SetClassStatus(ctx, id, &model.SetStatusInput{Status: model.StatusApproved}))
	})

	t.Run("DeletedRemovesRow", func(t *testing.T) {
		e := setup(t)
		id := uuid.New()
		ctx := e.as(admin())
		e.classes.EXPECT().DeleteClass(gomock.Any(), id).Return(nil)

		assert.NoError(t, e.classSvc.SetClassStatus(ctx, id, &model.SetStatusInput{Status: model.StatusDeleted}))
	})

	t.Run("NotAdmin", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(student())

		err := e.classSvc.SetClassStatus(ctx, uuid.New(), &model.SetStatusInput{Status: model.StatusApproved})
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}

// ── Assignments ─────────────────────────────────────────────────────

func TestListAssignments_AdminSkipsOthersPersonalTasks(t *testing.T) {
	e := setup(t)
	me := admin()
	ctx := e.as(me)
	other := uuid.New()
	classID := uuid.New()
	list := []model.Assignment{
		{ID: uuid.New(), ClassID: &classID, Status: model.StatusPending, OwnerID: &other},
		{ID: uuid.New(), IsPersonal: true, OwnerID: &other},
		{ID: uuid.New(), IsPersonal: true, OwnerID: &me.ID},
	}
	e.assignments.EXPECT().ListAssignments(gomock.Any()).Return(list, nil)

	got, err := e.assignmentSvc.ListAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[0].IsPersonal)
	assert.True(t, got[1].OwnedBy(me.ID))
}

func TestCreateAssignment(t *testing.T) {
	classID := uuid.New()
	due := model.NewDate(2024, time.June, 10)

	expectCreate := func(e *env, want model.ModerationStatus) {
		e.assignments.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *model.RepositoryCreateAssignmentInput) (*model.Assignment, error) {
				assert.Equal(t, want, in.Status)
				return &model.Assignment{
					ID: in.ID, Title: in.Title, ClassID: in.ClassID, DueDate: in.DueDate,
					Status: in.Status, OwnerID: in.OwnerID, IsPersonal: in.IsPersonal,
				}, nil
			})
	}

	t.Run("StudentWithModerationIsPending", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(student())
		moderation(t, e, true)
		expectCreate(e, model.StatusPending)

		got, err := e.assignmentSvc.CreateAssignment(ctx, &model.CreateAssignmentInput{Title: "Essay", ClassID: &classID, DueDate: &due})
		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, got.Status)
	})

	t.Run("StudentWithoutModerationPublishes", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(student())
		moderation(t, e, false)
		expectCreate(e, model.StatusApproved)
		e.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev events.Event) error {
				assert.Equal(t, events.TypeAssignmentPublished, ev.Type)
				assert.Equal(t, "Essay", ev.Title)
				return nil
			})

		_, err := e.assignmentSvc.CreateAssignment(ctx, &model.CreateAssignmentInput{Title: "Essay", ClassID: &classID, DueDate: &due})
		require.NoError(t, err)
	})

	t.Run("AdminSkipsModeration", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(admin())
		expectCreate(e, model.StatusApproved)
		e.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		got, err := e.assignmentSvc.CreateAssignment(ctx, &model.CreateAssignmentInput{Title: "Essay", ClassID: &classID})
		require.NoError(t, err)
		assert.Equal(t, model.StatusApproved, got.Status)
	})

	t.Run("PersonalOwnedByCaller", func(t *testing.T) {
		e := setup(t)
		me := student()
		ctx := e.as(me)
		expectCreate(e, model.StatusApproved)

		got, err := e.assignmentSvc.CreateAssignment(ctx, &model.CreateAssignmentInput{Title: "Gym", IsPersonal: true})
		require.NoError(t, err)
		assert.True(t, got.OwnedBy(me.ID))
	})

	t.Run("Validation", func(t *testing.T) {
		at := model.NewTimeOfDay(9, 0)
		inputs := map[string]*model.CreateAssignmentInput{
			"BlankTitle":        {Title: " ", ClassID: &classID},
			"TimeWithoutDate":   {Title: "Essay", ClassID: &classID, DueTime: &at},
			"ClassWithoutClass": {Title: "Essay"},
			"PersonalWithClass": {Title: "Gym", IsPersonal: true, ClassID: &classID},
		}
		for name, in := range inputs {
			t.Run(name, func(t *testing.T) {
				e := setup(t)
				ctx := e.as(student())

				_, err := e.assignmentSvc.CreateAssignment(ctx, in)
				assert.ErrorIs(t, err, errdefs.ErrValidation)
			})
		}
	})

	t.Run("Banned", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(banned())

		_, err := e.assignmentSvc.CreateAssignment(ctx, &model.CreateAssignmentInput{Title: "Gym", IsPersonal: true})
		assert.ErrorIs(t, err, errdefs.ErrBanned)
	})
}

func TestSetAssignmentStatus(t *testing.T) {
	id := uuid.New()
	classID := uuid.New()
	pending := &model.Assignment{ID: id, ClassID: &classID, Status: model.StatusPending}

	t.Run("ApprovePublishes", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(admin())
		e.assignments.EXPECT().GetAssignment(gomock.Any(), id).Return(pending, nil)
		approved := *pending
		approved.Status = model.StatusApproved
		e.assignments.EXPECT().SetAssignmentStatus(gomock.Any(), id, model.StatusApproved).Return(&approved, nil)
		e.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, e.assignmentSvc.SetAssignmentStatus(ctx, id, &model.SetStatusInput{Status: model.StatusApproved}))
	})

	t.Run("DeletedRemovesRow", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(admin())
		e.assignments.EXPECT().GetAssignment(gomock.Any(), id).Return(pending, nil)
		e.assignments.EXPECT().DeleteAssignment(gomock.Any(), id).Return(nil)

		assert.NoError(t, e.assignmentSvc.SetAssignmentStatus(ctx, id, &model.SetStatusInput{Status: model.StatusDeleted}))
	})

	t.Run("PersonalTaskHidden", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(admin())
		e.assignments.EXPECT().GetAssignment(gomock.Any(), id).Return(&model.Assignment{ID: id, IsPersonal: true}, nil)

		err := e.assignmentSvc.SetAssignmentStatus(ctx, id, &model.SetStatusInput{Status: model.StatusApproved})
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}

func TestDeleteAssignment(t *testing.T) {
	t.Run("Owner", func(t *testing.T) {
		e := setup(t)
		me := student()
		ctx := e.as(me)
		id := uuid.New()
		e.assignments.EXPECT().GetAssignment(gomock.Any(), id).Return(&model.Assignment{ID: id, IsPersonal: true, OwnerID: &me.ID}, nil)
		e.assignments.EXPECT().DeleteAssignment(gomock.Any(), id).Return(nil)

		assert.NoError(t, e.assignmentSvc.DeleteAssignment(ctx, id))
	})

	t.Run("SomeoneElsesTask", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(admin())
		id, other := uuid.New(), uuid.New()
		e.assignments.EXPECT().GetAssignment(gomock.Any(), id).Return(&model.Assignment{ID: id, IsPersonal: true, OwnerID: &other}, nil)

		assert.ErrorIs(t, e.assignmentSvc.DeleteAssignment(ctx, id), errdefs.ErrNotFound)
	})

	t.Run("ClassAssignmentByStudent", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(student())
		id, classID := uuid.New(), uuid.New()
		e.assignments.EXPECT().GetAssignment(gomock.Any(), id).Return(&model.Assignment{ID: id, ClassID: &classID}, nil)

		assert.ErrorIs(t, e.assignmentSvc.DeleteAssignment(ctx, id), errdefs.ErrPermissionDenied)
	})
}

// ── States ──────────────────────────────────────────────────────────

func TestUpsertState(t *testing.T) {
	classID := uuid.New()

	t.Run("UsesCallerIdentity", func(t *testing.T) {
		e := setup(t)
		me := student()
		ctx := e.as(me)
		id := uuid.New()
		e.assignments.EXPECT().GetAssignment(gomock.Any(), id).Return(&model.Assignment{ID: id, ClassID: &classID}, nil)
		e.states.EXPECT().UpsertState(gomock.Any(), &model.PersonalState{
			UserID: me.ID, AssignmentID: id, Completed: true, Note: "ch. 4",
		}, int64(7)).Return(true, nil)

		applied, err := e.stateSvc.UpsertState(ctx, id, &model.UpsertStateInput{Completed: true, Note: "ch. 4", Seq: 7})
		require.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("StaleWriteDropped", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(student())
		id := uuid.New()
		e.assignments.EXPECT().GetAssignment(gomock.Any(), id).Return(&model.Assignment{ID: id, ClassID: &classID}, nil)
		e.states.EXPECT().UpsertState(gomock.Any(), gomock.Any(), int64(1)).Return(false, nil)

		applied, err := e.stateSvc.UpsertState(ctx, id, &model.UpsertStateInput{Seq: 1})
		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("MissingAssignment", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(student())
		id := uuid.New()
		e.assignments.EXPECT().GetAssignment(gomock.Any(), id).Return(nil, errdefs.ErrNotFound)

		_, err := e.stateSvc.UpsertState(ctx, id, &model.UpsertStateInput{})
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("OthersPersonalTask", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(student())
		id, other := uuid.New(), uuid.New()
		e.assignments.EXPECT().GetAssignment(gomock.Any(), id).Return(&model.Assignment{ID: id, IsPersonal: true, OwnerID: &other}, nil)

		_, err := e.stateSvc.UpsertState(ctx, id, &model.UpsertStateInput{})
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}

// ── Settings ────────────────────────────────────────────────────────

func TestGetSettings(t *testing.T) {
	t.Run("CacheMissFillsCache", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(student())
		e.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
		e.settings.EXPECT().GetSettings(gomock.Any()).Return(&model.AppSettings{ModerationEnabled: true}, nil)
		e.cache.EXPECT().Set(gomock.Any(), gomock.Any(), []byte(`{"moderation_enabled":true}`), time.Minute)

		got, err := e.settingsSvc.GetSettings(ctx)
		require.NoError(t, err)
		assert.True(t, got.ModerationEnabled)
	})

	t.Run("CacheHit", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(student())
		moderation(t, e, false)

		got, err := e.settingsSvc.GetSettings(ctx)
		require.NoError(t, err)
		assert.False(t, got.ModerationEnabled)
	})
}

func TestSetModeration(t *testing.T) {
	t.Run("InvalidatesCache", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(admin())
		e.settings.EXPECT().SetModeration(gomock.Any(), false).Return(&model.AppSettings{}, nil)
		e.cache.EXPECT().Delete(gomock.Any(), gomock.Any())

		_, err := e.settingsSvc.SetModeration(ctx, &model.SetModerationInput{Enabled: false})
		require.NoError(t, err)
	})

	t.Run("NotAdmin", func(t *testing.T) {
		e := setup(t)
		ctx := e.as(student())

		_, err := e.settingsSvc.SetModeration(ctx, &model.SetModerationInput{})
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}
