package handler

import (
	"context"

	"classsync/internal/model"

	"github.com/google/uuid"
)

type AuthService interface {
	SignUp(ctx context.Context, input *model.SignUpInput) (*model.Session, error)
	SignIn(ctx context.Context, input *model.SignInInput) (*model.Session, error)
}

type ProfileService interface {
	GetMe(ctx context.Context) (*model.Profile, error)
	ListProfiles(ctx context.Context) ([]model.Profile, error)
	SetEnrollment(ctx context.Context, input *model.SetEnrollmentInput) (*model.Profile, error)
	SetBanned(ctx context.Context, id uuid.UUID, input *model.SetBannedInput) (*model.Profile, error)
}

type ClassService interface {
	ListClasses(ctx context.Context) ([]model.ClassRecord, error)
	CreateClass(ctx context.Context, input *model.CreateClassInput) (*model.ClassRecord, error)
	SetClassStatus(ctx context.Context, id uuid.UUID, input *model.SetStatusInput) error
}

type AssignmentService interface {
	ListAssignments(ctx context.Context) ([]model.Assignment, error)
	CreateAssignment(ctx context.Context, input *model.CreateAssignmentInput) (*model.Assignment, error)
	SetAssignmentStatus(ctx context.Context, id uuid.UUID, input *model.SetStatusInput) error
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
}

type StateService interface {
	ListStates(ctx context.Context) ([]model.PersonalState, error)
	UpsertState(ctx context.Context, assignmentID uuid.UUID, input *model.UpsertStateInput) (bool, error)
}

type SettingsService interface {
	GetSettings(ctx context.Context) (*model.AppSettings, error)
	SetModeration(ctx context.Context, input *model.SetModerationInput) (*model.AppSettings, error)
}
