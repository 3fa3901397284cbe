//go:generate mockgen -source=backend.go -destination=mocks/backend_mocks.go -package=mocks

package workspace

import (
	"context"

	"classsync/internal/model"

	"github.com/google/uuid"
)

// Backend is the hosted collaborator. Every call is authorized with the
// token last passed to SetAccessToken.
type Backend interface {
	SetAccessToken(token string)

	SignIn(ctx context.Context, input *model.SignInInput) (*model.Session, error)
	SignUp(ctx context.Context, input *model.SignUpInput) (*model.Session, error)

	GetMe(ctx context.Context) (*model.Profile, error)
	ListProfiles(ctx context.Context) ([]model.Profile, error)
	SetEnrollment(ctx context.Context, classIDs []uuid.UUID) (*model.Profile, error)
	SetBanned(ctx context.Context, profileID uuid.UUID, banned bool) (*model.Profile, error)

	ListClasses(ctx context.Context) ([]model.ClassRecord, error)
	CreateClass(ctx context.Context, input *model.CreateClassInput) (*model.ClassRecord, error)
	SetClassStatus(ctx context.Context, id uuid.UUID, status model.ModerationStatus) error

	ListAssignments(ctx context.Context) ([]model.Assignment, error)
	InsertAssignment(ctx context.Context, input *model.CreateAssignmentInput) (*model.Assignment, error)
	SetAssignmentStatus(ctx context.Context, id uuid.UUID, status model.ModerationStatus) error
	DeleteAssignment(ctx context.Context, id uuid.UUID) error

	ListStates(ctx context.Context) ([]model.PersonalState, error)
	UpsertState(ctx context.Context, state model.PersonalState, seq int64) error

	GetSettings(ctx context.Context) (*model.AppSettings, error)
	SetModeration(ctx context.Context, enabled bool) (*model.AppSettings, error)
}
