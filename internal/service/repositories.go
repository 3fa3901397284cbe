//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mocks.go -package=mocks

package service

import (
	"context"
	"time"

	"classsync/internal/events"
	"classsync/internal/model"

	"github.com/google/uuid"
)

type AccountRepository interface {
	CreateAccount(ctx context.Context, input *model.RepositoryCreateAccountInput) (*model.Profile, error)
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	TouchLastSeen(ctx context.Context, id uuid.UUID, at time.Time) (*model.Profile, error)
	ListProfiles(ctx context.Context) ([]model.Profile, error)
	SetEnrollment(ctx context.Context, id uuid.UUID, classIDs []uuid.UUID) (*model.Profile, error)
	SetBanned(ctx context.Context, id uuid.UUID, banned bool) (*model.Profile, error)
}

type ClassRepository interface {
	ListClasses(ctx context.Context) ([]model.ClassRecord, error)
	ListVisibleClasses(ctx context.Context, userID uuid.UUID) ([]model.ClassRecord, error)
	CreateClass(ctx context.Context, input *model.RepositoryCreateClassInput) (*model.ClassRecord, error)
	SetClassStatus(ctx context.Context, id uuid.UUID, status model.ModerationStatus) error
	DeleteClass(ctx context.Context, id uuid.UUID) error
}

type AssignmentRepository interface {
	ListAssignments(ctx context.Context) ([]model.Assignment, error)
	ListVisibleAssignments(ctx context.Context, userID uuid.UUID) ([]model.Assignment, error)
	GetAssignment(ctx context.Context, id uuid.UUID) (*model.Assignment, error)
	CreateAssignment(ctx context.Context, input *model.RepositoryCreateAssignmentInput) (*model.Assignment, error)
	SetAssignmentStatus(ctx context.Context, id uuid.UUID, status model.ModerationStatus) (*model.Assignment, error)
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
}

type StateRepository interface {
	ListStates(ctx context.Context, userID uuid.UUID) ([]model.PersonalState, error)
	// UpsertState reports false when a write with a newer seq already exists.
	UpsertState(ctx context.Context, state *model.PersonalState, seq int64) (bool, error)
}

type SettingsRepository interface {
	GetSettings(ctx context.Context) (*model.AppSettings, error)
	SetModeration(ctx context.Context, enabled bool) (*model.AppSettings, error)
}

type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, time.Time, error)
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

type Publisher interface {
	Publish(ctx context.Context, event events.Event) error
}
