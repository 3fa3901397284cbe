package model

import (
	"github.com/google/uuid"
)

type SignUpInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
}

type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateAssignmentInput is what a client submits; status and ownership are
// decided by the server.
type CreateAssignmentInput struct {
	Title      string     `json:"title" validate:"required,max=300"`
	ClassID    *uuid.UUID `json:"class_id"`
	DueDate    *Date      `json:"due_date"`
	DueTime    *TimeOfDay `json:"due_time"`
	IsPersonal bool       `json:"is_personal"`
}

type CreateClassInput struct {
	Name    string `json:"name" validate:"required,max=200"`
	Teacher string `json:"teacher" validate:"max=200"`
}

type SetStatusInput struct {
	Status ModerationStatus `json:"status" validate:"required,oneof=pending approved deleted"`
}

type SetEnrollmentInput struct {
	ClassIDs []uuid.UUID `json:"class_ids"`
}

type SetBannedInput struct {
	Banned bool `json:"banned"`
}

type SetModerationInput struct {
	Enabled bool `json:"enabled"`
}

// UpsertStateInput carries the full merged state plus the client sequence
// used for last-write-wins ordering.
type UpsertStateInput struct {
	Completed bool   `json:"is_completed"`
	Note      string `json:"private_note" validate:"max=10000"`
	Link      string `json:"private_link" validate:"max=2048"`
	Seq       int64  `json:"seq" validate:"gte=0"`
}

// RepositoryCreateAssignmentInput is the fully resolved row to insert.
type RepositoryCreateAssignmentInput struct {
	ID          uuid.UUID
	Title       string
	ClassID     *uuid.UUID
	DueDate     *Date
	DueTime     *TimeOfDay
	Status      ModerationStatus
	SuggestedBy string
	OwnerID     *uuid.UUID
	IsPersonal  bool
}

type RepositoryCreateClassInput struct {
	ID          uuid.UUID
	Name        string
	Teacher     string
	Status      ModerationStatus
	SuggestedBy string
	SubmitterID uuid.UUID
}

type RepositoryCreateAccountInput struct {
	ID           uuid.UUID
	Email        string
	PasswordHash []byte
	FullName     string
}

type Account struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash []byte    `db:"password_hash"`
}
