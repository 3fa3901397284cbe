package model

import (
	"time"

	"github.com/google/uuid"
)

type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusDeleted  ModerationStatus = "deleted"
)

func (s ModerationStatus) String() string {
	return string(s)
}

func (s ModerationStatus) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusDeleted
}

// StorageLocation tells where a personal task lives.
type StorageLocation string

const (
	StorageRemote StorageLocation = "remote"
	StorageDevice StorageLocation = "device"
)

// Assignment is a class assignment or a personal task. OwnerID is the
// profile that submitted it; for personal tasks it is also the only reader.
type Assignment struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	ClassID     *uuid.UUID       `json:"class_id"`
	DueDate     *Date            `json:"due_date"`
	DueTime     *TimeOfDay       `json:"due_time"`
	Status      ModerationStatus `json:"status"`
	SuggestedBy string           `json:"suggested_by"`
	OwnerID     *uuid.UUID       `json:"owner_id"`
	IsPersonal  bool             `json:"is_personal"`
	Storage     StorageLocation  `json:"storage"`
	CreatedAt   time.Time        `json:"created_at"`
}

// OwnedBy reports whether a is a personal task of userID.
func (a *Assignment) OwnedBy(userID uuid.UUID) bool {
	return a.IsPersonal && a.OwnerID != nil && *a.OwnerID == userID
}

type ClassRecord struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	Name        string           `json:"name" db:"name"`
	Teacher     string           `json:"teacher" db:"teacher"`
	Status      ModerationStatus `json:"status" db:"status"`
	SuggestedBy string           `json:"suggested_by" db:"suggested_by"`
	SubmitterID *uuid.UUID       `json:"submitter_id" db:"submitter_id"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
}

type PersonalState struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	AssignmentID uuid.UUID `json:"assignment_id" db:"assignment_id"`
	Completed    bool      `json:"is_completed" db:"is_completed"`
	Note         string    `json:"private_note" db:"private_note"`
	Link         string    `json:"private_link" db:"private_link"`
}

// StateUpdate is a partial PersonalState; nil fields are left untouched.
type StateUpdate struct {
	Completed *bool   `json:"is_completed,omitempty"`
	Note      *string `json:"private_note,omitempty"`
	Link      *string `json:"private_link,omitempty"`
}

func (u StateUpdate) IsEmpty() bool {
	return u.Completed == nil && u.Note == nil && u.Link == nil
}

// Merge returns old with the fields present in u replaced.
func (u StateUpdate) Merge(old PersonalState) PersonalState {
	if u.Completed != nil {
		old.Completed = *u.Completed
	}
	if u.Note != nil {
		old.Note = *u.Note
	}
	if u.Link != nil {
		old.Link = *u.Link
	}
	return old
}

type Profile struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	FullName        string      `json:"full_name" db:"full_name"`
	IsAdmin         bool        `json:"is_admin" db:"is_admin"`
	IsBanned        bool        `json:"is_banned" db:"is_banned"`
	EnrolledClasses []uuid.UUID `json:"enrolled_classes" db:"enrolled_classes"`
	LastSeen        *time.Time  `json:"last_seen" db:"last_seen"`
}

func (p *Profile) IsEnrolled(classID uuid.UUID) bool {
	for _, id := range p.EnrolledClasses {
		if id == classID {
			return true
		}
	}
	return false
}

type AppSettings struct {
	ModerationEnabled bool `json:"moderation_enabled" db:"moderation_enabled"`
}

type Session struct {
	AccessToken string    `json:"access_token"`
	UserID      uuid.UUID `json:"user_id"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
