// Package views derives the dashboard lists from the raw collections.
package views

import (
	"sort"

	"classsync/internal/model"

	"github.com/google/uuid"
)

type Input struct {
	Assignments []model.Assignment
	Classes     []model.ClassRecord
	Enrollment  []uuid.UUID
	States      map[uuid.UUID]model.PersonalState
	Caller      uuid.UUID
	IsAdmin     bool
}

type Views struct {
	Active            []model.Assignment
	Completed         []model.Assignment
	PendingModeration []model.Assignment
	PendingClasses    []model.ClassRecord
	ApprovedClasses   []model.ClassRecord
}

// PendingCount is the size of the admin moderation queue.
func (v Views) PendingCount() int {
	return len(v.PendingModeration) + len(v.PendingClasses)
}

func Build(in Input) Views {
	enrolled := make(map[uuid.UUID]struct{}, len(in.Enrollment))
	for _, id := range in.Enrollment {
		enrolled[id] = struct{}{}
	}

	var out Views
	for _, a := range in.Assignments {
		if in.IsAdmin && a.Status == model.StatusPending {
			out.PendingModeration = append(out.PendingModeration, a)
		}
		if !visibleTo(&a, in.Caller, enrolled) {
			continue
		}
		switch {
		case in.States[a.ID].Completed:
			out.Completed = append(out.Completed, a)
		case a.Status == model.StatusApproved:
			out.Active = append(out.Active, a)
		}
	}
	SortByDue(out.Active)

	for _, c := range in.Classes {
		switch c.Status {
		case model.StatusApproved:
			out.ApprovedClasses = append(out.ApprovedClasses, c)
		case model.StatusPending:
			if in.IsAdmin {
				out.PendingClasses = append(out.PendingClasses, c)
			}
		}
	}

	return out
}

func visibleTo(a *model.Assignment, caller uuid.UUID, enrolled map[uuid.UUID]struct{}) bool {
	if a.IsPersonal {
		return a.OwnedBy(caller)
	}
	if a.ClassID == nil {
		return false
	}
	_, ok := enrolled[*a.ClassID]
	return ok
}

// SortByDue orders assignments by due date and time, earliest first.
// Assignments without a due date go last; ties keep their input order.
func SortByDue(list []model.Assignment) {
	sort.SliceStable(list, func(i, j int) bool {
		return dueBefore(&list[i], &list[j])
	})
}

func dueBefore(a, b *model.Assignment) bool {
	switch {
	case a.DueDate == nil:
		return false
	case b.DueDate == nil:
		return true
	case *a.DueDate != *b.DueDate:
		return a.DueDate.Before(*b.DueDate)
	default:
		return dueTime(a) < dueTime(b)
	}
}

func dueTime(a *model.Assignment) model.TimeOfDay {
	if a.DueTime == nil {
		return model.EndOfDay
	}
	return *a.DueTime
}
