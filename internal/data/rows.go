package data

import (
	"time"

	"classsync/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const assignmentColumns = `id, title, class_id, due_date, due_time, status, suggested_by, owner_id, is_personal, created_at`

type assignmentRow struct {
	ID          uuid.UUID              `db:"id"`
	Title       string                 `db:"title"`
	ClassID     *uuid.UUID             `db:"class_id"`
	DueDate     pgtype.Date            `db:"due_date"`
	DueTime     pgtype.Time            `db:"due_time"`
	Status      model.ModerationStatus `db:"status"`
	SuggestedBy string                 `db:"suggested_by"`
	OwnerID     *uuid.UUID             `db:"owner_id"`
	IsPersonal  bool                   `db:"is_personal"`
	CreatedAt   time.Time              `db:"created_at"`
}

func (r *assignmentRow) toModel() model.Assignment {
	return model.Assignment{
		ID:          r.ID,
		Title:       r.Title,
		ClassID:     r.ClassID,
		DueDate:     fromPgDate(r.DueDate),
		DueTime:     fromPgTime(r.DueTime),
		Status:      r.Status,
		SuggestedBy: r.SuggestedBy,
		OwnerID:     r.OwnerID,
		IsPersonal:  r.IsPersonal,
		Storage:     model.StorageRemote,
		CreatedAt:   r.CreatedAt,
	}
}

func toModels(rows []assignmentRow) []model.Assignment {
	out := make([]model.Assignment, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toModel())
	}
	return out
}

func toPgDate(d *model.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC), Valid: true}
}

func fromPgDate(d pgtype.Date) *model.Date {
	if !d.Valid || d.InfinityModifier != pgtype.Finite {
		return nil
	}
	v := model.DateOf(d.Time)
	return &v
}

func toPgTime(t *model.TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: int64(*t) * int64(time.Minute/time.Microsecond), Valid: true}
}

func fromPgTime(t pgtype.Time) *model.TimeOfDay {
	if !t.Valid {
		return nil
	}
	minutes := t.Microseconds / int64(time.Minute/time.Microsecond)
	v := model.NewTimeOfDay(int(minutes/60), int(minutes%60))
	return &v
}
