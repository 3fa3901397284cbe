package main

import (
	"fmt"
	"io"

	"classsync/internal/model"
	"classsync/internal/theme"
	"classsync/internal/workspace"

	"github.com/google/uuid"
)

func classNames(d workspace.Dashboard) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(d.ApprovedClasses)+len(d.PendingClasses))
	for _, c := range d.ApprovedClasses {
		names[c.ID] = c.Name
	}
	for _, c := range d.PendingClasses {
		names[c.ID] = c.Name
	}
	return names
}

// printAssignments renders list, with urgency labels for the rows that
// have one in d.
func printAssignments(w io.Writer, t theme.Theme, d workspace.Dashboard, list []model.Assignment) {
	names := classNames(d)
	for _, a := range list {
		row := theme.Row{Assignment: a, State: d.States[a.ID]}
		if a.ClassID != nil {
			row.ClassName = names[*a.ClassID]
		}
		if c, ok := d.Urgency[a.ID]; ok {
			row.Urgency = &c
		}
		fmt.Fprintln(w, t.RenderRow(row))
	}
}

func printClass(w io.Writer, t theme.Theme, c model.ClassRecord, enrolled bool) {
	mark := "[ ]"
	if enrolled {
		mark = "[x]"
	}
	line := fmt.Sprintf("%s %s %s", mark, t.Muted().Render(c.ID.String()[:8]), t.ClassTag(&c.ID).Render(c.Name))
	if c.Teacher != "" {
		line += " " + t.Muted().Render(c.Teacher)
	}
	if c.Status == model.StatusPending {
		line += " " + t.Muted().Render("(pending review, suggested by "+c.SuggestedBy+")")
	}
	fmt.Fprintln(w, line)
}
