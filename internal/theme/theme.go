// Package theme renders dashboard rows for the terminal.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"classsync/internal/model"
	"classsync/internal/urgency"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Palette is one accent choice. Light and Dark are the tag backgrounds for
// each mode; Strong is used for borders, buttons and titles.
type Palette struct {
	Name   string
	Light  lipgloss.Color
	Dark   lipgloss.Color
	Text   lipgloss.Color
	Strong lipgloss.Color
}

var palettes = map[string]Palette{
	"blue":   {Name: "blue", Light: "#dbeafe", Dark: "#1e3a8a", Text: "#1e40af", Strong: "#2563eb"},
	"red":    {Name: "red", Light: "#fee2e2", Dark: "#7f1d1d", Text: "#991b1b", Strong: "#dc2626"},
	"green":  {Name: "green", Light: "#dcfce7", Dark: "#14532d", Text: "#166534", Strong: "#16a34a"},
	"purple": {Name: "purple", Light: "#f3e8ff", Dark: "#581c87", Text: "#6b21a8", Strong: "#9333ea"},
	"orange": {Name: "orange", Light: "#ffedd5", Dark: "#7c2d12", Text: "#9a3412", Strong: "#ea580c"},
	"pink":   {Name: "pink", Light: "#fce7f3", Dark: "#831843", Text: "#9d174d", Strong: "#db2777"},
}

var urgencyColors = map[urgency.Color]lipgloss.Color{
	urgency.ColorGray:   "#9ca3af",
	urgency.ColorRed:    "#dc2626",
	urgency.ColorOrange: "#ea580c",
	urgency.ColorYellow: "#ca8a04",
	urgency.ColorLime:   "#65a30d",
	urgency.ColorGreen:  "#16a34a",
	urgency.ColorBlue:   "#2563eb",
}

// Names lists the accent names in a stable order.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named palette. Unknown names fall back to blue.
func Lookup(name string) (Palette, bool) {
	p, ok := palettes[name]
	if !ok {
		return palettes["blue"], false
	}
	return p, true
}

type Theme struct {
	Dark        bool
	Accent      Palette
	ClassColors map[uuid.UUID]string
}

func New(dark bool, accent string, classColors map[uuid.UUID]string) Theme {
	p, _ := Lookup(accent)
	return Theme{Dark: dark, Accent: p, ClassColors: classColors}
}

func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent.Strong)
}

func (t Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
}

// ClassTag styles a class name with its own color or the accent.
func (t Theme) ClassTag(classID *uuid.UUID) lipgloss.Style {
	p := t.Accent
	if classID != nil {
		if name, ok := t.ClassColors[*classID]; ok {
			if custom, ok := Lookup(name); ok {
				p = custom
			}
		}
	}
	bg, fg := p.Light, p.Text
	if t.Dark {
		bg, fg = p.Dark, lipgloss.Color("#f3f4f6")
	}
	return lipgloss.NewStyle().Background(bg).Foreground(fg).Padding(0, 1)
}

// Urgency styles the label of a classification.
func (t Theme) Urgency(c urgency.Classification) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(urgencyColors[c.Style.Color])
	if c.Style.Weight >= urgency.WeightBold {
		s = s.Bold(true)
	}
	if c.Style.Weight == urgency.WeightExtraBold {
		s = s.Underline(true)
	}
	return s
}

// Row is one rendered assignment line.
type Row struct {
	Assignment model.Assignment
	ClassName  string
	State      model.PersonalState
	Urgency    *urgency.Classification
}

func (t Theme) RenderRow(r Row) string {
	a := r.Assignment
	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		PaddingLeft(1)
	if r.Urgency != nil {
		border = border.BorderForeground(urgencyColors[r.Urgency.Style.Border])
	}

	var b strings.Builder
	b.WriteString(t.Muted().Render(shortID(a.ID)))
	b.WriteString(" ")
	switch {
	case a.IsPersonal && a.Storage == model.StorageDevice:
		b.WriteString(t.ClassTag(nil).Render("Personal (device)"))
	case a.IsPersonal:
		b.WriteString(t.ClassTag(nil).Render("Personal"))
	default:
		name := r.ClassName
		if name == "" {
			name = "Unknown class"
		}
		b.WriteString(t.ClassTag(a.ClassID).Render(name))
	}
	b.WriteString(" ")
	title := lipgloss.NewStyle().Bold(true)
	if r.State.Completed {
		title = title.Strikethrough(true).Foreground(lipgloss.Color("#9ca3af"))
	}
	b.WriteString(title.Render(a.Title))
	if a.Status == model.StatusPending {
		b.WriteString(" ")
		b.WriteString(t.Muted().Render("(pending review)"))
	}

	if a.DueDate != nil {
		due := a.DueDate.String()
		if a.DueTime != nil {
			due += " " + a.DueTime.String()
		}
		b.WriteString("\n")
		b.WriteString(t.Muted().Render("due " + due))
	}
	if r.Urgency != nil {
		b.WriteString("  ")
		b.WriteString(t.Urgency(*r.Urgency).Render(r.Urgency.Label))
	}
	if r.State.Note != "" {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("note: %s", r.State.Note))
	}
	if r.State.Link != "" {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("link: %s", lipgloss.NewStyle().Foreground(t.Accent.Strong).Render(urgency.Domain(r.State.Link))))
	}
	return border.Render(b.String())
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
