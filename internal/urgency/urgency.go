// Package urgency classifies how soon an assignment is due.
//
// Classification depends on the current instant, so callers re-run it on
// every render or poll instead of storing the result.
package urgency

import (
	"math"
	"net/url"
	"strings"
	"time"

	"classsync/internal/model"
)

type Bucket int

const (
	NoDate Bucket = iota
	Overdue
	DueToday
	Tomorrow
	Soon
	ThisWeek
	Upcoming
)

func (b Bucket) String() string {
	switch b {
	case Overdue:
		return "Overdue"
	case DueToday:
		return "Due Today"
	case Tomorrow:
		return "Tomorrow"
	case Soon:
		return "Soon"
	case ThisWeek:
		return "This Week"
	case Upcoming:
		return "Upcoming"
	default:
		return "No Date"
	}
}

// Color names are semantic; the renderer maps them to terminal colors.
type Color string

const (
	ColorGray   Color = "gray"
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorLime   Color = "lime"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
)

type Weight int

const (
	WeightNormal Weight = iota
	WeightBold
	WeightExtraBold
)

type Style struct {
	Color  Color
	Border Color
	Weight Weight
}

type Classification struct {
	Bucket Bucket
	Label  string
	Style  Style
	// DaysLeft is ceil(hours until due / 24); zero when there is no date.
	DaysLeft int
}

var styles = map[Bucket]Style{
	NoDate:   {Color: ColorGray, Border: ColorGray},
	Overdue:  {Color: ColorRed, Border: ColorRed, Weight: WeightExtraBold},
	DueToday: {Color: ColorOrange, Border: ColorOrange, Weight: WeightBold},
	Tomorrow: {Color: ColorYellow, Border: ColorYellow, Weight: WeightBold},
	Soon:     {Color: ColorLime, Border: ColorLime},
	ThisWeek: {Color: ColorGreen, Border: ColorGreen},
	Upcoming: {Color: ColorBlue, Border: ColorBlue},
}

// Classify maps a due date and optional time to an urgency bucket relative to
// now. The due moment is the wall-clock date and time in now's location; a
// missing time means end of day.
func Classify(dueDate *model.Date, dueTime *model.TimeOfDay, now time.Time) Classification {
	if dueDate == nil {
		return newClassification(NoDate, 0)
	}

	tod := model.EndOfDay
	if dueTime != nil {
		tod = *dueTime
	}

	due := dueDate.In(tod, now.Location())
	diffHours := due.Sub(now).Hours()
	days := int(math.Ceil(diffHours / 24))

	switch {
	case diffHours < 0:
		return newClassification(Overdue, days)
	case diffHours < 24:
		return newClassification(DueToday, days)
	case days <= 1:
		return newClassification(Tomorrow, days)
	case days <= 3:
		return newClassification(Soon, days)
	case days <= 7:
		return newClassification(ThisWeek, days)
	default:
		return newClassification(Upcoming, days)
	}
}

// ClassifyAssignment is Classify over an assignment's due fields.
func ClassifyAssignment(a *model.Assignment, now time.Time) Classification {
	return Classify(a.DueDate, a.DueTime, now)
}

func newClassification(b Bucket, days int) Classification {
	return Classification{
		Bucket:   b,
		Label:    b.String(),
		Style:    styles[b],
		DaysLeft: days,
	}
}

// Domain returns the host of a private link for display, without "www.".
func Domain(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return "Link"
	}
	if !strings.HasPrefix(link, "http") {
		link = "https://" + link
	}
	u, err := url.Parse(link)
	if err != nil || u.Hostname() == "" {
		return "Link"
	}
	return strings.Replace(u.Hostname(), "www.", "", 1)
}
