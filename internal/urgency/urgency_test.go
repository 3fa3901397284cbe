package urgency_test

import (
	"testing"
	"time"

	"classsync/internal/model"
	"classsync/internal/urgency"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) *model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return &d
}

func tod(h, m int) *model.TimeOfDay {
	v := model.NewTimeOfDay(h, m)
	return &v
}

func TestClassify(t *testing.T) {
	now := time.Date(2024, time.June, 9, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    *model.Date
		time    *model.TimeOfDay
		want    urgency.Bucket
		wantDay int
	}{
		{"NoDate", nil, nil, urgency.NoDate, 0},
		{"NoDateIgnoresTime", nil, tod(9, 0), urgency.NoDate, 0},
		{"OneMinuteLate", date(t, "2024-06-09"), tod(9, 59), urgency.Overdue, 0},
		{"YesterdayEndOfDay", date(t, "2024-06-08"), nil, urgency.Overdue, 0},
		{"ExactlyNow", date(t, "2024-06-09"), tod(10, 0), urgency.DueToday, 0},
		{"LaterToday", date(t, "2024-06-09"), nil, urgency.DueToday, 1},
		{"TomorrowMorning", date(t, "2024-06-10"), tod(9, 0), urgency.DueToday, 1},
		{"ExactlyOneDay", date(t, "2024-06-10"), tod(10, 0), urgency.Tomorrow, 1},
		{"TomorrowEndOfDay", date(t, "2024-06-10"), nil, urgency.Soon, 2},
		{"ThreeDays", date(t, "2024-06-12"), tod(10, 0), urgency.Soon, 3},
		{"JustOverThreeDays", date(t, "2024-06-12"), tod(10, 1), urgency.ThisWeek, 4},
		{"SevenDays", date(t, "2024-06-16"), tod(10, 0), urgency.ThisWeek, 7},
		{"EightDays", date(t, "2024-06-17"), nil, urgency.Upcoming, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := urgency.Classify(tt.date, tt.time, now)
			assert.Equal(t, tt.want, got.Bucket)
			assert.Equal(t, tt.want.String(), got.Label)
			if tt.want != urgency.Overdue {
				assert.Equal(t, tt.wantDay, got.DaysLeft)
			}
		})
	}
}

func TestClassify_EndOfDayScenario(t *testing.T) {
	// Due 2024-06-10 23:59 seen from 2024-06-09 10:00 is 37h59m away:
	// not within 24h, and ceil(37.98/24) == 2.
	now := time.Date(2024, time.June, 9, 10, 0, 0, 0, time.Local)
	got := urgency.Classify(date(t, "2024-06-10"), nil, now)
	assert.Equal(t, urgency.Soon, got.Bucket)
	assert.Equal(t, 2, got.DaysLeft)
}

func TestClassify_Deterministic(t *testing.T) {
	now := time.Date(2025, time.January, 31, 18, 30, 0, 0, time.UTC)
	d := date(t, "2025-02-03")
	first := urgency.Classify(d, tod(8, 0), now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, urgency.Classify(d, tod(8, 0), now))
	}
}

func TestClassify_PastIsAlwaysOverdue(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	for offset := time.Minute; offset < 90*24*time.Hour; offset += 7 * time.Hour {
		due := now.Add(-offset)
		d := model.DateOf(due)
		tm := model.NewTimeOfDay(due.Hour(), due.Minute())
		got := urgency.Classify(&d, &tm, now)
		require.Equal(t, urgency.Overdue, got.Bucket, "offset %s", offset)
	}
}

func TestClassify_UsesNowLocation(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*60*60)
	now := time.Date(2024, time.June, 9, 23, 0, 0, 0, zone)
	got := urgency.Classify(date(t, "2024-06-09"), nil, now)
	assert.Equal(t, urgency.DueToday, got.Bucket)
}

func TestClassify_Styles(t *testing.T) {
	now := time.Date(2024, time.June, 9, 10, 0, 0, 0, time.UTC)
	overdue := urgency.Classify(date(t, "2024-06-01"), nil, now)
	assert.Equal(t, urgency.ColorRed, overdue.Style.Color)
	assert.Equal(t, urgency.WeightExtraBold, overdue.Style.Weight)

	none := urgency.Classify(nil, nil, now)
	assert.Equal(t, urgency.ColorGray, none.Style.Color)
}

func TestDomain(t *testing.T) {
	assert.Equal(t, "docs.google.com", urgency.Domain("https://docs.google.com/document/d/1"))
	assert.Equal(t, "example.org", urgency.Domain("www.example.org/page"))
	assert.Equal(t, "Link", urgency.Domain(""))
	assert.Equal(t, "Link", urgency.Domain("http://[::1"))
}
