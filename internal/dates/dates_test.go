package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday maps to itself", day(2026, time.August, 24), "2026-08-24"},
		{"midweek steps back to monday", day(2026, time.August, 27), "2026-08-24"},
		{"saturday stays in same week", day(2026, time.August, 29), "2026-08-24"},
		{"sunday steps back six days", day(2026, time.August, 30), "2026-08-24"},
		{"next monday starts a new week", day(2026, time.August, 31), "2026-08-31"},
		{"crosses month boundary", day(2026, time.September, 1), "2026-08-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Day(WeekStart(tt.in)))
		})
	}
}

func TestWeekStartTruncatesTime(t *testing.T) {
	in := time.Date(2026, time.August, 27, 18, 45, 12, 0, time.UTC)
	got := WeekStart(in)
	assert.Equal(t, "2026-08-24", Day(got))
	assert.Equal(t, 0, got.Hour())
}

func TestSeason(t *testing.T) {
	want := map[time.Month]string{
		time.January:   "winter",
		time.February:  "winter",
		time.March:     "spring",
		time.May:       "spring",
		time.June:      "summer",
		time.August:    "summer",
		time.September: "fall",
		time.November:  "fall",
		time.December:  "winter",
	}
	for m, season := range want {
		assert.Equal(t, season, Season(m), m.String())
	}
}

func TestParseDayRoundTrip(t *testing.T) {
	got, err := ParseDay("2026-02-28")
	assert.NoError(t, err)
	assert.Equal(t, "2026-02-28", Day(got))

	_, err = ParseDay("28/02/2026")
	assert.Error(t, err)
}
