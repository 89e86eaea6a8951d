// Package dates holds the small calendar helpers shared by the quote,
// visual, and stats handlers. Everything here is pure: callers pass the
// reference time in so behavior is testable on fixed dates.
package dates

import "time"

// DayFormat is the wire and storage format for calendar dates.
const DayFormat = "2006-01-02"

// Day formats t as a YYYY-MM-DD string in t's location.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay parses a YYYY-MM-DD string back into a midnight time.Time.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

// WeekStart returns the Monday of the week containing t, truncated to
// midnight. Sundays belong to the week that started six days earlier.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	back := int(day.Weekday()) - int(time.Monday)
	if day.Weekday() == time.Sunday {
		back = 6
	}
	return day.AddDate(0, 0, -back)
}

// Season maps a month to its meteorological season: spring = Mar-May,
// summer = Jun-Aug, fall = Sep-Nov, winter = Dec-Feb.
func Season(m time.Month) string {
	switch {
	case m >= time.March && m <= time.May:
		return "spring"
	case m >= time.June && m <= time.August:
		return "summer"
	case m >= time.September && m <= time.November:
		return "fall"
	default:
		return "winter"
	}
}
