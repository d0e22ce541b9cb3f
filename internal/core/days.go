package core

import "time"

// dayCodes lists the conference weekday codes in conference-week order,
// Friday through Thursday. This is the numbering the default-day rule and
// the day picker use, not the generic Sunday-first week.
var dayCodes = [7]string{"Fri", "Sat", "Sun", "Mon", "Tue", "Wed", "Thu"}

// DayCodes returns the seven day codes in conference-week order.
func DayCodes() []string {
	out := make([]string, len(dayCodes))
	copy(out, dayCodes[:])
	return out
}

// IsDayCode reports whether code is one of the seven conference day codes.
func IsDayCode(code string) bool {
	for _, d := range dayCodes {
		if d == code {
			return true
		}
	}
	return false
}

// WeekdayCode maps a calendar date to its short conference day code.
func WeekdayCode(t time.Time) string {
	return t.Weekday().String()[:3]
}

// DefaultDay picks the initially selected day for the sessions view.
// Before the conference starts it is the conference's second day; once
// underway it is today's weekday code, so attendees land on the current
// day's program.
func DefaultDay(today, conferenceStart time.Time) string {
	if today.Before(conferenceStart) {
		return WeekdayCode(conferenceStart.AddDate(0, 0, 1))
	}
	return WeekdayCode(today)
}
