package utils

import "time"

// Calendar isolates wall-clock reads and calendar-day arithmetic behind an
// interface so rental and onboarding logic can be driven deterministically in
// tests. Return dates are calendar-day additions, not elapsed-hours math, so
// DST transitions never shift a return date.
type Calendar interface {
	Now() time.Time
	AddDays(t time.Time, days int) time.Time
}

type systemCalendar struct{}

// SystemCalendar returns a Calendar backed by the real clock.
func SystemCalendar() Calendar {
	return systemCalendar{}
}

func (systemCalendar) Now() time.Time {
	return time.Now()
}

func (systemCalendar) AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
