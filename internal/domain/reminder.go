package domain

import "time"

// ReminderIntent is a schedule-reminder command emitted by the rental
// lifecycle alongside a mutation result. The core never dispatches reminders
// itself; the owning service hands intents to the notifier collaborator and
// ignores delivery failures.
type ReminderIntent struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	FireAt time.Time `json:"fire_at"`
}
