// Package domain contains the core data types for the schedule API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Schedule represents a single schedule entry.
// ID is assigned by the store on creation and never changes or gets reused.
// CreatedAt is set once; UpdatedAt is refreshed on every successful mutation,
// so a freshly created schedule has CreatedAt == UpdatedAt.
type Schedule struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ScheduleUpdate carries the fields of a partial update.
// A nil field was not supplied by the caller and must keep its stored value;
// the store never interprets nil as "set to empty". The system deliberately
// does not check StartTime against EndTime here or anywhere else.
type ScheduleUpdate struct {
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	IsCompleted *bool
}

// IsZero reports whether the update carries no fields at all.
// An empty update is still a valid mutation: it refreshes UpdatedAt.
func (u ScheduleUpdate) IsZero() bool {
	return u.Title == nil && u.Description == nil && u.StartTime == nil &&
		u.EndTime == nil && u.IsCompleted == nil
}
