package models

import (
	"time"
)

// Session represents one contiguous interval of a user engaged with one
// subject. A nil EndTime means the session is still open; DurationSeconds
// is populated exactly when EndTime is set.
type Session struct {
	// ID is the store-assigned session ID
	ID string

	// UserID is the Discord user ID
	UserID string

	// SubjectID is the ID of the game or track being engaged with
	SubjectID string

	// Kind is the activity kind of the session
	Kind ActivityKind

	// StartTime is when the session was opened
	StartTime time.Time

	// EndTime is when the session was closed, nil while open
	EndTime *time.Time

	// DurationSeconds is end minus start in whole seconds, nil while open.
	// Never negative.
	DurationSeconds *int64
}

// Open reports whether the session has not been closed yet
func (s *Session) Open() bool {
	return s.EndTime == nil
}
