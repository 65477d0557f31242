package tracker

import (
	"time"

	"github.com/KirkDiggler/lanstats/internal/common/clock"
	"github.com/KirkDiggler/lanstats/internal/models"
	"github.com/KirkDiggler/lanstats/internal/repositories/session"
	"github.com/KirkDiggler/lanstats/internal/repositories/subject"
	"github.com/KirkDiggler/lanstats/internal/repositories/user"
)

// Config holds configuration for the tracker service
type Config struct {
	// UserRepo persists observed users
	UserRepo user.Repository

	// SubjectRepo resolves game and track subjects
	SubjectRepo subject.Repository

	// SessionRepo persists sessions
	SessionRepo session.Repository

	// Clock provides the current time, defaults to the system clock
	Clock clock.Clock

	// RecoveryWindow is how recently an orphaned session must have started
	// to be eligible for exact recovery. Defaults to 5 minutes.
	RecoveryWindow time.Duration

	// MaxSessionDuration caps the duration assigned to stale orphans.
	// Defaults to 12 hours.
	MaxSessionDuration time.Duration

	// QueueSize is the presence event queue capacity. Defaults to 1024.
	QueueSize int
}

// PresenceUpdateInput contains one user's before/after snapshot pair
type PresenceUpdateInput struct {
	UserID      string
	Username    string
	DisplayName string
	AvatarURL   string

	// Before is the previous snapshot, nil when the user was idle or unseen
	Before *models.Snapshot

	// After is the new snapshot, nil when the user went idle
	After *models.Snapshot
}

// ReconcileInput contains the presence source for the live scan
type ReconcileInput struct {
	Source PresenceSource
}

// ReconcileOutput summarizes one reconciliation pass
type ReconcileOutput struct {
	// Swept counts stale orphans closed with a capped duration
	Swept int

	// Recovered counts orphans re-registered with their original session ID
	Recovered int

	// Started counts fresh sessions opened for unmatched live activity
	Started int

	// Closed counts recent orphans closed with their exact duration
	Closed int
}
