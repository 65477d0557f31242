package tracker

import (
	"context"

	"github.com/KirkDiggler/lanstats/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_presence_source.go github.com/KirkDiggler/lanstats/internal/services/tracker PresenceSource

// Service defines the interface for the activity tracker
type Service interface {
	// Reconcile repairs sessions left open by an unclean prior shutdown.
	// It must run exactly once, before Start.
	Reconcile(ctx context.Context, input *ReconcileInput) (*ReconcileOutput, error)

	// Start launches the presence event consumer
	Start(ctx context.Context) error

	// QueuePresenceUpdate enqueues one presence change for sequential
	// processing. The queue preserves arrival order, which preserves
	// per-user ordering of before/after pairs.
	QueuePresenceUpdate(input *PresenceUpdateInput) error

	// Stop stops accepting events, flushes the queue, and closes every
	// open session. Safe to call more than once.
	Stop(ctx context.Context) error
}

// PresenceSource enumerates every currently known non-bot user together
// with their current activity snapshot. Used only by the reconciliation
// live scan.
type PresenceSource interface {
	ListMembers(ctx context.Context) ([]*models.Member, error)
}
