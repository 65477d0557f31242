package subject

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/lanstats/internal/repositories/subject Repository

// Repository defines the interface for activity subject persistence. Subjects
// are created lazily on first observation and immutable thereafter.
type Repository interface {
	// GetOrCreateGame resolves a game subject by name, creating it if needed
	GetOrCreateGame(ctx context.Context, input *GetOrCreateGameInput) (*GetOrCreateGameOutput, error)

	// GetOrCreateTrack resolves a track subject by (title, artist), creating
	// it if needed
	GetOrCreateTrack(ctx context.Context, input *GetOrCreateTrackInput) (*GetOrCreateTrackOutput, error)
}
