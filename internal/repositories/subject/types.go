package subject

import (
	"github.com/KirkDiggler/lanstats/internal/models"
)

// GetOrCreateGameInput contains parameters for resolving a game subject
type GetOrCreateGameInput struct {
	Name string
}

// GetOrCreateGameOutput contains the resolved game subject
type GetOrCreateGameOutput struct {
	Game *models.Game
}

// GetOrCreateTrackInput contains parameters for resolving a track subject
type GetOrCreateTrackInput struct {
	Title  string
	Artist string
	Album  string
}

// GetOrCreateTrackOutput contains the resolved track subject
type GetOrCreateTrackOutput struct {
	Track *models.Track
}
