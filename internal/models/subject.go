package models

import (
	"time"
)

// Game is an activity subject created lazily the first time a game name is
// observed. Immutable after creation; unique by name.
type Game struct {
	// ID is the store-assigned subject ID
	ID string

	// Name is the game name, unique across all games
	Name string

	// FirstSeen is when the game was first observed
	FirstSeen time.Time
}

// Track is an activity subject created lazily the first time a track is
// observed. Immutable after creation; unique by (title, artist).
type Track struct {
	// ID is the store-assigned subject ID
	ID string

	// Title is the track title
	Title string

	// Artist is the track artist
	Artist string

	// Album is the album name, UnknownAlbum when the feed carried none
	Album string

	// FirstSeen is when the track was first observed
	FirstSeen time.Time
}
