package models

// ActivityKind identifies which kind of activity a session tracks
type ActivityKind string

const (
	// ActivityKindGame indicates a "playing a game" activity
	ActivityKindGame ActivityKind = "game"

	// ActivityKindTrack indicates a "listening to Spotify" activity
	ActivityKindTrack ActivityKind = "track"
)

// UnknownAlbum is the sentinel stored when a track carries no album
const UnknownAlbum = "Unknown Album"

// GameActivity is a "playing" activity. Identity is the game name.
type GameActivity struct {
	// Name is the game name as reported by the presence feed
	Name string
}

// Same reports whether two game activities refer to the same game
func (a *GameActivity) Same(other *GameActivity) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Name == other.Name
}

// TrackActivity is a "listening" activity. Identity is (title, artist);
// the album is carried but never part of identity.
type TrackActivity struct {
	// Title is the track title
	Title string

	// Artist is the track artist
	Artist string

	// Album is the album name, normalized to UnknownAlbum when absent
	Album string
}

// NewTrackActivity builds a track activity, normalizing a missing album
func NewTrackActivity(title, artist, album string) *TrackActivity {
	if album == "" {
		album = UnknownAlbum
	}

	return &TrackActivity{
		Title:  title,
		Artist: artist,
		Album:  album,
	}
}

// Same reports whether two track activities refer to the same track
func (a *TrackActivity) Same(other *TrackActivity) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Title == other.Title && a.Artist == other.Artist
}

// Snapshot is a point-in-time view of a user's current activities. At most
// one game and one track are relevant; a nil field means no activity of
// that kind.
type Snapshot struct {
	// Game is the current "playing" activity, if any
	Game *GameActivity

	// Track is the current "listening" activity, if any
	Track *TrackActivity
}

// Member is one entry of a live roster scan: a non-bot user together with
// their current activity snapshot
type Member struct {
	// UserID is the Discord user ID
	UserID string

	// Username is the Discord account name
	Username string

	// DisplayName is the server display name, if set
	DisplayName string

	// AvatarURL is a reference to the user's current avatar
	AvatarURL string

	// Snapshot is the member's current activity snapshot
	Snapshot *Snapshot
}
