package session

import (
	"time"

	"github.com/KirkDiggler/lanstats/internal/models"
)

// StartSessionInput contains parameters for opening a session
type StartSessionInput struct {
	UserID    string
	SubjectID string
	Kind      models.ActivityKind
}

// StartSessionOutput contains the store-assigned session ID and start time
type StartSessionOutput struct {
	SessionID string
	StartTime time.Time
}

// EndSessionInput contains parameters for closing a session
type EndSessionInput struct {
	SessionID string
}

// ListOpenSessionsInput contains parameters for listing open sessions. A
// zero StartedAtOrBefore lists every open session.
type ListOpenSessionsInput struct {
	StartedAtOrBefore time.Time
}

// ListOpenSessionsOutput contains the matching open sessions
type ListOpenSessionsOutput struct {
	Sessions []*models.Session
}

// ListRecentOpenSessionsInput contains parameters for listing open sessions
// started strictly after the cutoff
type ListRecentOpenSessionsInput struct {
	StartedAfter time.Time
}

// ListRecentOpenSessionsOutput contains the matching open sessions
type ListRecentOpenSessionsOutput struct {
	Sessions []*models.Session
}

// CloseOrphanWithCapInput contains parameters for closing an orphaned
// session with a bounded duration
type CloseOrphanWithCapInput struct {
	SessionID string
	Cap       time.Duration
}

// GetUserTotalsInput contains parameters for per-user totals
type GetUserTotalsInput struct {
	UserID string
}

// GetUserTotalsOutput contains per-user sums over finished sessions
type GetUserTotalsOutput struct {
	GameSeconds  int64
	GamesPlayed  int64
	TrackSeconds int64
	TracksPlayed int64
}

// GetUserGameTotalsInput contains parameters for a user's per-game sums
type GetUserGameTotalsInput struct {
	UserID string
}

// GameTotal is one per-game playtime sum
type GameTotal struct {
	Name         string
	TotalSeconds int64
}

// GetUserGameTotalsOutput contains per-game sums, most played first
type GetUserGameTotalsOutput struct {
	Totals []*GameTotal
}

// GetGamePlayersInput contains parameters for one game's player breakdown
type GetGamePlayersInput struct {
	Name string
}

// GamePlayer is one player's playtime sum for a game
type GamePlayer struct {
	UserID       string
	Username     string
	DisplayName  string
	TotalSeconds int64
}

// GetGamePlayersOutput contains the game's players, most playtime first.
// Empty when the game has no finished sessions.
type GetGamePlayersOutput struct {
	Players []*GamePlayer
}

// GetUserTrackTotalsInput contains parameters for a user's per-track sums
type GetUserTrackTotalsInput struct {
	UserID string
}

// TrackTotal is one per-track listening sum
type TrackTotal struct {
	Title        string
	Artist       string
	Album        string
	TotalSeconds int64
}

// GetUserTrackTotalsOutput contains per-track sums, most listened first
type GetUserTrackTotalsOutput struct {
	Totals []*TrackTotal
}

// GetTopGamesInput contains parameters for the game ranking
type GetTopGamesInput struct {
	Limit int
}

// GameLeader is one entry of the game ranking
type GameLeader struct {
	Name          string
	TotalSeconds  int64
	UniquePlayers int64
}

// GetTopGamesOutput contains the ranked games
type GetTopGamesOutput struct {
	Games []*GameLeader
}

// GetTopTracksInput contains parameters for the track ranking
type GetTopTracksInput struct {
	Limit int
}

// TrackLeader is one entry of the track ranking
type TrackLeader struct {
	Title           string
	Artist          string
	Album           string
	TotalSeconds    int64
	UniqueListeners int64
}

// GetTopTracksOutput contains the ranked tracks
type GetTopTracksOutput struct {
	Tracks []*TrackLeader
}

// GetLeaderboardInput contains parameters for the player leaderboard
type GetLeaderboardInput struct {
	Limit int
}

// PlayerTotals is one entry of the player leaderboard
type PlayerTotals struct {
	UserID            string
	Username          string
	DisplayName       string
	AvatarURL         string
	TotalSeconds      int64
	GamesPlayed       int64
	MostPlayedGame    string
	MostPlayedSeconds int64
	TrackSeconds      int64
	TracksPlayed      int64
}

// GetLeaderboardOutput contains the ranked players
type GetLeaderboardOutput struct {
	Players []*PlayerTotals
}

// GetOverviewInput contains parameters for the server-wide overview
type GetOverviewInput struct{}

// GetOverviewOutput contains server-wide totals over finished sessions
type GetOverviewOutput struct {
	GameSeconds   int64
	TrackSeconds  int64
	ActivePlayers int64
	UniqueGames   int64
	UniqueTracks  int64
}
