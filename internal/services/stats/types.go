package stats

import (
	"github.com/KirkDiggler/lanstats/internal/models"
	"github.com/KirkDiggler/lanstats/internal/repositories/session"
	"github.com/KirkDiggler/lanstats/internal/repositories/user"
)

// Config holds configuration for the stats service
type Config struct {
	// UserRepo resolves user records
	UserRepo user.Repository

	// SessionRepo provides the aggregate queries
	SessionRepo session.Repository
}

// GetPlayerStatsInput contains parameters for one player's stats
type GetPlayerStatsInput struct {
	UserID string
}

// PlayerGameStat is one per-game playtime entry
type PlayerGameStat struct {
	Name     string
	Seconds  int64
	Readable string
}

// GetPlayerStatsOutput contains one player's stats
type GetPlayerStatsOutput struct {
	User *models.User

	GameSeconds  int64
	GameReadable string
	GamesPlayed  int64

	TrackSeconds  int64
	TrackReadable string
	TracksPlayed  int64

	// TopGames is the player's most played games, best first
	TopGames []*PlayerGameStat
}

// GetGameDetailsInput contains parameters for one game's stats
type GetGameDetailsInput struct {
	Name string
}

// GamePlayerStat is one player's playtime for a game
type GamePlayerStat struct {
	Name     string
	Seconds  int64
	Readable string
}

// GetGameDetailsOutput contains one game's totals and player breakdown
type GetGameDetailsOutput struct {
	Name          string
	TotalSeconds  int64
	Readable      string
	UniquePlayers int64

	// Players is the game's players, most playtime first
	Players []*GamePlayerStat
}

// GetListeningStatsInput contains parameters for one user's listening stats
type GetListeningStatsInput struct {
	UserID string
}

// PlayerTrackStat is one per-track listening entry
type PlayerTrackStat struct {
	Title    string
	Artist   string
	Album    string
	Seconds  int64
	Readable string
}

// GetListeningStatsOutput contains one user's listening stats
type GetListeningStatsOutput struct {
	User *models.User

	TrackSeconds  int64
	TrackReadable string
	TracksPlayed  int64

	// TopTracks is the user's most listened tracks, best first
	TopTracks []*PlayerTrackStat
}

// GetLeaderboardInput contains parameters for the player leaderboard
type GetLeaderboardInput struct {
	// Limit defaults to 10
	Limit int
}

// LeaderboardEntry is one ranked player
type LeaderboardEntry struct {
	Rank              int
	UserID            string
	Name              string
	TotalSeconds      int64
	Readable          string
	GamesPlayed       int64
	MostPlayedGame    string
	MostPlayedSeconds int64
	TrackSeconds      int64
	TracksPlayed      int64
}

// GetLeaderboardOutput contains the ranked players
type GetLeaderboardOutput struct {
	Entries []*LeaderboardEntry
}

// GetTopGamesInput contains parameters for the game ranking
type GetTopGamesInput struct {
	// Limit defaults to 10
	Limit int
}

// TopGameEntry is one ranked game
type TopGameEntry struct {
	Rank          int
	Name          string
	TotalSeconds  int64
	Readable      string
	UniquePlayers int64
}

// GetTopGamesOutput contains the ranked games
type GetTopGamesOutput struct {
	Games []*TopGameEntry
}

// GetTopTracksInput contains parameters for the track ranking
type GetTopTracksInput struct {
	// Limit defaults to 10
	Limit int
}

// TopTrackEntry is one ranked track
type TopTrackEntry struct {
	Rank            int
	Title           string
	Artist          string
	Album           string
	TotalSeconds    int64
	Readable        string
	UniqueListeners int64
}

// GetTopTracksOutput contains the ranked tracks
type GetTopTracksOutput struct {
	Tracks []*TopTrackEntry
}

// GetOverviewInput contains parameters for the server-wide overview
type GetOverviewInput struct{}

// GetOverviewOutput contains server-wide totals
type GetOverviewOutput struct {
	GameSeconds   int64
	GameReadable  string
	TrackSeconds  int64
	TrackReadable string
	ActivePlayers int64
	UniqueGames   int64
	UniqueTracks  int64
}
