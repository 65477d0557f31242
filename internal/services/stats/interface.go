package stats

import (
	"context"
)

// Service defines the interface for read-only statistics reporting. It only
// reads finished session rows and never mutates session state.
type Service interface {
	// GetPlayerStats returns one player's playtime and listening stats
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error)

	// GetGameDetails returns one game's totals and player breakdown
	GetGameDetails(ctx context.Context, input *GetGameDetailsInput) (*GetGameDetailsOutput, error)

	// GetListeningStats returns one user's listening time and top tracks
	GetListeningStats(ctx context.Context, input *GetListeningStatsInput) (*GetListeningStatsOutput, error)

	// GetLeaderboard returns players ranked by total playtime
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetTopGames returns games ranked by total playtime
	GetTopGames(ctx context.Context, input *GetTopGamesInput) (*GetTopGamesOutput, error)

	// GetTopTracks returns tracks ranked by total listening time
	GetTopTracks(ctx context.Context, input *GetTopTracksInput) (*GetTopTracksOutput, error)

	// GetOverview returns server-wide totals
	GetOverview(ctx context.Context, input *GetOverviewInput) (*GetOverviewOutput, error)
}
