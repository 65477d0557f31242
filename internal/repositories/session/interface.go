package session

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/lanstats/internal/repositories/session Repository

// Repository defines the interface for session persistence. Open/close
// operations are individually atomic; callers do not retry failed writes,
// they rely on reconciliation at next startup instead.
type Repository interface {
	// StartSession opens a session; the store assigns the ID and start time
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// EndSession closes an open session, setting end = now and
	// duration = end - start in whole seconds, never negative
	EndSession(ctx context.Context, input *EndSessionInput) error

	// ListOpenSessions returns open sessions, optionally only those started
	// at or before a cutoff
	ListOpenSessions(ctx context.Context, input *ListOpenSessionsInput) (*ListOpenSessionsOutput, error)

	// ListRecentOpenSessions returns open sessions started strictly after
	// the cutoff
	ListRecentOpenSessions(ctx context.Context, input *ListRecentOpenSessionsInput) (*ListRecentOpenSessionsOutput, error)

	// CloseOrphanWithCap closes an open session with end = min(now, start + cap)
	CloseOrphanWithCap(ctx context.Context, input *CloseOrphanWithCapInput) error

	// GetUserTotals returns per-user playtime and listening sums over
	// finished sessions
	GetUserTotals(ctx context.Context, input *GetUserTotalsInput) (*GetUserTotalsOutput, error)

	// GetUserGameTotals returns a user's per-game playtime sums, most played
	// first
	GetUserGameTotals(ctx context.Context, input *GetUserGameTotalsInput) (*GetUserGameTotalsOutput, error)

	// GetGamePlayers returns one game's players and their playtime sums,
	// most playtime first
	GetGamePlayers(ctx context.Context, input *GetGamePlayersInput) (*GetGamePlayersOutput, error)

	// GetUserTrackTotals returns a user's per-track listening sums, most
	// listened first
	GetUserTrackTotals(ctx context.Context, input *GetUserTrackTotalsInput) (*GetUserTrackTotalsOutput, error)

	// GetTopGames returns games ranked by total playtime
	GetTopGames(ctx context.Context, input *GetTopGamesInput) (*GetTopGamesOutput, error)

	// GetTopTracks returns tracks ranked by total listening time
	GetTopTracks(ctx context.Context, input *GetTopTracksInput) (*GetTopTracksOutput, error)

	// GetLeaderboard returns players ranked by total playtime
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetOverview returns server-wide totals over finished sessions
	GetOverview(ctx context.Context, input *GetOverviewInput) (*GetOverviewOutput, error)
}
