package stats

import (
	"context"
	"errors"

	"github.com/KirkDiggler/lanstats/internal/repositories/session"
	"github.com/KirkDiggler/lanstats/internal/repositories/user"
)

const defaultLimit = 10

// ErrUserNotFound is returned when no stats exist for a user
var ErrUserNotFound = errors.New("user not found")

// ErrGameNotFound is returned when a game has no finished sessions
var ErrGameNotFound = errors.New("game not found")

// service implements the Service interface
type service struct {
	userRepo    user.Repository
	sessionRepo session.Repository
}

// New creates a new stats service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.UserRepo == nil {
		return nil, errors.New("user repository cannot be nil")
	}

	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}

	return &service{
		userRepo:    cfg.UserRepo,
		sessionRepo: cfg.SessionRepo,
	}, nil
}

// GetPlayerStats returns one player's playtime and listening stats
func (s *service) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	u, err := s.userRepo.GetUser(ctx, &user.GetUserInput{UserID: input.UserID})
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	totals, err := s.sessionRepo.GetUserTotals(ctx, &session.GetUserTotalsInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	gameTotals, err := s.sessionRepo.GetUserGameTotals(ctx, &session.GetUserGameTotalsInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	out := &GetPlayerStatsOutput{
		User:          u,
		GameSeconds:   totals.GameSeconds,
		GameReadable:  FormatDuration(totals.GameSeconds),
		GamesPlayed:   totals.GamesPlayed,
		TrackSeconds:  totals.TrackSeconds,
		TrackReadable: FormatDuration(totals.TrackSeconds),
		TracksPlayed:  totals.TracksPlayed,
	}

	for _, total := range gameTotals.Totals {
		out.TopGames = append(out.TopGames, &PlayerGameStat{
			Name:     total.Name,
			Seconds:  total.TotalSeconds,
			Readable: FormatDuration(total.TotalSeconds),
		})
	}

	return out, nil
}

// GetGameDetails returns one game's totals and player breakdown
func (s *service) GetGameDetails(ctx context.Context, input *GetGameDetailsInput) (*GetGameDetailsOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and game name cannot be empty")
	}

	players, err := s.sessionRepo.GetGamePlayers(ctx, &session.GetGamePlayersInput{Name: input.Name})
	if err != nil {
		return nil, err
	}

	if len(players.Players) == 0 {
		return nil, ErrGameNotFound
	}

	out := &GetGameDetailsOutput{
		Name:          input.Name,
		UniquePlayers: int64(len(players.Players)),
	}

	for _, p := range players.Players {
		name := p.DisplayName
		if name == "" {
			name = p.Username
		}

		out.TotalSeconds += p.TotalSeconds
		out.Players = append(out.Players, &GamePlayerStat{
			Name:     name,
			Seconds:  p.TotalSeconds,
			Readable: FormatDuration(p.TotalSeconds),
		})
	}
	out.Readable = FormatDuration(out.TotalSeconds)

	return out, nil
}

// GetListeningStats returns one user's listening time and top tracks
func (s *service) GetListeningStats(ctx context.Context, input *GetListeningStatsInput) (*GetListeningStatsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	u, err := s.userRepo.GetUser(ctx, &user.GetUserInput{UserID: input.UserID})
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	trackTotals, err := s.sessionRepo.GetUserTrackTotals(ctx, &session.GetUserTrackTotalsInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	out := &GetListeningStatsOutput{
		User:         u,
		TracksPlayed: int64(len(trackTotals.Totals)),
	}

	for _, total := range trackTotals.Totals {
		out.TrackSeconds += total.TotalSeconds
		out.TopTracks = append(out.TopTracks, &PlayerTrackStat{
			Title:    total.Title,
			Artist:   total.Artist,
			Album:    total.Album,
			Seconds:  total.TotalSeconds,
			Readable: FormatDuration(total.TotalSeconds),
		})
	}
	out.TrackReadable = FormatDuration(out.TrackSeconds)

	return out, nil
}

// GetLeaderboard returns players ranked by total playtime
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	board, err := s.sessionRepo.GetLeaderboard(ctx, &session.GetLeaderboardInput{Limit: limit})
	if err != nil {
		return nil, err
	}

	out := &GetLeaderboardOutput{}
	for i, p := range board.Players {
		name := p.DisplayName
		if name == "" {
			name = p.Username
		}

		out.Entries = append(out.Entries, &LeaderboardEntry{
			Rank:              i + 1,
			UserID:            p.UserID,
			Name:              name,
			TotalSeconds:      p.TotalSeconds,
			Readable:          FormatDuration(p.TotalSeconds),
			GamesPlayed:       p.GamesPlayed,
			MostPlayedGame:    p.MostPlayedGame,
			MostPlayedSeconds: p.MostPlayedSeconds,
			TrackSeconds:      p.TrackSeconds,
			TracksPlayed:      p.TracksPlayed,
		})
	}

	return out, nil
}

// GetTopGames returns games ranked by total playtime
func (s *service) GetTopGames(ctx context.Context, input *GetTopGamesInput) (*GetTopGamesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	top, err := s.sessionRepo.GetTopGames(ctx, &session.GetTopGamesInput{Limit: limit})
	if err != nil {
		return nil, err
	}

	out := &GetTopGamesOutput{}
	for i, g := range top.Games {
		out.Games = append(out.Games, &TopGameEntry{
			Rank:          i + 1,
			Name:          g.Name,
			TotalSeconds:  g.TotalSeconds,
			Readable:      FormatDuration(g.TotalSeconds),
			UniquePlayers: g.UniquePlayers,
		})
	}

	return out, nil
}

// GetTopTracks returns tracks ranked by total listening time
func (s *service) GetTopTracks(ctx context.Context, input *GetTopTracksInput) (*GetTopTracksOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	top, err := s.sessionRepo.GetTopTracks(ctx, &session.GetTopTracksInput{Limit: limit})
	if err != nil {
		return nil, err
	}

	out := &GetTopTracksOutput{}
	for i, t := range top.Tracks {
		out.Tracks = append(out.Tracks, &TopTrackEntry{
			Rank:            i + 1,
			Title:           t.Title,
			Artist:          t.Artist,
			Album:           t.Album,
			TotalSeconds:    t.TotalSeconds,
			Readable:        FormatDuration(t.TotalSeconds),
			UniqueListeners: t.UniqueListeners,
		})
	}

	return out, nil
}

// GetOverview returns server-wide totals
func (s *service) GetOverview(ctx context.Context, input *GetOverviewInput) (*GetOverviewOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	overview, err := s.sessionRepo.GetOverview(ctx, &session.GetOverviewInput{})
	if err != nil {
		return nil, err
	}

	return &GetOverviewOutput{
		GameSeconds:   overview.GameSeconds,
		GameReadable:  FormatDuration(overview.GameSeconds),
		TrackSeconds:  overview.TrackSeconds,
		TrackReadable: FormatDuration(overview.TrackSeconds),
		ActivePlayers: overview.ActivePlayers,
		UniqueGames:   overview.UniqueGames,
		UniqueTracks:  overview.UniqueTracks,
	}, nil
}
