package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/lanstats/internal/models"
	sessionRepo "github.com/KirkDiggler/lanstats/internal/repositories/session"
	sessionMocks "github.com/KirkDiggler/lanstats/internal/repositories/session/mocks"
	userRepo "github.com/KirkDiggler/lanstats/internal/repositories/user"
	userMocks "github.com/KirkDiggler/lanstats/internal/repositories/user/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatsServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUserRepo    *userMocks.MockRepository
	mockSessionRepo *sessionMocks.MockRepository
	svc             Service
	ctx             context.Context

	testUserID   string
	expectedUser *models.User
}

func (s *StatsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)

	s.ctx = context.Background()

	s.testUserID = "test-user-id"
	s.expectedUser = &models.User{
		ID:          s.testUserID,
		Username:    "tester",
		DisplayName: "Tester",
		LastUpdated: time.Date(2025, 6, 7, 20, 0, 0, 0, time.UTC),
	}

	svc, err := New(&Config{
		UserRepo:    s.mockUserRepo,
		SessionRepo: s.mockSessionRepo,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *StatsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}

func (s *StatsServiceTestSuite) TestGetPlayerStats_HappyPath() {
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), &userRepo.GetUserInput{UserID: s.testUserID}).
		Return(s.expectedUser, nil)
	s.mockSessionRepo.EXPECT().
		GetUserTotals(gomock.Any(), &sessionRepo.GetUserTotalsInput{UserID: s.testUserID}).
		Return(&sessionRepo.GetUserTotalsOutput{
			GameSeconds:  7440,
			GamesPlayed:  2,
			TrackSeconds: 180,
			TracksPlayed: 3,
		}, nil)
	s.mockSessionRepo.EXPECT().
		GetUserGameTotals(gomock.Any(), &sessionRepo.GetUserGameTotalsInput{UserID: s.testUserID}).
		Return(&sessionRepo.GetUserGameTotalsOutput{
			Totals: []*sessionRepo.GameTotal{
				{Name: "Factorio", TotalSeconds: 7200},
				{Name: "Dota 2", TotalSeconds: 240},
			},
		}, nil)

	out, err := s.svc.GetPlayerStats(s.ctx, &GetPlayerStatsInput{UserID: s.testUserID})

	s.Require().NoError(err)
	s.Equal(s.expectedUser, out.User)
	s.Equal(int64(7440), out.GameSeconds)
	s.Equal("2h 4m", out.GameReadable)
	s.Equal(int64(180), out.TrackSeconds)
	s.Equal("3m", out.TrackReadable)
	s.Require().Len(out.TopGames, 2)
	s.Equal("Factorio", out.TopGames[0].Name)
	s.Equal("2h 0m", out.TopGames[0].Readable)
}

func (s *StatsServiceTestSuite) TestGetPlayerStats_UnknownUser() {
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), gomock.Any()).
		Return(nil, userRepo.ErrUserNotFound)

	out, err := s.svc.GetPlayerStats(s.ctx, &GetPlayerStatsInput{UserID: s.testUserID})

	s.ErrorIs(err, ErrUserNotFound)
	s.Nil(out)
}

func (s *StatsServiceTestSuite) TestGetPlayerStats_Validation() {
	_, err := s.svc.GetPlayerStats(s.ctx, nil)
	s.Error(err)

	_, err = s.svc.GetPlayerStats(s.ctx, &GetPlayerStatsInput{})
	s.Error(err)
}

func (s *StatsServiceTestSuite) TestGetLeaderboard_RanksAndNames() {
	s.mockSessionRepo.EXPECT().
		GetLeaderboard(gomock.Any(), &sessionRepo.GetLeaderboardInput{Limit: 10}).
		Return(&sessionRepo.GetLeaderboardOutput{
			Players: []*sessionRepo.PlayerTotals{
				{UserID: "user-a", Username: "alpha", DisplayName: "Alpha", TotalSeconds: 4200, MostPlayedGame: "Factorio"},
				{UserID: "user-b", Username: "bravo", TotalSeconds: 1800},
			},
		}, nil)

	out, err := s.svc.GetLeaderboard(s.ctx, &GetLeaderboardInput{})

	s.Require().NoError(err)
	s.Require().Len(out.Entries, 2)
	s.Equal(1, out.Entries[0].Rank)
	s.Equal("Alpha", out.Entries[0].Name)
	s.Equal("1h 10m", out.Entries[0].Readable)
	s.Equal(2, out.Entries[1].Rank)

	// Falls back to the username when no display name is set
	s.Equal("bravo", out.Entries[1].Name)
}

func (s *StatsServiceTestSuite) TestGetTopGames_PassesLimit() {
	s.mockSessionRepo.EXPECT().
		GetTopGames(gomock.Any(), &sessionRepo.GetTopGamesInput{Limit: 3}).
		Return(&sessionRepo.GetTopGamesOutput{
			Games: []*sessionRepo.GameLeader{
				{Name: "Factorio", TotalSeconds: 5400, UniquePlayers: 2},
			},
		}, nil)

	out, err := s.svc.GetTopGames(s.ctx, &GetTopGamesInput{Limit: 3})

	s.Require().NoError(err)
	s.Require().Len(out.Games, 1)
	s.Equal(1, out.Games[0].Rank)
	s.Equal("1h 30m", out.Games[0].Readable)
	s.Equal(int64(2), out.Games[0].UniquePlayers)
}

func (s *StatsServiceTestSuite) TestGetTopTracks_DefaultLimit() {
	s.mockSessionRepo.EXPECT().
		GetTopTracks(gomock.Any(), &sessionRepo.GetTopTracksInput{Limit: 10}).
		Return(&sessionRepo.GetTopTracksOutput{
			Tracks: []*sessionRepo.TrackLeader{
				{Title: "Holiday", Artist: "Green Day", Album: "American Idiot", TotalSeconds: 420, UniqueListeners: 2},
			},
		}, nil)

	out, err := s.svc.GetTopTracks(s.ctx, &GetTopTracksInput{})

	s.Require().NoError(err)
	s.Require().Len(out.Tracks, 1)
	s.Equal("Holiday", out.Tracks[0].Title)
	s.Equal("7m", out.Tracks[0].Readable)
}

func (s *StatsServiceTestSuite) TestGetOverview() {
	s.mockSessionRepo.EXPECT().
		GetOverview(gomock.Any(), &sessionRepo.GetOverviewInput{}).
		Return(&sessionRepo.GetOverviewOutput{
			GameSeconds:   3600,
			TrackSeconds:  300,
			ActivePlayers: 2,
			UniqueGames:   1,
			UniqueTracks:  1,
		}, nil)

	out, err := s.svc.GetOverview(s.ctx, &GetOverviewInput{})

	s.Require().NoError(err)
	s.Equal("1h 0m", out.GameReadable)
	s.Equal("5m", out.TrackReadable)
	s.Equal(int64(2), out.ActivePlayers)
}

func (s *StatsServiceTestSuite) TestRepositoryErrorsPropagate() {
	s.mockSessionRepo.EXPECT().
		GetLeaderboard(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("disk full"))

	out, err := s.svc.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
	s.Error(err)
	s.Nil(out)
}

func (s *StatsServiceTestSuite) TestGetGameDetails_HappyPath() {
	s.mockSessionRepo.EXPECT().
		GetGamePlayers(gomock.Any(), &sessionRepo.GetGamePlayersInput{Name: "Factorio"}).
		Return(&sessionRepo.GetGamePlayersOutput{
			Players: []*sessionRepo.GamePlayer{
				{UserID: "user-a", Username: "alice", DisplayName: "Alice", TotalSeconds: 7200},
				{UserID: "user-b", Username: "bob", TotalSeconds: 1800},
			},
		}, nil)

	out, err := s.svc.GetGameDetails(s.ctx, &GetGameDetailsInput{Name: "Factorio"})

	s.Require().NoError(err)
	s.Equal("Factorio", out.Name)
	s.Equal(int64(9000), out.TotalSeconds)
	s.Equal("2h 30m", out.Readable)
	s.Equal(int64(2), out.UniquePlayers)
	s.Require().Len(out.Players, 2)
	s.Equal("Alice", out.Players[0].Name)
	s.Equal("2h 0m", out.Players[0].Readable)
	// Display name falls back to the username
	s.Equal("bob", out.Players[1].Name)
}

func (s *StatsServiceTestSuite) TestGetGameDetails_UnknownGame() {
	s.mockSessionRepo.EXPECT().
		GetGamePlayers(gomock.Any(), gomock.Any()).
		Return(&sessionRepo.GetGamePlayersOutput{}, nil)

	out, err := s.svc.GetGameDetails(s.ctx, &GetGameDetailsInput{Name: "Minesweeper"})

	s.ErrorIs(err, ErrGameNotFound)
	s.Nil(out)
}

func (s *StatsServiceTestSuite) TestGetGameDetails_Validation() {
	_, err := s.svc.GetGameDetails(s.ctx, nil)
	s.Error(err)

	_, err = s.svc.GetGameDetails(s.ctx, &GetGameDetailsInput{})
	s.Error(err)
}

func (s *StatsServiceTestSuite) TestGetListeningStats_HappyPath() {
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), &userRepo.GetUserInput{UserID: s.testUserID}).
		Return(s.expectedUser, nil)
	s.mockSessionRepo.EXPECT().
		GetUserTrackTotals(gomock.Any(), &sessionRepo.GetUserTrackTotalsInput{UserID: s.testUserID}).
		Return(&sessionRepo.GetUserTrackTotalsOutput{
			Totals: []*sessionRepo.TrackTotal{
				{Title: "Longview", Artist: "Green Day", Album: "Dookie", TotalSeconds: 600},
				{Title: "Holiday", Artist: "Green Day", Album: "American Idiot", TotalSeconds: 420},
			},
		}, nil)

	out, err := s.svc.GetListeningStats(s.ctx, &GetListeningStatsInput{UserID: s.testUserID})

	s.Require().NoError(err)
	s.Equal(s.expectedUser, out.User)
	s.Equal(int64(1020), out.TrackSeconds)
	s.Equal("17m", out.TrackReadable)
	s.Equal(int64(2), out.TracksPlayed)
	s.Require().Len(out.TopTracks, 2)
	s.Equal("Longview", out.TopTracks[0].Title)
	s.Equal("10m", out.TopTracks[0].Readable)
}

func (s *StatsServiceTestSuite) TestGetListeningStats_UnknownUser() {
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), gomock.Any()).
		Return(nil, userRepo.ErrUserNotFound)

	out, err := s.svc.GetListeningStats(s.ctx, &GetListeningStatsInput{UserID: s.testUserID})

	s.ErrorIs(err, ErrUserNotFound)
	s.Nil(out)
}

func (s *StatsServiceTestSuite) TestGetListeningStats_Validation() {
	_, err := s.svc.GetListeningStats(s.ctx, nil)
	s.Error(err)

	_, err = s.svc.GetListeningStats(s.ctx, &GetListeningStatsInput{})
	s.Error(err)
}
