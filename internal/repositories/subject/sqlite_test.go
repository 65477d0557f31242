package subject

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/lanstats/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/lanstats/internal/common/uuid/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	_ "modernc.org/sqlite"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	mockUUID  *uuidMocks.MockUUID
	db        *sql.DB
	repo      Repository
	ctx       context.Context
	nextID    int
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()
	s.nextID = 0

	s.mockClock.EXPECT().Now().Return(time.Date(2025, 6, 7, 20, 0, 0, 0, time.UTC)).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		s.nextID++
		return fmt.Sprintf("id-%d", s.nextID)
	}).AnyTimes()

	db, err := sql.Open("sqlite", filepath.Join(s.T().TempDir(), "stats.db"))
	s.Require().NoError(err)
	s.db = db

	repo, err := NewSQLite(&Config{DB: db, Clock: s.mockClock, UUID: s.mockUUID})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.db.Close()
	s.mockCtrl.Finish()
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) TestGetOrCreateGameIsIdempotent() {
	first, err := s.repo.GetOrCreateGame(s.ctx, &GetOrCreateGameInput{Name: "Factorio"})
	s.Require().NoError(err)
	s.Equal("id-1", first.Game.ID)
	s.Equal("Factorio", first.Game.Name)
	s.Equal(time.Date(2025, 6, 7, 20, 0, 0, 0, time.UTC), first.Game.FirstSeen)

	second, err := s.repo.GetOrCreateGame(s.ctx, &GetOrCreateGameInput{Name: "Factorio"})
	s.Require().NoError(err)
	s.Equal(first.Game.ID, second.Game.ID)
}

func (s *SQLiteRepositoryTestSuite) TestDifferentGamesGetDifferentIDs() {
	first, err := s.repo.GetOrCreateGame(s.ctx, &GetOrCreateGameInput{Name: "Factorio"})
	s.Require().NoError(err)

	second, err := s.repo.GetOrCreateGame(s.ctx, &GetOrCreateGameInput{Name: "Dota 2"})
	s.Require().NoError(err)

	s.NotEqual(first.Game.ID, second.Game.ID)
}

func (s *SQLiteRepositoryTestSuite) TestGetOrCreateGameValidation() {
	_, err := s.repo.GetOrCreateGame(s.ctx, nil)
	s.Error(err)

	_, err = s.repo.GetOrCreateGame(s.ctx, &GetOrCreateGameInput{})
	s.Error(err)
}

func (s *SQLiteRepositoryTestSuite) TestGetOrCreateTrackIdentityIsTitleAndArtist() {
	first, err := s.repo.GetOrCreateTrack(s.ctx, &GetOrCreateTrackInput{
		Title:  "Holiday",
		Artist: "Green Day",
		Album:  "American Idiot",
	})
	s.Require().NoError(err)
	s.Equal("Holiday", first.Track.Title)
	s.Equal("Green Day", first.Track.Artist)
	s.Equal("American Idiot", first.Track.Album)

	// Same track under a different album resolves to the same subject and
	// keeps the first observed album
	second, err := s.repo.GetOrCreateTrack(s.ctx, &GetOrCreateTrackInput{
		Title:  "Holiday",
		Artist: "Green Day",
		Album:  "Greatest Hits",
	})
	s.Require().NoError(err)
	s.Equal(first.Track.ID, second.Track.ID)
	s.Equal("American Idiot", second.Track.Album)

	// Same title, different artist is a different subject
	third, err := s.repo.GetOrCreateTrack(s.ctx, &GetOrCreateTrackInput{
		Title:  "Holiday",
		Artist: "Madonna",
	})
	s.Require().NoError(err)
	s.NotEqual(first.Track.ID, third.Track.ID)
}

func (s *SQLiteRepositoryTestSuite) TestGetOrCreateTrackValidation() {
	_, err := s.repo.GetOrCreateTrack(s.ctx, nil)
	s.Error(err)

	_, err = s.repo.GetOrCreateTrack(s.ctx, &GetOrCreateTrackInput{Title: "Holiday"})
	s.Error(err)
}
