package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/lanstats/internal/models"
	sessionRepo "github.com/KirkDiggler/lanstats/internal/repositories/session"
	sessionMocks "github.com/KirkDiggler/lanstats/internal/repositories/session/mocks"
	subjectRepo "github.com/KirkDiggler/lanstats/internal/repositories/subject"
	subjectMocks "github.com/KirkDiggler/lanstats/internal/repositories/subject/mocks"
	userRepo "github.com/KirkDiggler/lanstats/internal/repositories/user"
	userMocks "github.com/KirkDiggler/lanstats/internal/repositories/user/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TrackerServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUserRepo    *userMocks.MockRepository
	mockSubjectRepo *subjectMocks.MockRepository
	mockSessionRepo *sessionMocks.MockRepository
	svc             *service
	ctx             context.Context

	// Test data
	testUserID    string
	testGameName  string
	testSubjectID string
	testSessionID string
	testTime      time.Time

	gameSnapshot  *models.Snapshot
	trackSnapshot *models.Snapshot

	upsertInput *userRepo.UpsertUserInput
}

func (s *TrackerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.mockSubjectRepo = subjectMocks.NewMockRepository(s.mockCtrl)
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)

	s.ctx = context.Background()

	s.testUserID = "test-user-id"
	s.testGameName = "Factorio"
	s.testSubjectID = "test-subject-id"
	s.testSessionID = "test-session-id"
	s.testTime = time.Date(2025, 6, 7, 20, 0, 0, 0, time.UTC)

	s.gameSnapshot = &models.Snapshot{Game: &models.GameActivity{Name: s.testGameName}}
	s.trackSnapshot = &models.Snapshot{Track: models.NewTrackActivity("Holiday", "Green Day", "American Idiot")}

	s.upsertInput = &userRepo.UpsertUserInput{
		UserID:   s.testUserID,
		Username: "tester",
	}

	svc, err := New(&Config{
		UserRepo:    s.mockUserRepo,
		SubjectRepo: s.mockSubjectRepo,
		SessionRepo: s.mockSessionRepo,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *TrackerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrackerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrackerServiceTestSuite))
}

func (s *TrackerServiceTestSuite) expectUpsert() {
	s.mockUserRepo.EXPECT().
		UpsertUser(gomock.Any(), s.upsertInput).
		Return(nil)
}

func (s *TrackerServiceTestSuite) expectResolveGame() {
	s.mockSubjectRepo.EXPECT().
		GetOrCreateGame(gomock.Any(), &subjectRepo.GetOrCreateGameInput{Name: s.testGameName}).
		Return(&subjectRepo.GetOrCreateGameOutput{
			Game: &models.Game{ID: s.testSubjectID, Name: s.testGameName, FirstSeen: s.testTime},
		}, nil)
}

func (s *TrackerServiceTestSuite) gameUpdate(before, after *models.Snapshot) *PresenceUpdateInput {
	return &PresenceUpdateInput{
		UserID:   s.testUserID,
		Username: "tester",
		Before:   before,
		After:    after,
	}
}

func (s *TrackerServiceTestSuite) TestNew_Validation() {
	cases := []struct {
		name string
		cfg  *Config
	}{
		{name: "nil config", cfg: nil},
		{name: "missing user repo", cfg: &Config{SubjectRepo: s.mockSubjectRepo, SessionRepo: s.mockSessionRepo}},
		{name: "missing subject repo", cfg: &Config{UserRepo: s.mockUserRepo, SessionRepo: s.mockSessionRepo}},
		{name: "missing session repo", cfg: &Config{UserRepo: s.mockUserRepo, SubjectRepo: s.mockSubjectRepo}},
	}

	for _, tc := range cases {
		svc, err := New(tc.cfg)
		s.Error(err, tc.name)
		s.Nil(svc, tc.name)
	}
}

func (s *TrackerServiceTestSuite) TestGameStartOpensSessionAndIndexesIt() {
	s.expectUpsert()
	s.expectResolveGame()
	s.mockSessionRepo.EXPECT().
		StartSession(gomock.Any(), &sessionRepo.StartSessionInput{
			UserID:    s.testUserID,
			SubjectID: s.testSubjectID,
			Kind:      models.ActivityKindGame,
		}).
		Return(&sessionRepo.StartSessionOutput{SessionID: s.testSessionID, StartTime: s.testTime}, nil)

	s.svc.handlePresenceUpdate(s.ctx, s.gameUpdate(nil, s.gameSnapshot))

	s.Equal(s.testSessionID, s.svc.index.get(s.testUserID, models.ActivityKindGame).sessionID)
}

func (s *TrackerServiceTestSuite) TestGameStopClosesIndexedSession() {
	s.svc.index.set(s.testUserID, models.ActivityKindGame, s.testSessionID, s.testSubjectID)

	s.expectUpsert()
	s.mockSessionRepo.EXPECT().
		EndSession(gomock.Any(), &sessionRepo.EndSessionInput{SessionID: s.testSessionID}).
		Return(nil)

	s.svc.handlePresenceUpdate(s.ctx, s.gameUpdate(s.gameSnapshot, nil))

	s.Equal("", s.svc.index.get(s.testUserID, models.ActivityKindGame).sessionID)
}

func (s *TrackerServiceTestSuite) TestStopWithEmptySlotIsNoOp() {
	// No EndSession expectation: a stop without a tracked session must not
	// touch the store
	s.expectUpsert()

	s.svc.handlePresenceUpdate(s.ctx, s.gameUpdate(s.gameSnapshot, nil))
}

func (s *TrackerServiceTestSuite) TestFailedStartLeavesIndexEmpty() {
	s.expectUpsert()
	s.expectResolveGame()
	s.mockSessionRepo.EXPECT().
		StartSession(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("disk full"))

	s.svc.handlePresenceUpdate(s.ctx, s.gameUpdate(nil, s.gameSnapshot))

	s.Equal("", s.svc.index.get(s.testUserID, models.ActivityKindGame).sessionID)

	// The later stop finds nothing to close
	s.expectUpsert()
	s.svc.handlePresenceUpdate(s.ctx, s.gameUpdate(s.gameSnapshot, nil))
}

func (s *TrackerServiceTestSuite) TestFailedStopKeepsSlot() {
	s.svc.index.set(s.testUserID, models.ActivityKindGame, s.testSessionID, s.testSubjectID)

	s.expectUpsert()
	s.mockSessionRepo.EXPECT().
		EndSession(gomock.Any(), &sessionRepo.EndSessionInput{SessionID: s.testSessionID}).
		Return(errors.New("disk full"))

	s.svc.handlePresenceUpdate(s.ctx, s.gameUpdate(s.gameSnapshot, nil))

	// Slot survives so the shutdown drain can retry the close
	s.Equal(s.testSessionID, s.svc.index.get(s.testUserID, models.ActivityKindGame).sessionID)
}

func (s *TrackerServiceTestSuite) TestGameSwitchClosesBeforeOpening() {
	s.svc.index.set(s.testUserID, models.ActivityKindGame, "old-session-id", s.testSubjectID)

	s.expectUpsert()
	s.mockSubjectRepo.EXPECT().
		GetOrCreateGame(gomock.Any(), &subjectRepo.GetOrCreateGameInput{Name: "Dota 2"}).
		Return(&subjectRepo.GetOrCreateGameOutput{
			Game: &models.Game{ID: "other-subject-id", Name: "Dota 2", FirstSeen: s.testTime},
		}, nil)

	gomock.InOrder(
		s.mockSessionRepo.EXPECT().
			EndSession(gomock.Any(), &sessionRepo.EndSessionInput{SessionID: "old-session-id"}).
			Return(nil),
		s.mockSessionRepo.EXPECT().
			StartSession(gomock.Any(), &sessionRepo.StartSessionInput{
				UserID:    s.testUserID,
				SubjectID: "other-subject-id",
				Kind:      models.ActivityKindGame,
			}).
			Return(&sessionRepo.StartSessionOutput{SessionID: "new-session-id", StartTime: s.testTime}, nil),
	)

	s.svc.handlePresenceUpdate(s.ctx, s.gameUpdate(
		s.gameSnapshot,
		&models.Snapshot{Game: &models.GameActivity{Name: "Dota 2"}},
	))

	s.Equal("new-session-id", s.svc.index.get(s.testUserID, models.ActivityKindGame).sessionID)
}

func (s *TrackerServiceTestSuite) TestStartWithOccupiedSlotClosesSupersededSession() {
	// A lost stop leaves a slot holding a different subject; the next
	// start closes it first
	s.svc.index.set(s.testUserID, models.ActivityKindGame, "stale-session-id", "stale-subject-id")

	s.expectUpsert()
	s.expectResolveGame()

	gomock.InOrder(
		s.mockSessionRepo.EXPECT().
			EndSession(gomock.Any(), &sessionRepo.EndSessionInput{SessionID: "stale-session-id"}).
			Return(nil),
		s.mockSessionRepo.EXPECT().
			StartSession(gomock.Any(), gomock.Any()).
			Return(&sessionRepo.StartSessionOutput{SessionID: s.testSessionID, StartTime: s.testTime}, nil),
	)

	s.svc.handlePresenceUpdate(s.ctx, s.gameUpdate(nil, s.gameSnapshot))

	s.Equal(s.testSessionID, s.svc.index.get(s.testUserID, models.ActivityKindGame).sessionID)
}

func (s *TrackerServiceTestSuite) TestStartForSubjectAlreadyOpenIsNoOp() {
	// A nil before snapshot can report an activity already being tracked,
	// for example an update queued before the index was seeded. The open
	// session must stand; no row is closed and no row is opened.
	s.svc.index.set(s.testUserID, models.ActivityKindGame, s.testSessionID, s.testSubjectID)

	s.expectUpsert()
	s.expectResolveGame()

	s.svc.handlePresenceUpdate(s.ctx, s.gameUpdate(nil, s.gameSnapshot))

	s.Equal(s.testSessionID, s.svc.index.get(s.testUserID, models.ActivityKindGame).sessionID)
}

func (s *TrackerServiceTestSuite) TestUpsertFailureDoesNotBlockTransitions() {
	s.mockUserRepo.EXPECT().
		UpsertUser(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))
	s.expectResolveGame()
	s.mockSessionRepo.EXPECT().
		StartSession(gomock.Any(), gomock.Any()).
		Return(&sessionRepo.StartSessionOutput{SessionID: s.testSessionID, StartTime: s.testTime}, nil)

	s.svc.handlePresenceUpdate(s.ctx, s.gameUpdate(nil, s.gameSnapshot))

	s.Equal(s.testSessionID, s.svc.index.get(s.testUserID, models.ActivityKindGame).sessionID)
}

func (s *TrackerServiceTestSuite) TestResolveFailureSkipsStart() {
	s.expectUpsert()
	s.mockSubjectRepo.EXPECT().
		GetOrCreateGame(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("disk full"))

	s.svc.handlePresenceUpdate(s.ctx, s.gameUpdate(nil, s.gameSnapshot))

	s.Equal("", s.svc.index.get(s.testUserID, models.ActivityKindGame).sessionID)
}

func (s *TrackerServiceTestSuite) TestQueuePresenceUpdate_Validation() {
	s.Error(s.svc.QueuePresenceUpdate(nil))
	s.Error(s.svc.QueuePresenceUpdate(&PresenceUpdateInput{}))
}

func (s *TrackerServiceTestSuite) TestQueueFullReturnsError() {
	svc, err := New(&Config{
		UserRepo:    s.mockUserRepo,
		SubjectRepo: s.mockSubjectRepo,
		SessionRepo: s.mockSessionRepo,
		QueueSize:   1,
	})
	s.Require().NoError(err)

	s.NoError(svc.QueuePresenceUpdate(s.gameUpdate(nil, s.gameSnapshot)))
	s.ErrorIs(svc.QueuePresenceUpdate(s.gameUpdate(nil, s.gameSnapshot)), ErrQueueFull)
}

func (s *TrackerServiceTestSuite) TestStopFlushesQueuedEventsAndDrains() {
	s.expectUpsert()
	s.expectResolveGame()
	s.mockSessionRepo.EXPECT().
		StartSession(gomock.Any(), gomock.Any()).
		Return(&sessionRepo.StartSessionOutput{SessionID: s.testSessionID, StartTime: s.testTime}, nil)

	// The drain closes the session the flushed event just opened
	s.mockSessionRepo.EXPECT().
		EndSession(gomock.Any(), &sessionRepo.EndSessionInput{SessionID: s.testSessionID}).
		Return(nil)

	s.Require().NoError(s.svc.QueuePresenceUpdate(s.gameUpdate(nil, s.gameSnapshot)))
	s.Require().NoError(s.svc.Stop(s.ctx))

	s.Empty(s.svc.index.openEntries())
}

func (s *TrackerServiceTestSuite) TestStopIsIdempotent() {
	s.svc.index.set(s.testUserID, models.ActivityKindGame, s.testSessionID, s.testSubjectID)

	s.mockSessionRepo.EXPECT().
		EndSession(gomock.Any(), &sessionRepo.EndSessionInput{SessionID: s.testSessionID}).
		Return(nil).
		Times(1)

	s.Require().NoError(s.svc.Stop(s.ctx))
	s.Require().NoError(s.svc.Stop(s.ctx))
}

func (s *TrackerServiceTestSuite) TestQueueAfterStopIsRejected() {
	s.Require().NoError(s.svc.Stop(s.ctx))

	s.ErrorIs(s.svc.QueuePresenceUpdate(s.gameUpdate(nil, s.gameSnapshot)), ErrNotAccepting)
}

func (s *TrackerServiceTestSuite) TestStartTwiceFails() {
	s.Require().NoError(s.svc.Start(s.ctx))
	s.ErrorIs(s.svc.Start(s.ctx), ErrAlreadyStarted)

	s.Require().NoError(s.svc.Stop(s.ctx))
}

func (s *TrackerServiceTestSuite) TestDrainContinuesPastFailures() {
	s.svc.index.set("user-a", models.ActivityKindGame, "session-a", "subject-a")
	s.svc.index.set("user-b", models.ActivityKindGame, "session-b", "subject-b")

	s.mockSessionRepo.EXPECT().
		EndSession(gomock.Any(), &sessionRepo.EndSessionInput{SessionID: "session-a"}).
		Return(errors.New("disk full"))
	s.mockSessionRepo.EXPECT().
		EndSession(gomock.Any(), &sessionRepo.EndSessionInput{SessionID: "session-b"}).
		Return(nil)

	s.Require().NoError(s.svc.Stop(s.ctx))

	s.Empty(s.svc.index.openEntries())
}
