package tracker

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/lanstats/internal/common/clock"
	"github.com/KirkDiggler/lanstats/internal/models"
	"github.com/KirkDiggler/lanstats/internal/repositories/session"
	"github.com/KirkDiggler/lanstats/internal/repositories/subject"
	"github.com/KirkDiggler/lanstats/internal/repositories/user"
)

const (
	defaultRecoveryWindow     = 5 * time.Minute
	defaultMaxSessionDuration = 12 * time.Hour
	defaultQueueSize          = 1024
)

// service implements the Service interface. All session state mutation goes
// through here: live transitions, the startup reconciliation and the
// shutdown drain.
type service struct {
	userRepo    user.Repository
	subjectRepo subject.Repository
	sessionRepo session.Repository
	clock       clock.Clock

	recoveryWindow     time.Duration
	maxSessionDuration time.Duration

	// index is mutated by the reconciler before the consumer starts and by
	// the consumer goroutine afterwards, never concurrently
	index *activeSessionIndex

	events chan *PresenceUpdateInput
	done   chan struct{}

	mu         sync.Mutex
	accepting  bool
	started    bool
	reconciled bool
	drainOnce  sync.Once
}

// New creates a new tracker service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.UserRepo == nil {
		return nil, errors.New("user repository cannot be nil")
	}

	if cfg.SubjectRepo == nil {
		return nil, errors.New("subject repository cannot be nil")
	}

	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	recoveryWindow := cfg.RecoveryWindow
	if recoveryWindow <= 0 {
		recoveryWindow = defaultRecoveryWindow
	}

	maxSessionDuration := cfg.MaxSessionDuration
	if maxSessionDuration <= 0 {
		maxSessionDuration = defaultMaxSessionDuration
	}

	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	return &service{
		userRepo:           cfg.UserRepo,
		subjectRepo:        cfg.SubjectRepo,
		sessionRepo:        cfg.SessionRepo,
		clock:              clk,
		recoveryWindow:     recoveryWindow,
		maxSessionDuration: maxSessionDuration,
		index:              newActiveSessionIndex(),
		events:             make(chan *PresenceUpdateInput, queueSize),
		done:               make(chan struct{}),
		accepting:          true,
	}, nil
}

// QueuePresenceUpdate enqueues one presence change. Events queued before
// Start are processed once the consumer runs, which keeps reconciliation
// strictly ahead of live processing.
func (s *service) QueuePresenceUpdate(input *PresenceUpdateInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.accepting {
		return ErrNotAccepting
	}

	select {
	case s.events <- input:
		return nil
	default:
		// Dropping is preferable to blocking the gateway handler; the
		// missed transition is repaired by the next snapshot diff or by
		// reconciliation at next startup.
		log.Printf("presence queue full, dropping update for user %s", input.UserID)
		return ErrQueueFull
	}
}

// Start launches the single consumer goroutine
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true

	go s.consume(ctx)

	return nil
}

func (s *service) consume(ctx context.Context) {
	defer close(s.done)

	for input := range s.events {
		s.handlePresenceUpdate(ctx, input)
	}
}

// Stop stops accepting events, flushes the queue, then closes every open
// session. Idempotent.
func (s *service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.accepting {
		s.mu.Unlock()
		return nil
	}
	s.accepting = false
	started := s.started
	s.mu.Unlock()

	close(s.events)

	if started {
		<-s.done
	} else {
		// Consumer never ran; flush whatever was queued so those
		// transitions are not silently lost.
		for input := range s.events {
			s.handlePresenceUpdate(ctx, input)
		}
	}

	s.drainSessions(ctx)

	return nil
}

// handlePresenceUpdate applies one before/after pair: upserts the user,
// diffs the snapshots and applies the resulting transitions in order.
// Failures are logged and never retried; reconciliation at next startup
// self-heals.
func (s *service) handlePresenceUpdate(ctx context.Context, input *PresenceUpdateInput) {
	if input == nil || input.UserID == "" {
		return
	}

	err := s.userRepo.UpsertUser(ctx, &user.UpsertUserInput{
		UserID:      input.UserID,
		Username:    input.Username,
		DisplayName: input.DisplayName,
		AvatarURL:   input.AvatarURL,
	})
	if err != nil {
		log.Printf("failed to upsert user %s: %v", input.UserID, err)
	}

	for _, t := range diffSnapshots(input.Before, input.After) {
		if t.start {
			subjectID, err := s.resolveSubject(ctx, t)
			if err != nil {
				log.Printf("failed to resolve %s subject %q for user %s: %v", t.kind, t.subjectLabel(), input.UserID, err)
				continue
			}
			s.startSession(ctx, input.UserID, t, subjectID)
		} else {
			s.stopSession(ctx, input.UserID, t)
		}
	}
}

// resolveSubject get-or-creates the subject row for a transition
func (s *service) resolveSubject(ctx context.Context, t transition) (string, error) {
	if t.kind == models.ActivityKindGame {
		out, err := s.subjectRepo.GetOrCreateGame(ctx, &subject.GetOrCreateGameInput{
			Name: t.game.Name,
		})
		if err != nil {
			return "", err
		}
		return out.Game.ID, nil
	}

	out, err := s.subjectRepo.GetOrCreateTrack(ctx, &subject.GetOrCreateTrackInput{
		Title:  t.track.Title,
		Artist: t.track.Artist,
		Album:  t.track.Album,
	})
	if err != nil {
		return "", err
	}
	return out.Track.ID, nil
}

// startSession opens a session and records its ID in the index. A store
// failure leaves the index untouched: there is no session ID to close
// later, and no retry happens here.
func (s *service) startSession(ctx context.Context, userID string, t transition, subjectID string) error {
	// At most one open session per (user, kind). A start for the subject
	// already occupying the slot is a repeated observation of the same
	// activity, not a new session; the open row stands. Updates queued
	// before the reconciler seeded the index arrive with a nil before
	// snapshot and land here against the session it just recovered.
	if existing := s.index.get(userID, t.kind); existing.sessionID != "" {
		if existing.subjectID == subjectID {
			return nil
		}

		// The differ emits the stop first on a subject switch, so a
		// different subject here means an earlier close was lost; close it
		// before opening the replacement.
		if err := s.sessionRepo.EndSession(ctx, &session.EndSessionInput{SessionID: existing.sessionID}); err != nil {
			log.Printf("failed to close superseded %s session %s for user %s: %v", t.kind, existing.sessionID, userID, err)
		}
		s.index.clear(userID, t.kind)
	}

	out, err := s.sessionRepo.StartSession(ctx, &session.StartSessionInput{
		UserID:    userID,
		SubjectID: subjectID,
		Kind:      t.kind,
	})
	if err != nil {
		log.Printf("failed to start %s session for user %s (%s): %v", t.kind, userID, t.subjectLabel(), err)
		return err
	}

	s.index.set(userID, t.kind, out.SessionID, subjectID)
	log.Printf("user %s: started %s (%s session %s)", userID, t.subjectLabel(), t.kind, out.SessionID)

	return nil
}

// stopSession closes the open session recorded for (user, kind). An empty
// slot is a benign no-op: the start write may have failed earlier, and no
// session is fabricated for it.
func (s *service) stopSession(ctx context.Context, userID string, t transition) {
	sessionID := s.index.get(userID, t.kind).sessionID
	if sessionID == "" {
		return
	}

	if err := s.sessionRepo.EndSession(ctx, &session.EndSessionInput{SessionID: sessionID}); err != nil {
		// Slot left as-is; the row is still open in the store and the
		// shutdown drain or next reconciliation will close it.
		log.Printf("failed to end %s session %s for user %s (%s): %v", t.kind, sessionID, userID, t.subjectLabel(), err)
		return
	}

	s.index.clear(userID, t.kind)
	log.Printf("user %s: stopped %s (%s session %s)", userID, t.subjectLabel(), t.kind, sessionID)
}

// drainSessions closes every open slot. One failing close does not prevent
// attempting the rest; runs at most once.
func (s *service) drainSessions(ctx context.Context) {
	s.drainOnce.Do(func() {
		entries := s.index.openEntries()
		if len(entries) > 0 {
			log.Printf("closing %d open session(s)", len(entries))
		}

		for _, e := range entries {
			if err := s.sessionRepo.EndSession(ctx, &session.EndSessionInput{SessionID: e.sessionID}); err != nil {
				log.Printf("failed to close %s session %s for user %s: %v", e.kind, e.sessionID, e.userID, err)
			}
		}

		s.index.reset()
	})
}
