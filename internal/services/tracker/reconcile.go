package tracker

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/lanstats/internal/models"
	"github.com/KirkDiggler/lanstats/internal/repositories/session"
	"github.com/KirkDiggler/lanstats/internal/repositories/user"
)

// orphanKey identifies an orphaned session for recovery matching. A live
// (user, subject) pair that matches a recent orphan resumes that session
// instead of opening a duplicate.
type orphanKey struct {
	userID    string
	subjectID string
}

// Reconcile repairs sessions left open by an unclean prior shutdown. Runs
// once, synchronously, before live event processing:
//
//  1. Open sessions older than the recovery window are stale. They are
//     closed with duration = min(elapsed, cap): a bound, not an estimate,
//     because a long-idle row cannot be trusted for exact accounting.
//  2. The presence source is scanned for every non-bot user's current
//     activity.
//  3. Live activity matching a recent orphan by (user, subject) recovers
//     it: the original session ID and start time are kept and the ID is
//     re-registered in the index. Unmatched live activity starts a fresh
//     session through the normal path.
//  4. Recent orphans nobody is engaged in anymore are closed with their
//     exact duration, which is trustworthy inside the short window.
//
// A failed scan aborts the pass; the caller must not begin live processing
// with unknown state. Individual row closes that fail are logged and left
// for the next reconciliation.
func (s *service) Reconcile(ctx context.Context, input *ReconcileInput) (*ReconcileOutput, error) {
	if input == nil || input.Source == nil {
		return nil, errors.New("input and presence source cannot be nil")
	}

	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil, ErrAlreadyStarted
	}
	if s.reconciled {
		s.mu.Unlock()
		return nil, ErrAlreadyReconciled
	}
	s.reconciled = true
	s.mu.Unlock()

	out := &ReconcileOutput{}

	// One cutoff instant for both queries so stale and recent partition
	// the open sessions exactly: a session starting while this pass runs
	// must land in one of the two sets, never in neither.
	cutoff := s.clock.Now().Add(-s.recoveryWindow)

	stale, err := s.sessionRepo.ListOpenSessions(ctx, &session.ListOpenSessionsInput{
		StartedAtOrBefore: cutoff,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list stale open sessions: %w", err)
	}

	for _, o := range stale.Sessions {
		err := s.sessionRepo.CloseOrphanWithCap(ctx, &session.CloseOrphanWithCapInput{
			SessionID: o.ID,
			Cap:       s.maxSessionDuration,
		})
		if err != nil {
			log.Printf("failed to close stale %s session %s for user %s: %v", o.Kind, o.ID, o.UserID, err)
			continue
		}
		out.Swept++
	}

	recent, err := s.sessionRepo.ListRecentOpenSessions(ctx, &session.ListRecentOpenSessionsInput{
		StartedAfter: cutoff,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list recent open sessions: %w", err)
	}

	orphans := make(map[orphanKey]*models.Session, len(recent.Sessions))
	for _, o := range recent.Sessions {
		orphans[orphanKey{userID: o.UserID, subjectID: o.SubjectID}] = o
	}

	members, err := input.Source.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("presence scan failed: %w", err)
	}

	for _, m := range members {
		if m == nil || m.UserID == "" {
			continue
		}

		err := s.userRepo.UpsertUser(ctx, &user.UpsertUserInput{
			UserID:      m.UserID,
			Username:    m.Username,
			DisplayName: m.DisplayName,
			AvatarURL:   m.AvatarURL,
		})
		if err != nil {
			log.Printf("failed to upsert user %s: %v", m.UserID, err)
		}

		// Reading a live snapshot is diffing it against nothing: every
		// current activity comes out as a start transition.
		for _, t := range diffSnapshots(nil, m.Snapshot) {
			subjectID, err := s.resolveSubject(ctx, t)
			if err != nil {
				log.Printf("failed to resolve %s subject %q for user %s: %v", t.kind, t.subjectLabel(), m.UserID, err)
				continue
			}

			key := orphanKey{userID: m.UserID, subjectID: subjectID}
			if orphan, ok := orphans[key]; ok {
				// Same user, same subject: the session survived the
				// restart. Keep the original row and start time.
				s.index.set(m.UserID, t.kind, orphan.ID, subjectID)
				delete(orphans, key)
				out.Recovered++
				log.Printf("recovered %s session %s for user %s (%s)", t.kind, orphan.ID, m.UserID, t.subjectLabel())
				continue
			}

			if err := s.startSession(ctx, m.UserID, t, subjectID); err == nil {
				out.Started++
			}
		}
	}

	for _, o := range orphans {
		err := s.sessionRepo.EndSession(ctx, &session.EndSessionInput{SessionID: o.ID})
		if err != nil {
			log.Printf("failed to close orphaned %s session %s for user %s: %v", o.Kind, o.ID, o.UserID, err)
			continue
		}
		out.Closed++
	}

	log.Printf("reconciliation: %d stale capped, %d recovered, %d started, %d closed",
		out.Swept, out.Recovered, out.Started, out.Closed)

	return out, nil
}
