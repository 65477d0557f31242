package tracker

import (
	"github.com/KirkDiggler/lanstats/internal/models"
)

// openSlot is one open session for a (user, kind) pair. The subject ID
// rides along with the session ID so a repeated start for the subject
// already occupying the slot can be recognized and ignored.
type openSlot struct {
	sessionID string
	subjectID string
}

// sessionSlots holds the open session per activity kind for one user. An
// empty session ID means no open session of that kind.
type sessionSlots struct {
	game  openSlot
	track openSlot
}

// indexEntry is one open (user, kind, session) slot, used by the shutdown
// drain.
type indexEntry struct {
	userID    string
	kind      models.ActivityKind
	sessionID string
}

// activeSessionIndex maps user IDs to their open sessions. It is owned
// by the tracker service and only touched by the reconciler (before the
// consumer starts) and by the single consumer goroutine afterwards, so it
// needs no locking.
type activeSessionIndex struct {
	users map[string]*sessionSlots
}

func newActiveSessionIndex() *activeSessionIndex {
	return &activeSessionIndex{
		users: make(map[string]*sessionSlots),
	}
}

// get returns the open slot for (user, kind); a zero slot means none
func (i *activeSessionIndex) get(userID string, kind models.ActivityKind) openSlot {
	slots, ok := i.users[userID]
	if !ok {
		return openSlot{}
	}

	if kind == models.ActivityKindGame {
		return slots.game
	}
	return slots.track
}

// set records the open session and its subject for (user, kind)
func (i *activeSessionIndex) set(userID string, kind models.ActivityKind, sessionID, subjectID string) {
	slots, ok := i.users[userID]
	if !ok {
		slots = &sessionSlots{}
		i.users[userID] = slots
	}

	slot := openSlot{sessionID: sessionID, subjectID: subjectID}
	if kind == models.ActivityKindGame {
		slots.game = slot
	} else {
		slots.track = slot
	}
}

// clear empties the (user, kind) slot
func (i *activeSessionIndex) clear(userID string, kind models.ActivityKind) {
	i.set(userID, kind, "", "")
}

// openEntries returns every non-empty slot
func (i *activeSessionIndex) openEntries() []indexEntry {
	var entries []indexEntry
	for userID, slots := range i.users {
		if slots.game.sessionID != "" {
			entries = append(entries, indexEntry{userID: userID, kind: models.ActivityKindGame, sessionID: slots.game.sessionID})
		}
		if slots.track.sessionID != "" {
			entries = append(entries, indexEntry{userID: userID, kind: models.ActivityKindTrack, sessionID: slots.track.sessionID})
		}
	}
	return entries
}

// reset drops every entry
func (i *activeSessionIndex) reset() {
	i.users = make(map[string]*sessionSlots)
}
