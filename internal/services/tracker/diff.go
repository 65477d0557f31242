package tracker

import (
	"fmt"

	"github.com/KirkDiggler/lanstats/internal/models"
)

// transition is one start or stop event for a single activity kind, derived
// from a (before, after) snapshot pair
type transition struct {
	kind  models.ActivityKind
	start bool

	// game is set for game transitions, track for track transitions
	game  *models.GameActivity
	track *models.TrackActivity
}

// subjectLabel describes the transition's subject for log lines
func (t transition) subjectLabel() string {
	if t.kind == models.ActivityKindGame {
		return t.game.Name
	}
	return fmt.Sprintf("%s - %s", t.track.Title, t.track.Artist)
}

// diffSnapshots converts a (before, after) snapshot pair into ordered
// transitions, independently per activity kind:
//
//	none -> none  nothing
//	none -> X     start(X)
//	X    -> none  stop(X)
//	X    -> Y     stop(X) then start(Y)
//	X    -> X     nothing
//
// A stop always precedes the start that replaces it, so durations never
// overlap. Game identity is the name; track identity is (title, artist).
// A nil snapshot reads as no activity of either kind.
func diffSnapshots(before, after *models.Snapshot) []transition {
	var (
		beforeGame, afterGame   *models.GameActivity
		beforeTrack, afterTrack *models.TrackActivity
	)
	if before != nil {
		beforeGame = before.Game
		beforeTrack = before.Track
	}
	if after != nil {
		afterGame = after.Game
		afterTrack = after.Track
	}

	var transitions []transition

	if !beforeGame.Same(afterGame) {
		if beforeGame != nil {
			transitions = append(transitions, transition{kind: models.ActivityKindGame, start: false, game: beforeGame})
		}
		if afterGame != nil {
			transitions = append(transitions, transition{kind: models.ActivityKindGame, start: true, game: afterGame})
		}
	}

	if !beforeTrack.Same(afterTrack) {
		if beforeTrack != nil {
			transitions = append(transitions, transition{kind: models.ActivityKindTrack, start: false, track: beforeTrack})
		}
		if afterTrack != nil {
			transitions = append(transitions, transition{kind: models.ActivityKindTrack, start: true, track: afterTrack})
		}
	}

	return transitions
}
