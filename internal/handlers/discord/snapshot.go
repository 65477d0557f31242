package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/lanstats/internal/models"
)

// snapshotFromActivities converts raw gateway activities into an activity
// snapshot. At most one game and one track are kept, the first of each.
func snapshotFromActivities(activities []*discordgo.Activity) *models.Snapshot {
	snapshot := &models.Snapshot{}

	for _, a := range activities {
		if a == nil {
			continue
		}

		switch a.Type {
		case discordgo.ActivityTypeGame:
			if snapshot.Game == nil && a.Name != "" {
				snapshot.Game = &models.GameActivity{Name: a.Name}
			}
		case discordgo.ActivityTypeListening:
			// Spotify puts the title in Details, the artist in State and
			// the album in the large asset text
			if snapshot.Track == nil && a.Details != "" && a.State != "" {
				snapshot.Track = models.NewTrackActivity(a.Details, a.State, a.Assets.LargeText)
			}
		}
	}

	return snapshot
}

// memberDisplayName returns the name the member shows up under in the
// server, falling back through nickname and global name
func memberDisplayName(m *discordgo.Member) string {
	if m == nil {
		return ""
	}
	if m.Nick != "" {
		return m.Nick
	}
	if m.User != nil {
		return m.User.GlobalName
	}
	return ""
}
