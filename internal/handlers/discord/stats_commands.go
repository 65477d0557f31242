package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/lanstats/internal/services/stats"
)

// StatsCommand shows one player's gaming and listening statistics
type StatsCommand struct {
	BaseCommand
	stats stats.Service
}

// NewStatsCommand creates the /stats command
func NewStatsCommand(statsService stats.Service) *StatsCommand {
	return &StatsCommand{
		BaseCommand: BaseCommand{
			Name:        "stats",
			Description: "View your gaming statistics",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to look up (defaults to you)",
					Required:    false,
				},
			},
		},
		stats: statsService,
	}
}

// Handle processes a /stats interaction
func (c *StatsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	target := interactionUser(i)
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			target = opt.UserValue(s)
		}
	}

	if target == nil {
		return RespondWithError(s, i, "Could not determine which user to look up.")
	}

	out, err := c.stats.GetPlayerStats(context.Background(), &stats.GetPlayerStatsInput{
		UserID: target.ID,
	})
	if err != nil {
		if errors.Is(err, stats.ErrUserNotFound) {
			return RespondWithEphemeralMessage(s, i, "No activity recorded for that user yet.")
		}
		return RespondWithError(s, i, "Failed to fetch stats.")
	}

	name := out.User.DisplayName
	if name == "" {
		name = out.User.Username
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Total Playtime",
			Value:  fmt.Sprintf("%s across %d game(s)", out.GameReadable, out.GamesPlayed),
			Inline: true,
		},
		{
			Name:   "Listening Time",
			Value:  fmt.Sprintf("%s across %d track(s)", out.TrackReadable, out.TracksPlayed),
			Inline: true,
		},
	}

	if len(out.TopGames) > 0 {
		top := out.TopGames
		if len(top) > 5 {
			top = top[:5]
		}

		var lines []string
		for _, g := range top {
			lines = append(lines, fmt.Sprintf("**%s** - %s", g.Name, g.Readable))
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Top %d Games", len(top)),
			Value: strings.Join(lines, "\n"),
		})
	}

	return RespondWithEmbed(s, i, fmt.Sprintf("Stats for %s", name), "", fields)
}

// LeaderboardCommand shows the player leaderboard
type LeaderboardCommand struct {
	BaseCommand
	stats stats.Service
}

// NewLeaderboardCommand creates the /leaderboard command
func NewLeaderboardCommand(statsService stats.Service) *LeaderboardCommand {
	return &LeaderboardCommand{
		BaseCommand: BaseCommand{
			Name:        "leaderboard",
			Description: "View the player leaderboard",
			Options:     []*discordgo.ApplicationCommandOption{limitOption()},
		},
		stats: statsService,
	}
}

// Handle processes a /leaderboard interaction
func (c *LeaderboardCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.stats.GetLeaderboard(context.Background(), &stats.GetLeaderboardInput{
		Limit: limitFromOptions(i),
	})
	if err != nil {
		return RespondWithError(s, i, "Failed to fetch the leaderboard.")
	}

	if len(out.Entries) == 0 {
		return RespondWithEphemeralMessage(s, i, "No finished sessions yet.")
	}

	var fields []*discordgo.MessageEmbedField
	for _, entry := range out.Entries {
		value := fmt.Sprintf("%s across %d game(s)", entry.Readable, entry.GamesPlayed)
		if entry.MostPlayedGame != "" {
			value += fmt.Sprintf("\nMost played: **%s**", entry.MostPlayedGame)
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s #%d %s", rankMedal(entry.Rank), entry.Rank, entry.Name),
			Value: value,
		})
	}

	return RespondWithEmbed(s, i, "Player Leaderboard", "", fields)
}

// TopGamesCommand shows the most played games
type TopGamesCommand struct {
	BaseCommand
	stats stats.Service
}

// NewTopGamesCommand creates the /topgames command
func NewTopGamesCommand(statsService stats.Service) *TopGamesCommand {
	return &TopGamesCommand{
		BaseCommand: BaseCommand{
			Name:        "topgames",
			Description: "View the most played games",
			Options:     []*discordgo.ApplicationCommandOption{limitOption()},
		},
		stats: statsService,
	}
}

// Handle processes a /topgames interaction
func (c *TopGamesCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.stats.GetTopGames(context.Background(), &stats.GetTopGamesInput{
		Limit: limitFromOptions(i),
	})
	if err != nil {
		return RespondWithError(s, i, "Failed to fetch top games.")
	}

	if len(out.Games) == 0 {
		return RespondWithEphemeralMessage(s, i, "No finished game sessions yet.")
	}

	var fields []*discordgo.MessageEmbedField
	for _, g := range out.Games {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("#%d %s", g.Rank, g.Name),
			Value: fmt.Sprintf("%s by %d player(s)", g.Readable, g.UniquePlayers),
		})
	}

	return RespondWithEmbed(s, i, "Most Played Games", "", fields)
}

// TopTracksCommand shows the most listened tracks
type TopTracksCommand struct {
	BaseCommand
	stats stats.Service
}

// NewTopTracksCommand creates the /toptracks command
func NewTopTracksCommand(statsService stats.Service) *TopTracksCommand {
	return &TopTracksCommand{
		BaseCommand: BaseCommand{
			Name:        "toptracks",
			Description: "View the most listened Spotify tracks",
			Options:     []*discordgo.ApplicationCommandOption{limitOption()},
		},
		stats: statsService,
	}
}

// Handle processes a /toptracks interaction
func (c *TopTracksCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.stats.GetTopTracks(context.Background(), &stats.GetTopTracksInput{
		Limit: limitFromOptions(i),
	})
	if err != nil {
		return RespondWithError(s, i, "Failed to fetch top tracks.")
	}

	if len(out.Tracks) == 0 {
		return RespondWithEphemeralMessage(s, i, "No finished listening sessions yet.")
	}

	var fields []*discordgo.MessageEmbedField
	for _, t := range out.Tracks {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("#%d %s", t.Rank, t.Title),
			Value: fmt.Sprintf("by %s - %s from %d listener(s)", t.Artist, t.Readable, t.UniqueListeners),
		})
	}

	return RespondWithEmbed(s, i, "Most Listened Tracks", "", fields)
}

// GameCommand shows one game's totals and top players
type GameCommand struct {
	BaseCommand
	stats stats.Service
}

// NewGameCommand creates the /game command
func NewGameCommand(statsService stats.Service) *GameCommand {
	return &GameCommand{
		BaseCommand: BaseCommand{
			Name:        "game",
			Description: "View statistics for a specific game",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Game to look up",
					Required:    true,
				},
			},
		},
		stats: statsService,
	}
}

// Handle processes a /game interaction
func (c *GameCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	var name string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "name" {
			name = opt.StringValue()
		}
	}

	if name == "" {
		return RespondWithError(s, i, "Could not determine which game to look up.")
	}

	out, err := c.stats.GetGameDetails(context.Background(), &stats.GetGameDetailsInput{
		Name: name,
	})
	if err != nil {
		if errors.Is(err, stats.ErrGameNotFound) {
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf("No data found for game: %s", name))
		}
		return RespondWithError(s, i, "Failed to fetch game stats.")
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Total Playtime",
			Value:  out.Readable,
			Inline: true,
		},
		{
			Name:   "Players",
			Value:  fmt.Sprintf("%d", out.UniquePlayers),
			Inline: true,
		},
	}

	if len(out.Players) > 0 {
		top := out.Players
		if len(top) > 10 {
			top = top[:10]
		}

		var lines []string
		for rank, p := range top {
			lines = append(lines, fmt.Sprintf("%d. %s - %s", rank+1, p.Name, p.Readable))
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Top Players",
			Value: strings.Join(lines, "\n"),
		})
	}

	return RespondWithEmbed(s, i, out.Name, "", fields)
}

// SpotifyCommand shows one user's listening statistics
type SpotifyCommand struct {
	BaseCommand
	stats stats.Service
}

// NewSpotifyCommand creates the /spotify command
func NewSpotifyCommand(statsService stats.Service) *SpotifyCommand {
	return &SpotifyCommand{
		BaseCommand: BaseCommand{
			Name:        "spotify",
			Description: "View your Spotify listening statistics",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to look up (defaults to you)",
					Required:    false,
				},
			},
		},
		stats: statsService,
	}
}

// Handle processes a /spotify interaction
func (c *SpotifyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	target := interactionUser(i)
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			target = opt.UserValue(s)
		}
	}

	if target == nil {
		return RespondWithError(s, i, "Could not determine which user to look up.")
	}

	out, err := c.stats.GetListeningStats(context.Background(), &stats.GetListeningStatsInput{
		UserID: target.ID,
	})
	if err != nil {
		if errors.Is(err, stats.ErrUserNotFound) {
			return RespondWithEphemeralMessage(s, i, "No listening activity recorded for that user yet.")
		}
		return RespondWithError(s, i, "Failed to fetch listening stats.")
	}

	if out.TrackSeconds == 0 {
		return RespondWithEphemeralMessage(s, i, "No listening activity recorded for that user yet.")
	}

	name := out.User.DisplayName
	if name == "" {
		name = out.User.Username
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:  "Total Listening Time",
			Value: fmt.Sprintf("%s across %d track(s)", out.TrackReadable, out.TracksPlayed),
		},
	}

	if len(out.TopTracks) > 0 {
		top := out.TopTracks
		if len(top) > 5 {
			top = top[:5]
		}

		var lines []string
		for rank, t := range top {
			lines = append(lines, fmt.Sprintf("%d. %s by %s - %s", rank+1, t.Title, t.Artist, t.Readable))
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Top %d Tracks", len(top)),
			Value: strings.Join(lines, "\n"),
		})
	}

	return RespondWithEmbed(s, i, fmt.Sprintf("Spotify Stats for %s", name), "", fields)
}

// OverviewCommand shows server-wide totals
type OverviewCommand struct {
	BaseCommand
	stats stats.Service
}

// NewOverviewCommand creates the /overview command
func NewOverviewCommand(statsService stats.Service) *OverviewCommand {
	return &OverviewCommand{
		BaseCommand: BaseCommand{
			Name:        "overview",
			Description: "View server statistics overview",
		},
		stats: statsService,
	}
}

// Handle processes an /overview interaction
func (c *OverviewCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.stats.GetOverview(context.Background(), &stats.GetOverviewInput{})
	if err != nil {
		return RespondWithError(s, i, "Failed to fetch the overview.")
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:  "Total Gaming Time",
			Value: out.GameReadable,
		},
		{
			Name:  "Total Listening Time",
			Value: out.TrackReadable,
		},
		{
			Name:   "Active Players",
			Value:  fmt.Sprintf("%d", out.ActivePlayers),
			Inline: true,
		},
		{
			Name:   "Unique Games",
			Value:  fmt.Sprintf("%d", out.UniqueGames),
			Inline: true,
		},
		{
			Name:   "Unique Tracks",
			Value:  fmt.Sprintf("%d", out.UniqueTracks),
			Inline: true,
		},
	}

	return RespondWithEmbed(s, i, "Server Statistics Overview", "Stats across all users", fields)
}

// interactionUser returns the invoking user for guild and DM interactions
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

func limitOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "limit",
		Description: "How many entries to show (default 10)",
		Required:    false,
	}
}

func limitFromOptions(i *discordgo.InteractionCreate) int {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "limit" {
			return int(opt.IntValue())
		}
	}
	return 0
}

func rankMedal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return "🏅"
	}
}
