package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/lanstats/internal/models"
	"github.com/KirkDiggler/lanstats/internal/services/stats"
	"github.com/KirkDiggler/lanstats/internal/services/tracker"
)

const (
	defaultReadyTimeout = 60 * time.Second
	defaultChunkTimeout = 15 * time.Second
)

// Bot represents the Discord bot instance. It adapts the gateway to the
// tracker service: presence updates are converted into before/after snapshot
// pairs and queued, and the guild roster is exposed as the tracker's
// presence source for startup reconciliation.
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	tracker    tracker.Service
	stats      stats.Service
	config     *Config

	ready     chan struct{}
	readyOnce sync.Once

	// chunkMu guards the member-chunk bookkeeping used during startup
	chunkMu        sync.Mutex
	pendingGuilds  map[string]bool
	chunksComplete chan struct{}

	// seenMu guards lastSeen: the gateway goroutine writes it on every
	// presence update, and the startup scan seeds it
	seenMu   sync.Mutex
	lastSeen map[string]*models.Snapshot
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands and
	// tracking scope)
	GuildID string

	// Tracker service
	TrackerService tracker.Service

	// Stats service
	StatsService stats.Service

	// ReadyTimeout bounds the wait for the gateway ready event
	ReadyTimeout time.Duration

	// ChunkTimeout bounds the wait for guild member chunks before the
	// reconciliation scan
	ChunkTimeout time.Duration
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.TrackerService == nil {
		return nil, errors.New("tracker service cannot be nil")
	}

	if cfg.StatsService == nil {
		return nil, errors.New("stats service cannot be nil")
	}

	if cfg.ReadyTimeout <= 0 {
		cfg.ReadyTimeout = defaultReadyTimeout
	}

	if cfg.ChunkTimeout <= 0 {
		cfg.ChunkTimeout = defaultChunkTimeout
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildPresences

	// Handlers must run in gateway order: the tracker relies on receiving
	// each user's presence changes in the order they happened.
	session.SyncEvents = true

	bot := &Bot{
		session:        session,
		commands:       make(map[string]CommandHandler),
		commandIDs:     make(map[string]string),
		tracker:        cfg.TrackerService,
		stats:          cfg.StatsService,
		config:         cfg,
		ready:          make(chan struct{}),
		pendingGuilds:  make(map[string]bool),
		chunksComplete: make(chan struct{}),
		lastSeen:       make(map[string]*models.Snapshot),
	}

	session.AddHandler(bot.handleReady)
	session.AddHandler(bot.handlePresenceUpdate)
	session.AddHandler(bot.handleMembersChunk)
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the gateway connection, reconciles persisted state against
// the live roster, and only then starts live presence processing. A failed
// reconciliation aborts startup: live processing must not begin with
// unknown state.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	select {
	case <-b.ready:
	case <-time.After(b.config.ReadyTimeout):
		return errors.New("timed out waiting for gateway ready")
	}

	b.requestMemberChunks()

	if _, err := b.tracker.Reconcile(ctx, &tracker.ReconcileInput{Source: b}); err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	if err := b.tracker.Start(ctx); err != nil {
		return fmt.Errorf("failed to start tracker: %w", err)
	}

	for _, cmd := range []CommandHandler{
		NewStatsCommand(b.stats),
		NewLeaderboardCommand(b.stats),
		NewTopGamesCommand(b.stats),
		NewTopTracksCommand(b.stats),
		NewGameCommand(b.stats),
		NewSpotifyCommand(b.stats),
		NewOverviewCommand(b.stats),
	} {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop deregisters commands, closes the gateway and drains the tracker
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" && b.session.State.User != nil {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		}
	}

	// Close the gateway first so no new presence events arrive, then let
	// the tracker flush its queue and close every open session.
	if err := b.session.Close(); err != nil {
		log.Printf("Error closing Discord session: %v", err)
	}

	return b.tracker.Stop(context.Background())
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" && b.session.State.User != nil {
		appID = b.session.State.User.ID
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	return nil
}

// ListMembers enumerates every non-bot member currently in state together
// with their activity snapshot. Implements tracker.PresenceSource.
func (b *Bot) ListMembers(ctx context.Context) ([]*models.Member, error) {
	state := b.session.State
	if state == nil {
		return nil, errors.New("gateway state unavailable")
	}

	state.RLock()
	defer state.RUnlock()

	var members []*models.Member
	seen := make(map[string]bool)
	guilds := 0

	for _, guild := range state.Guilds {
		if b.config.GuildID != "" && guild.ID != b.config.GuildID {
			continue
		}
		guilds++

		presences := make(map[string]*discordgo.Presence, len(guild.Presences))
		for _, p := range guild.Presences {
			if p.User != nil {
				presences[p.User.ID] = p
			}
		}

		for _, m := range guild.Members {
			if m.User == nil || m.User.Bot || seen[m.User.ID] {
				continue
			}
			seen[m.User.ID] = true

			var snapshot *models.Snapshot
			if p, ok := presences[m.User.ID]; ok {
				snapshot = snapshotFromActivities(p.Activities)
			}

			b.seedLastSeen(m.User.ID, snapshot)

			members = append(members, &models.Member{
				UserID:      m.User.ID,
				Username:    m.User.Username,
				DisplayName: memberDisplayName(m),
				AvatarURL:   m.User.AvatarURL(""),
				Snapshot:    snapshot,
			})
		}
	}

	if guilds == 0 {
		return nil, errors.New("no guilds available in gateway state")
	}

	return members, nil
}

// seedLastSeen records a scan snapshot as the user's last-seen state unless
// a live event already wrote one
func (b *Bot) seedLastSeen(userID string, snapshot *models.Snapshot) {
	b.seenMu.Lock()
	defer b.seenMu.Unlock()

	if _, ok := b.lastSeen[userID]; !ok {
		b.lastSeen[userID] = snapshot
	}
}

// requestMemberChunks asks the gateway for the full member list of every
// tracked guild and waits for the chunks, bounded by ChunkTimeout. On
// timeout the scan proceeds with whatever members arrived.
func (b *Bot) requestMemberChunks() {
	b.session.State.RLock()
	var guildIDs []string
	for _, guild := range b.session.State.Guilds {
		if b.config.GuildID != "" && guild.ID != b.config.GuildID {
			continue
		}
		guildIDs = append(guildIDs, guild.ID)
	}
	b.session.State.RUnlock()

	if len(guildIDs) == 0 {
		return
	}

	b.chunkMu.Lock()
	for _, id := range guildIDs {
		b.pendingGuilds[id] = true
	}
	b.chunkMu.Unlock()

	for _, id := range guildIDs {
		if err := b.session.RequestGuildMembers(id, "", 0, "", true); err != nil {
			log.Printf("failed to request members for guild %s: %v", id, err)
			b.markGuildChunked(id)
		}
	}

	select {
	case <-b.chunksComplete:
	case <-time.After(b.config.ChunkTimeout):
		log.Println("timed out waiting for member chunks, scanning with partial roster")
	}
}

func (b *Bot) markGuildChunked(guildID string) {
	b.chunkMu.Lock()
	defer b.chunkMu.Unlock()

	if !b.pendingGuilds[guildID] {
		return
	}
	delete(b.pendingGuilds, guildID)

	if len(b.pendingGuilds) == 0 {
		close(b.chunksComplete)
	}
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	b.readyOnce.Do(func() {
		log.Printf("Connected as %s | %d guild(s)", r.User.Username, len(r.Guilds))
		close(b.ready)
	})
}

func (b *Bot) handleMembersChunk(s *discordgo.Session, c *discordgo.GuildMembersChunk) {
	if c.ChunkIndex == c.ChunkCount-1 {
		b.markGuildChunked(c.GuildID)
	}
}

// handlePresenceUpdate converts one gateway presence event into a
// before/after snapshot pair and queues it. The gateway only carries the
// new state; the previous snapshot comes from the bot's own last-seen map.
func (b *Bot) handlePresenceUpdate(s *discordgo.Session, p *discordgo.PresenceUpdate) {
	if p.User == nil {
		return
	}
	if b.config.GuildID != "" && p.GuildID != b.config.GuildID {
		return
	}

	userID := p.User.ID
	username := p.User.Username
	var displayName, avatarURL string

	// Presence updates carry a partial user; fill in what state knows
	if member, err := s.State.Member(p.GuildID, userID); err == nil && member.User != nil {
		if member.User.Bot {
			return
		}
		username = member.User.Username
		displayName = memberDisplayName(member)
		avatarURL = member.User.AvatarURL("")
	} else if p.User.Bot {
		return
	}

	after := snapshotFromActivities(p.Activities)

	b.seenMu.Lock()
	before := b.lastSeen[userID]
	b.lastSeen[userID] = after
	b.seenMu.Unlock()

	err := b.tracker.QueuePresenceUpdate(&tracker.PresenceUpdateInput{
		UserID:      userID,
		Username:    username,
		DisplayName: displayName,
		AvatarURL:   avatarURL,
		Before:      before,
		After:       after,
	})
	if err != nil && !errors.Is(err, tracker.ErrQueueFull) && !errors.Is(err, tracker.ErrNotAccepting) {
		log.Printf("failed to queue presence update for user %s: %v", userID, err)
	}
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	cmd, ok := b.commands[data.Name]
	if !ok {
		return
	}

	if err := cmd.Handle(s, i); err != nil {
		log.Printf("Error handling command %s: %v", data.Name, err)
	}
}
