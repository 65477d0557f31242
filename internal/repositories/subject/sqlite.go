package subject

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/lanstats/internal/common/clock"
	"github.com/KirkDiggler/lanstats/internal/common/uuid"
	"github.com/KirkDiggler/lanstats/internal/models"
)

// Config holds configuration for the SQLite subject repository
type Config struct {
	// DB is the shared database handle
	DB *sql.DB

	// Clock provides the current time, defaults to the system clock
	Clock clock.Clock

	// UUID assigns subject IDs, defaults to random UUIDs
	UUID uuid.UUID
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
	uuid  uuid.UUID
}

// NewSQLite creates a new SQLite-backed subject repository
func NewSQLite(cfg *Config) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("db cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	uuider := cfg.UUID
	if uuider == nil {
		uuider = uuid.New()
	}

	repo := &sqliteRepository{
		db:    cfg.DB,
		clock: clk,
		uuid:  uuider,
	}

	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *sqliteRepository) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS games (
  game_id    TEXT PRIMARY KEY,
  game_name  TEXT UNIQUE NOT NULL,
  first_seen INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tracks (
  track_id   TEXT PRIMARY KEY,
  title      TEXT NOT NULL,
  artist     TEXT NOT NULL,
  album      TEXT,
  first_seen INTEGER NOT NULL,
  UNIQUE(title, artist)
);
`
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create subject tables: %w", err)
	}

	return nil
}

// GetOrCreateGame resolves a game subject by name, creating it if needed
func (r *sqliteRepository) GetOrCreateGame(ctx context.Context, input *GetOrCreateGameInput) (*GetOrCreateGameOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and game name cannot be empty")
	}

	// Insert-or-ignore keeps the first observed row; the ID is read back in
	// either case so concurrent creations converge on one subject.
	const insert = `
INSERT INTO games (game_id, game_name, first_seen)
VALUES (?, ?, ?)
ON CONFLICT(game_name) DO NOTHING;
`
	_, err := r.db.ExecContext(ctx, insert, r.uuid.NewUUID(), input.Name, r.clock.Now().Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to create game %q: %w", input.Name, err)
	}

	var (
		game      models.Game
		firstSeen int64
	)
	row := r.db.QueryRowContext(ctx, `SELECT game_id, game_name, first_seen FROM games WHERE game_name = ?;`, input.Name)
	if err := row.Scan(&game.ID, &game.Name, &firstSeen); err != nil {
		return nil, fmt.Errorf("failed to resolve game %q: %w", input.Name, err)
	}
	game.FirstSeen = time.Unix(firstSeen, 0).UTC()

	return &GetOrCreateGameOutput{Game: &game}, nil
}

// GetOrCreateTrack resolves a track subject by (title, artist), creating it
// if needed. The album is carried on the row but is not part of identity.
func (r *sqliteRepository) GetOrCreateTrack(ctx context.Context, input *GetOrCreateTrackInput) (*GetOrCreateTrackOutput, error) {
	if input == nil || input.Title == "" || input.Artist == "" {
		return nil, errors.New("input, title and artist cannot be empty")
	}

	const insert = `
INSERT INTO tracks (track_id, title, artist, album, first_seen)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(title, artist) DO NOTHING;
`
	_, err := r.db.ExecContext(ctx, insert, r.uuid.NewUUID(), input.Title, input.Artist, input.Album, r.clock.Now().Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to create track %q by %q: %w", input.Title, input.Artist, err)
	}

	var (
		track     models.Track
		firstSeen int64
	)
	row := r.db.QueryRowContext(ctx, `SELECT track_id, title, artist, COALESCE(album, ''), first_seen FROM tracks WHERE title = ? AND artist = ?;`, input.Title, input.Artist)
	if err := row.Scan(&track.ID, &track.Title, &track.Artist, &track.Album, &firstSeen); err != nil {
		return nil, fmt.Errorf("failed to resolve track %q by %q: %w", input.Title, input.Artist, err)
	}
	track.FirstSeen = time.Unix(firstSeen, 0).UTC()

	return &GetOrCreateTrackOutput{Track: &track}, nil
}
