package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/lanstats/internal/common/clock"
	"github.com/KirkDiggler/lanstats/internal/models"
)

// ErrUserNotFound is returned when a user is not found
var ErrUserNotFound = errors.New("user not found")

// Config holds configuration for the SQLite user repository
type Config struct {
	// DB is the shared database handle
	DB *sql.DB

	// Clock provides the current time, defaults to the system clock
	Clock clock.Clock
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// NewSQLite creates a new SQLite-backed user repository
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

	repo := &sqliteRepository{
		db:    cfg.DB,
		clock: clk,
	}

	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *sqliteRepository) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS users (
  user_id      TEXT PRIMARY KEY,
  username     TEXT NOT NULL,
  display_name TEXT,
  avatar_url   TEXT,
  last_updated INTEGER NOT NULL
);
`
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	return nil
}

// UpsertUser inserts a user or refreshes an existing record
func (r *sqliteRepository) UpsertUser(ctx context.Context, input *UpsertUserInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	const stmt = `
INSERT INTO users (user_id, username, display_name, avatar_url, last_updated)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(user_id) DO UPDATE SET
  username = excluded.username,
  display_name = excluded.display_name,
  avatar_url = excluded.avatar_url,
  last_updated = excluded.last_updated;
`
	_, err := r.db.ExecContext(ctx, stmt,
		input.UserID,
		input.Username,
		input.DisplayName,
		input.AvatarURL,
		r.clock.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user %s: %w", input.UserID, err)
	}

	return nil
}

// GetUser retrieves a user by ID
func (r *sqliteRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	const query = `
SELECT user_id, username, COALESCE(display_name, ''), COALESCE(avatar_url, ''), last_updated
FROM users
WHERE user_id = ?;
`
	var (
		user        models.User
		lastUpdated int64
	)

	row := r.db.QueryRowContext(ctx, query, input.UserID)
	if err := row.Scan(&user.ID, &user.Username, &user.DisplayName, &user.AvatarURL, &lastUpdated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %s: %w", input.UserID, err)
	}

	user.LastUpdated = time.Unix(lastUpdated, 0).UTC()

	return &user, nil
}
