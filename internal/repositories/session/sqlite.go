package session

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

// ErrSessionNotFound is returned when no open session exists for an ID
var ErrSessionNotFound = errors.New("open session not found")

// Config holds configuration for the SQLite session repository
type Config struct {
	// DB is the shared database handle
	DB *sql.DB

	// Clock provides the authoritative store time, defaults to the system
	// clock
	Clock clock.Clock

	// UUID assigns session IDs, defaults to random UUIDs
	UUID uuid.UUID
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
	uuid  uuid.UUID
}

// NewSQLite creates a new SQLite-backed session repository. The leaderboard
// and ranking queries join the users, games and tracks tables owned by the
// user and subject repositories, so all repositories must share one database.
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
CREATE TABLE IF NOT EXISTS sessions (
  session_id       TEXT PRIMARY KEY,
  user_id          TEXT NOT NULL,
  subject_id       TEXT NOT NULL,
  kind             TEXT NOT NULL,
  start_time       INTEGER NOT NULL,
  end_time         INTEGER,
  duration_seconds INTEGER
);

CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
CREATE INDEX IF NOT EXISTS idx_sessions_subject ON sessions(subject_id);
CREATE INDEX IF NOT EXISTS idx_sessions_open ON sessions(end_time) WHERE end_time IS NULL;
`
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}

	return nil
}

// StartSession opens a session with start = now and a store-assigned ID
func (r *sqliteRepository) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil || input.UserID == "" || input.SubjectID == "" {
		return nil, errors.New("input, user ID and subject ID cannot be empty")
	}

	if input.Kind != models.ActivityKindGame && input.Kind != models.ActivityKindTrack {
		return nil, fmt.Errorf("invalid activity kind %q", input.Kind)
	}

	sessionID := r.uuid.NewUUID()
	start := r.clock.Now().Unix()

	const stmt = `
INSERT INTO sessions (session_id, user_id, subject_id, kind, start_time)
VALUES (?, ?, ?, ?, ?);
`
	if _, err := r.db.ExecContext(ctx, stmt, sessionID, input.UserID, input.SubjectID, string(input.Kind), start); err != nil {
		return nil, fmt.Errorf("failed to start session for user %s: %w", input.UserID, err)
	}

	return &StartSessionOutput{
		SessionID: sessionID,
		StartTime: time.Unix(start, 0).UTC(),
	}, nil
}

// EndSession closes an open session with the true elapsed duration
func (r *sqliteRepository) EndSession(ctx context.Context, input *EndSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	return r.closeSession(ctx, input.SessionID, 0)
}

// CloseOrphanWithCap closes an open session with end = min(now, start + cap)
func (r *sqliteRepository) CloseOrphanWithCap(ctx context.Context, input *CloseOrphanWithCapInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	if input.Cap <= 0 {
		return errors.New("cap must be positive")
	}

	return r.closeSession(ctx, input.SessionID, input.Cap)
}

// closeSession sets end time and duration for an open session inside one
// transaction. A zero cap closes with the true elapsed time; a positive cap
// bounds the end time at start + cap. Duration is clamped at zero so an
// inconsistent start time can never persist a negative value.
func (r *sqliteRepository) closeSession(ctx context.Context, sessionID string, capAt time.Duration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin close for session %s: %w", sessionID, err)
	}
	defer tx.Rollback()

	var start int64
	row := tx.QueryRowContext(ctx, `SELECT start_time FROM sessions WHERE session_id = ? AND end_time IS NULL;`, sessionID)
	if err := row.Scan(&start); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to read session %s: %w", sessionID, err)
	}

	end := r.clock.Now().Unix()
	if capAt > 0 {
		if capped := start + int64(capAt.Seconds()); capped < end {
			end = capped
		}
	}

	duration := end - start
	if duration < 0 {
		duration = 0
		end = start
	}

	const stmt = `
UPDATE sessions
SET end_time = ?, duration_seconds = ?
WHERE session_id = ?;
`
	if _, err := tx.ExecContext(ctx, stmt, end, duration, sessionID); err != nil {
		return fmt.Errorf("failed to close session %s: %w", sessionID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit close for session %s: %w", sessionID, err)
	}

	return nil
}

// ListOpenSessions returns open sessions started at or before the cutoff.
// Callers pass the same cutoff to ListRecentOpenSessions so the two lists
// partition the open sessions exactly.
func (r *sqliteRepository) ListOpenSessions(ctx context.Context, input *ListOpenSessionsInput) (*ListOpenSessionsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	cutoff := input.StartedAtOrBefore
	if cutoff.IsZero() {
		cutoff = r.clock.Now()
	}

	sessions, err := r.listOpen(ctx, `start_time <= ?`, cutoff.Unix())
	if err != nil {
		return nil, err
	}

	return &ListOpenSessionsOutput{Sessions: sessions}, nil
}

// ListRecentOpenSessions returns open sessions started strictly after the
// cutoff
func (r *sqliteRepository) ListRecentOpenSessions(ctx context.Context, input *ListRecentOpenSessionsInput) (*ListRecentOpenSessionsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.StartedAfter.IsZero() {
		return nil, errors.New("cutoff cannot be zero")
	}

	sessions, err := r.listOpen(ctx, `start_time > ?`, input.StartedAfter.Unix())
	if err != nil {
		return nil, err
	}

	return &ListRecentOpenSessionsOutput{Sessions: sessions}, nil
}

func (r *sqliteRepository) listOpen(ctx context.Context, cond string, args ...any) ([]*models.Session, error) {
	query := `
SELECT session_id, user_id, subject_id, kind, start_time
FROM sessions
WHERE end_time IS NULL AND ` + cond + `
ORDER BY start_time;
`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list open sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		var (
			s     models.Session
			kind  string
			start int64
		)
		if err := rows.Scan(&s.ID, &s.UserID, &s.SubjectID, &kind, &start); err != nil {
			return nil, fmt.Errorf("failed to scan open session: %w", err)
		}
		s.Kind = models.ActivityKind(kind)
		s.StartTime = time.Unix(start, 0).UTC()
		sessions = append(sessions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list open sessions: %w", err)
	}

	return sessions, nil
}

// GetUserTotals returns per-user playtime and listening sums over finished
// sessions
func (r *sqliteRepository) GetUserTotals(ctx context.Context, input *GetUserTotalsInput) (*GetUserTotalsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	const query = `
SELECT
  COALESCE(SUM(CASE WHEN kind = 'game' THEN duration_seconds END), 0),
  COUNT(DISTINCT CASE WHEN kind = 'game' THEN subject_id END),
  COALESCE(SUM(CASE WHEN kind = 'track' THEN duration_seconds END), 0),
  COUNT(DISTINCT CASE WHEN kind = 'track' THEN subject_id END)
FROM sessions
WHERE user_id = ? AND duration_seconds IS NOT NULL;
`
	var out GetUserTotalsOutput
	row := r.db.QueryRowContext(ctx, query, input.UserID)
	if err := row.Scan(&out.GameSeconds, &out.GamesPlayed, &out.TrackSeconds, &out.TracksPlayed); err != nil {
		return nil, fmt.Errorf("failed to get totals for user %s: %w", input.UserID, err)
	}

	return &out, nil
}

// GetUserGameTotals returns a user's per-game playtime sums, most played
// first
func (r *sqliteRepository) GetUserGameTotals(ctx context.Context, input *GetUserGameTotalsInput) (*GetUserGameTotalsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	const query = `
SELECT g.game_name, SUM(s.duration_seconds) AS total_seconds
FROM sessions s
JOIN games g ON s.subject_id = g.game_id
WHERE s.user_id = ? AND s.kind = 'game' AND s.duration_seconds IS NOT NULL
GROUP BY g.game_id
ORDER BY total_seconds DESC;
`
	rows, err := r.db.QueryContext(ctx, query, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game totals for user %s: %w", input.UserID, err)
	}
	defer rows.Close()

	out := &GetUserGameTotalsOutput{}
	for rows.Next() {
		var total GameTotal
		if err := rows.Scan(&total.Name, &total.TotalSeconds); err != nil {
			return nil, fmt.Errorf("failed to scan game total: %w", err)
		}
		out.Totals = append(out.Totals, &total)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get game totals for user %s: %w", input.UserID, err)
	}

	return out, nil
}

// GetGamePlayers returns one game's players and their playtime sums, most
// playtime first
func (r *sqliteRepository) GetGamePlayers(ctx context.Context, input *GetGamePlayersInput) (*GetGamePlayersOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and game name cannot be empty")
	}

	const query = `
SELECT u.user_id, u.username, COALESCE(u.display_name, ''), SUM(s.duration_seconds) AS total_seconds
FROM sessions s
JOIN games g ON s.subject_id = g.game_id
JOIN users u ON s.user_id = u.user_id
WHERE g.game_name = ? AND s.kind = 'game' AND s.duration_seconds IS NOT NULL
GROUP BY s.user_id
ORDER BY total_seconds DESC;
`
	rows, err := r.db.QueryContext(ctx, query, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get players for game %q: %w", input.Name, err)
	}
	defer rows.Close()

	out := &GetGamePlayersOutput{}
	for rows.Next() {
		var p GamePlayer
		if err := rows.Scan(&p.UserID, &p.Username, &p.DisplayName, &p.TotalSeconds); err != nil {
			return nil, fmt.Errorf("failed to scan game player: %w", err)
		}
		out.Players = append(out.Players, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get players for game %q: %w", input.Name, err)
	}

	return out, nil
}

// GetUserTrackTotals returns a user's per-track listening sums, most
// listened first
func (r *sqliteRepository) GetUserTrackTotals(ctx context.Context, input *GetUserTrackTotalsInput) (*GetUserTrackTotalsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	const query = `
SELECT t.title, t.artist, COALESCE(t.album, ''), SUM(s.duration_seconds) AS total_seconds
FROM sessions s
JOIN tracks t ON s.subject_id = t.track_id
WHERE s.user_id = ? AND s.kind = 'track' AND s.duration_seconds IS NOT NULL
GROUP BY t.track_id
ORDER BY total_seconds DESC;
`
	rows, err := r.db.QueryContext(ctx, query, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get track totals for user %s: %w", input.UserID, err)
	}
	defer rows.Close()

	out := &GetUserTrackTotalsOutput{}
	for rows.Next() {
		var total TrackTotal
		if err := rows.Scan(&total.Title, &total.Artist, &total.Album, &total.TotalSeconds); err != nil {
			return nil, fmt.Errorf("failed to scan track total: %w", err)
		}
		out.Totals = append(out.Totals, &total)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get track totals for user %s: %w", input.UserID, err)
	}

	return out, nil
}

// GetTopGames returns games ranked by total playtime
func (r *sqliteRepository) GetTopGames(ctx context.Context, input *GetTopGamesInput) (*GetTopGamesOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input and positive limit are required")
	}

	const query = `
SELECT g.game_name, SUM(s.duration_seconds) AS total_seconds, COUNT(DISTINCT s.user_id)
FROM sessions s
JOIN games g ON s.subject_id = g.game_id
WHERE s.kind = 'game' AND s.duration_seconds IS NOT NULL
GROUP BY g.game_id
ORDER BY total_seconds DESC
LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, query, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top games: %w", err)
	}
	defer rows.Close()

	out := &GetTopGamesOutput{}
	for rows.Next() {
		var leader GameLeader
		if err := rows.Scan(&leader.Name, &leader.TotalSeconds, &leader.UniquePlayers); err != nil {
			return nil, fmt.Errorf("failed to scan game ranking: %w", err)
		}
		out.Games = append(out.Games, &leader)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get top games: %w", err)
	}

	return out, nil
}

// GetTopTracks returns tracks ranked by total listening time
func (r *sqliteRepository) GetTopTracks(ctx context.Context, input *GetTopTracksInput) (*GetTopTracksOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input and positive limit are required")
	}

	const query = `
SELECT t.title, t.artist, COALESCE(t.album, ''), SUM(s.duration_seconds) AS total_seconds, COUNT(DISTINCT s.user_id)
FROM sessions s
JOIN tracks t ON s.subject_id = t.track_id
WHERE s.kind = 'track' AND s.duration_seconds IS NOT NULL
GROUP BY t.track_id
ORDER BY total_seconds DESC
LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, query, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top tracks: %w", err)
	}
	defer rows.Close()

	out := &GetTopTracksOutput{}
	for rows.Next() {
		var leader TrackLeader
		if err := rows.Scan(&leader.Title, &leader.Artist, &leader.Album, &leader.TotalSeconds, &leader.UniqueListeners); err != nil {
			return nil, fmt.Errorf("failed to scan track ranking: %w", err)
		}
		out.Tracks = append(out.Tracks, &leader)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get top tracks: %w", err)
	}

	return out, nil
}

// GetLeaderboard returns players ranked by total playtime
func (r *sqliteRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input and positive limit are required")
	}

	const query = `
WITH game_stats AS (
  SELECT user_id, SUM(duration_seconds) AS total_seconds, COUNT(DISTINCT subject_id) AS games_played
  FROM sessions
  WHERE kind = 'game' AND duration_seconds IS NOT NULL
  GROUP BY user_id
),
top_game AS (
  SELECT s.user_id, g.game_name, SUM(s.duration_seconds) AS game_seconds,
         ROW_NUMBER() OVER (PARTITION BY s.user_id ORDER BY SUM(s.duration_seconds) DESC) AS rn
  FROM sessions s
  JOIN games g ON s.subject_id = g.game_id
  WHERE s.kind = 'game' AND s.duration_seconds IS NOT NULL
  GROUP BY s.user_id, g.game_id
),
track_stats AS (
  SELECT user_id, SUM(duration_seconds) AS total_seconds, COUNT(DISTINCT subject_id) AS tracks_played
  FROM sessions
  WHERE kind = 'track' AND duration_seconds IS NOT NULL
  GROUP BY user_id
)
SELECT u.user_id, u.username, COALESCE(u.display_name, ''), COALESCE(u.avatar_url, ''),
       COALESCE(g.total_seconds, 0), COALESCE(g.games_played, 0),
       COALESCE(t.game_name, ''), COALESCE(t.game_seconds, 0),
       COALESCE(ts.total_seconds, 0), COALESCE(ts.tracks_played, 0)
FROM users u
LEFT JOIN game_stats g ON g.user_id = u.user_id
LEFT JOIN top_game t ON t.user_id = u.user_id AND t.rn = 1
LEFT JOIN track_stats ts ON ts.user_id = u.user_id
WHERE COALESCE(g.total_seconds, 0) > 0 OR COALESCE(ts.total_seconds, 0) > 0
ORDER BY COALESCE(g.total_seconds, 0) DESC
LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, query, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	defer rows.Close()

	out := &GetLeaderboardOutput{}
	for rows.Next() {
		var p PlayerTotals
		if err := rows.Scan(&p.UserID, &p.Username, &p.DisplayName, &p.AvatarURL,
			&p.TotalSeconds, &p.GamesPlayed, &p.MostPlayedGame, &p.MostPlayedSeconds,
			&p.TrackSeconds, &p.TracksPlayed); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		out.Players = append(out.Players, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return out, nil
}

// GetOverview returns server-wide totals over finished sessions
func (r *sqliteRepository) GetOverview(ctx context.Context, input *GetOverviewInput) (*GetOverviewOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	const query = `
SELECT
  COALESCE(SUM(CASE WHEN kind = 'game' THEN duration_seconds END), 0),
  COALESCE(SUM(CASE WHEN kind = 'track' THEN duration_seconds END), 0),
  COUNT(DISTINCT user_id),
  COUNT(DISTINCT CASE WHEN kind = 'game' THEN subject_id END),
  COUNT(DISTINCT CASE WHEN kind = 'track' THEN subject_id END)
FROM sessions
WHERE duration_seconds IS NOT NULL;
`
	var out GetOverviewOutput
	row := r.db.QueryRowContext(ctx, query)
	if err := row.Scan(&out.GameSeconds, &out.TrackSeconds, &out.ActivePlayers, &out.UniqueGames, &out.UniqueTracks); err != nil {
		return nil, fmt.Errorf("failed to get overview: %w", err)
	}

	return &out, nil
}
