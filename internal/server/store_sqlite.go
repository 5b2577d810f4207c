package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charliearlie/football-iq/internal/category"
	"github.com/charliearlie/football-iq/internal/names"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

/* --------------------------------- sessions --------------------------------- */

// CreateSession registers a device, returning the existing session token
// when the device is already known.
func (s *SQLiteStore) CreateSession(ctx context.Context, deviceID string) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO sessions (id, device_id)
		VALUES (lower(hex(randomblob(16))), ?)
		ON CONFLICT (device_id) DO UPDATE SET device_id = excluded.device_id
		RETURNING id
	`, deviceID).Scan(&id)
	return id, err
}

func (s *SQLiteStore) SessionFromToken(ctx context.Context, token string) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM sessions WHERE id = ?`, token).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", errNoSession
	}
	return id, err
}

/* --------------------------------- puzzles ---------------------------------- */

func (s *SQLiteStore) PuzzleByID(ctx context.Context, id string) (Puzzle, error) {
	var p Puzzle
	var data string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, kind, puzzle_date, data FROM puzzles WHERE id = ?
	`, id).Scan(&p.ID, &p.Kind, &p.Date, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrNotFound
	}
	p.Data = json.RawMessage(data)
	return p, err
}

func (s *SQLiteStore) PuzzlesForDate(ctx context.Context, date string) ([]PuzzleRef, error) {
	return s.puzzleRefs(ctx, `
		SELECT id, kind, puzzle_date FROM puzzles WHERE puzzle_date = ? ORDER BY kind
	`, date)
}

func (s *SQLiteStore) ListPuzzles(ctx context.Context) ([]PuzzleRef, error) {
	return s.puzzleRefs(ctx, `
		SELECT id, kind, puzzle_date FROM puzzles ORDER BY puzzle_date DESC, kind
	`)
}

func (s *SQLiteStore) puzzleRefs(ctx context.Context, query string, args ...any) ([]PuzzleRef, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []PuzzleRef
	for rows.Next() {
		var ref PuzzleRef
		if err := rows.Scan(&ref.ID, &ref.Kind, &ref.Date); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (s *SQLiteStore) CreatePuzzle(ctx context.Context, kind, date string, data json.RawMessage) (Puzzle, error) {
	var p Puzzle
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO puzzles (id, kind, puzzle_date, data)
		VALUES (lower(hex(randomblob(16))), ?, ?, ?)
		RETURNING id, kind, puzzle_date
	`, kind, date, string(data)).Scan(&p.ID, &p.Kind, &p.Date)
	if err != nil {
		return p, err
	}
	p.Data = data
	return p, nil
}

func (s *SQLiteStore) UpdatePuzzle(ctx context.Context, id, date string, data json.RawMessage) (Puzzle, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE puzzles SET puzzle_date = ?, data = ? WHERE id = ?
	`, date, string(data), id)
	if err != nil {
		return Puzzle{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Puzzle{}, ErrNotFound
	}
	return s.PuzzleByID(ctx, id)
}

func (s *SQLiteStore) DeletePuzzle(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM puzzles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

/* --------------------------------- attempts --------------------------------- */

func (s *SQLiteStore) GetAttempt(ctx context.Context, sessionID, puzzleID string) (Attempt, error) {
	var a Attempt
	var score sql.NullInt64
	var display, completedAt sql.NullString
	var metadata string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, session_id, puzzle_id, completed, score, score_display, metadata, started_at, completed_at
		FROM attempts
		WHERE session_id = ? AND puzzle_id = ?
	`, sessionID, puzzleID).Scan(&a.ID, &a.SessionID, &a.PuzzleID, &a.Completed, &score, &display, &metadata, &a.StartedAt, &completedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return a, ErrNotFound
	}
	if err != nil {
		return a, err
	}
	if score.Valid {
		v := int(score.Int64)
		a.Score = &v
	}
	a.ScoreDisplay = display.String
	a.Metadata = json.RawMessage(metadata)
	if completedAt.Valid {
		a.CompletedAt = &completedAt.String
	}
	return a, nil
}

// SaveAttempt upserts by attempt id. The row is written in full each
// time; metadata always reflects the latest reducer state.
func (s *SQLiteStore) SaveAttempt(ctx context.Context, a Attempt) error {
	var score any
	if a.Score != nil {
		score = *a.Score
	}
	var completedAt any
	if a.CompletedAt != nil {
		completedAt = *a.CompletedAt
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO attempts (id, session_id, puzzle_id, completed, score, score_display, metadata, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			completed = excluded.completed,
			score = excluded.score,
			score_display = excluded.score_display,
			metadata = excluded.metadata,
			completed_at = excluded.completed_at
	`, a.ID, a.SessionID, a.PuzzleID, a.Completed, score, a.ScoreDisplay, string(a.Metadata), completedAt)
	return err
}

func (s *SQLiteStore) RecordCellPick(ctx context.Context, puzzleID string, cellIndex int, playerID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO grid_picks (puzzle_id, cell_index, player_id, picks)
		VALUES (?, ?, ?, 1)
		ON CONFLICT (puzzle_id, cell_index, player_id) DO UPDATE SET picks = picks + 1
	`, puzzleID, cellIndex, playerID)
	return err
}

// CellRarity returns the percentage of picks for this cell that chose the
// same player, or nil when the cell has no recorded picks yet.
func (s *SQLiteStore) CellRarity(ctx context.Context, puzzleID string, cellIndex int, playerID string) (*float64, error) {
	var mine, total int
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN player_id = ? THEN picks ELSE 0 END), 0),
			COALESCE(SUM(picks), 0)
		FROM grid_picks
		WHERE puzzle_id = ? AND cell_index = ?
	`, playerID, puzzleID, cellIndex).Scan(&mine, &total)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, nil
	}
	pct := float64(mine) / float64(total) * 100
	return &pct, nil
}

/* --------------------------------- players ---------------------------------- */

// SearchPlayers runs a ranked substring lookup over normalized names:
// whole-name prefix first, then word-boundary prefix, then substring.
// The result shape is deliberately spoiler-free.
func (s *SQLiteStore) SearchPlayers(ctx context.Context, query string, limit int) ([]PlayerSearchResult, error) {
	q := names.Normalize(query)
	if q == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, nationality_codes, COALESCE(birth_year, 0), position_category
		FROM players
		WHERE normalized_name LIKE '%' || ? || '%'
		ORDER BY
			CASE
				WHEN normalized_name LIKE ? || '%' THEN 0
				WHEN normalized_name LIKE '% ' || ? || '%' THEN 1
				ELSE 2
			END,
			length(normalized_name),
			name
		LIMIT ?
	`, q, q, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlayerSearchResult
	for rows.Next() {
		var p PlayerSearchResult
		var codes string
		if err := rows.Scan(&p.ID, &p.Name, &codes, &p.BirthYear, &p.PositionCategory); err != nil {
			return nil, err
		}
		p.NationalityCode = firstCode(codes)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Player(ctx context.Context, id string) (PlayerSearchResult, error) {
	var p PlayerSearchResult
	var codes string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, nationality_codes, COALESCE(birth_year, 0), position_category
		FROM players WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &codes, &p.BirthYear, &p.PositionCategory)
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrNotFound
	}
	p.NationalityCode = firstCode(codes)
	return p, err
}

func firstCode(codesJSON string) string {
	var codes []string
	if err := json.Unmarshal([]byte(codesJSON), &codes); err != nil || len(codes) == 0 {
		return ""
	}
	return codes[0]
}

func (s *SQLiteStore) UpsertPlayer(ctx context.Context, p PlayerImport) error {
	codes, _ := json.Marshal(p.NationalityCodes)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO players (id, name, normalized_name, nationality_codes, birth_year, position_category)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			normalized_name = excluded.normalized_name,
			nationality_codes = excluded.nationality_codes,
			birth_year = excluded.birth_year,
			position_category = excluded.position_category
	`, p.ID, p.Name, names.Normalize(p.Name), string(codes), nullableInt(p.BirthYear), p.PositionCategory); err != nil {
		return fmt.Errorf("upserting player: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM player_clubs WHERE player_id = ?`, p.ID); err != nil {
		return err
	}
	for _, club := range p.Clubs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO player_clubs (player_id, club) VALUES (?, ?)
		`, p.ID, club); err != nil {
			return fmt.Errorf("inserting club: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM player_stats WHERE player_id = ?`, p.ID); err != nil {
		return err
	}
	for key, value := range p.Stats {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO player_stats (player_id, stat_key, value) VALUES (?, ?, ?)
		`, p.ID, key, value); err != nil {
			return fmt.Errorf("inserting stat: %w", err)
		}
	}

	return tx.Commit()
}

func nullableInt(v int) any {
	if v == 0 {
		return nil
	}
	return v
}

/* ------------------------------ category lookup ------------------------------ */

func (s *SQLiteStore) playerExists(ctx context.Context, playerID string) error {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM players WHERE id = ?`, playerID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return category.ErrPlayerNotFound
	}
	return err
}

func (s *SQLiteStore) ClubHistory(ctx context.Context, playerID string) ([]string, error) {
	if err := s.playerExists(ctx, playerID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT club FROM player_clubs WHERE player_id = ?
	`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clubs []string
	for rows.Next() {
		var club string
		if err := rows.Scan(&club); err != nil {
			return nil, err
		}
		clubs = append(clubs, club)
	}
	return clubs, rows.Err()
}

func (s *SQLiteStore) Nationalities(ctx context.Context, playerID string) ([]string, error) {
	var codesJSON string
	err := s.db.QueryRowContext(ctx, `
		SELECT nationality_codes FROM players WHERE id = ?
	`, playerID).Scan(&codesJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, category.ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}
	var codes []string
	if err := json.Unmarshal([]byte(codesJSON), &codes); err != nil {
		return nil, fmt.Errorf("decoding nationality codes: %w", err)
	}
	return codes, nil
}

func (s *SQLiteStore) PlayerStats(ctx context.Context, playerID string) (map[string]int, error) {
	if err := s.playerExists(ctx, playerID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT stat_key, value FROM player_stats WHERE player_id = ?
	`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var key string
		var value int
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		stats[key] = value
	}
	return stats, rows.Err()
}
