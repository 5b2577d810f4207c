package server

import (
	"context"
	"encoding/json"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Puzzle kinds as stored in the puzzles table.
const (
	KindCareer = "career"
	KindGrid   = "grid"
	KindLineup = "lineup"
)

// PuzzleRef identifies a puzzle without its content.
type PuzzleRef struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Date string `json:"date"`
}

// Puzzle is a content row; Data is the kind-specific JSON document.
type Puzzle struct {
	ID   string          `json:"id"`
	Kind string          `json:"kind"`
	Date string          `json:"date"`
	Data json.RawMessage `json:"data"`
}

// PlayerSearchResult is the zero-spoiler search shape: it must never grow
// statistic or achievement fields, since it is shown while guessing.
type PlayerSearchResult struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	NationalityCode  string `json:"nationalityCode,omitempty"`
	BirthYear        int    `json:"birthYear,omitempty"`
	PositionCategory string `json:"positionCategory,omitempty"`
}

// PlayerImport is the admin-facing player record, stats included.
type PlayerImport struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	NationalityCodes []string       `json:"nationalityCodes"`
	BirthYear        int            `json:"birthYear,omitempty"`
	PositionCategory string         `json:"positionCategory,omitempty"`
	Clubs            []string       `json:"clubs"`
	Stats            map[string]int `json:"stats"`
}

// Attempt is one play-through of a puzzle by a session. Metadata carries
// the serialized reducer state for resume.
type Attempt struct {
	ID           string          `json:"id"`
	SessionID    string          `json:"-"`
	PuzzleID     string          `json:"puzzleId"`
	Completed    bool            `json:"completed"`
	Score        *int            `json:"score,omitempty"`
	ScoreDisplay string          `json:"scoreDisplay,omitempty"`
	Metadata     json.RawMessage `json:"-"`
	StartedAt    string          `json:"startedAt"`
	CompletedAt  *string         `json:"completedAt,omitempty"`
}

// Store is the persistence collaborator for sessions, puzzles, attempts,
// and the player identity database. It also serves as the category
// evaluator's Lookup.
type Store interface {
	CreateSession(ctx context.Context, deviceID string) (token string, err error)
	SessionFromToken(ctx context.Context, token string) (sessionID string, err error)

	PuzzleByID(ctx context.Context, id string) (Puzzle, error)
	PuzzlesForDate(ctx context.Context, date string) ([]PuzzleRef, error)
	ListPuzzles(ctx context.Context) ([]PuzzleRef, error)
	CreatePuzzle(ctx context.Context, kind, date string, data json.RawMessage) (Puzzle, error)
	UpdatePuzzle(ctx context.Context, id, date string, data json.RawMessage) (Puzzle, error)
	DeletePuzzle(ctx context.Context, id string) error

	GetAttempt(ctx context.Context, sessionID, puzzleID string) (Attempt, error)
	SaveAttempt(ctx context.Context, a Attempt) error
	RecordCellPick(ctx context.Context, puzzleID string, cellIndex int, playerID string) error
	CellRarity(ctx context.Context, puzzleID string, cellIndex int, playerID string) (*float64, error)

	SearchPlayers(ctx context.Context, query string, limit int) ([]PlayerSearchResult, error)
	Player(ctx context.Context, id string) (PlayerSearchResult, error)
	UpsertPlayer(ctx context.Context, p PlayerImport) error

	// category.Lookup
	ClubHistory(ctx context.Context, playerID string) ([]string, error)
	Nationalities(ctx context.Context, playerID string) ([]string, error)
	PlayerStats(ctx context.Context, playerID string) (map[string]int, error)
}
