package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

// newAttemptID returns a compact identifier, generated once the player
// makes first progress and reused across resume cycles.
func newAttemptID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// saveProgress persists a non-terminal attempt. Gameplay never blocks on
// persistence: a failed write is logged and retried on the next state
// change.
func (app *App) saveProgress(ctx context.Context, a Attempt) {
	if err := app.Store.SaveAttempt(ctx, a); err != nil {
		app.Logger.Warn("saving attempt progress failed",
			"attempt_id", a.ID, "puzzle_id", a.PuzzleID, "error", err)
	}
}

// saveTerminal persists a completed attempt; this one the caller does
// want to know about.
func (app *App) saveTerminal(ctx context.Context, a Attempt) error {
	now := nowUTC()
	a.Completed = true
	a.CompletedAt = &now
	return app.Store.SaveAttempt(ctx, a)
}
