package server

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/charliearlie/football-iq/internal/category"
)

func TestAttemptUpsertAndResume(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()
	store := app.Store

	token := newSession(t, app)
	sessionID, err := store.SessionFromToken(ctx, token)
	if err != nil {
		t.Fatalf("resolving session: %v", err)
	}
	pz := seedPuzzle(t, app, KindCareer, "2026-01-01", careerPuzzleData())

	if _, err := store.GetAttempt(ctx, sessionID, pz.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("fresh attempt lookup: err = %v, want ErrNotFound", err)
	}

	a := Attempt{
		ID:        newAttemptID(),
		SessionID: sessionID,
		PuzzleID:  pz.ID,
		Metadata:  json.RawMessage(`{"revealedCount":2}`),
	}
	if err := store.SaveAttempt(ctx, a); err != nil {
		t.Fatalf("first save: %v", err)
	}

	a.Metadata = json.RawMessage(`{"revealedCount":3}`)
	score := 5
	a.Score = &score
	a.Completed = true
	if err := store.SaveAttempt(ctx, a); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := store.GetAttempt(ctx, sessionID, pz.ID)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if got.ID != a.ID || !got.Completed || got.Score == nil || *got.Score != 5 {
		t.Errorf("attempt = %+v", got)
	}
	if string(got.Metadata) != `{"revealedCount":3}` {
		t.Errorf("metadata = %s", got.Metadata)
	}
}

func TestCellRarity(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()
	store := app.Store
	pz := seedPuzzle(t, app, KindGrid, "2026-01-01", gridPuzzleData())

	pct, err := store.CellRarity(ctx, pz.ID, 0, "vinicius-junior")
	if err != nil {
		t.Fatalf("rarity with no picks: %v", err)
	}
	if pct != nil {
		t.Errorf("pct = %v, want nil before any picks", *pct)
	}

	for i := 0; i < 3; i++ {
		if err := store.RecordCellPick(ctx, pz.ID, 0, "vinicius-junior"); err != nil {
			t.Fatalf("recording pick: %v", err)
		}
	}
	if err := store.RecordCellPick(ctx, pz.ID, 0, "casemiro"); err != nil {
		t.Fatalf("recording pick: %v", err)
	}

	pct, err = store.CellRarity(ctx, pz.ID, 0, "vinicius-junior")
	if err != nil {
		t.Fatalf("rarity: %v", err)
	}
	if pct == nil || *pct != 75 {
		t.Errorf("pct = %v, want 75", pct)
	}
}

func TestLookupUnknownPlayer(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	if _, err := app.Store.ClubHistory(ctx, "nobody"); !errors.Is(err, category.ErrPlayerNotFound) {
		t.Errorf("ClubHistory err = %v", err)
	}
	if _, err := app.Store.Nationalities(ctx, "nobody"); !errors.Is(err, category.ErrPlayerNotFound) {
		t.Errorf("Nationalities err = %v", err)
	}
	if _, err := app.Store.PlayerStats(ctx, "nobody"); !errors.Is(err, category.ErrPlayerNotFound) {
		t.Errorf("PlayerStats err = %v", err)
	}
}
