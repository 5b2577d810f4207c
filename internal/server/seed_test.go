package server

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func TestSeedDemo(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	if err := SeedDemo(ctx, slog.Default(), app.Store, app.Admin); err != nil {
		t.Fatalf("seeding: %v", err)
	}

	today := time.Now().UTC().Format("2006-01-02")
	refs, err := app.Store.PuzzlesForDate(ctx, today)
	if err != nil {
		t.Fatalf("listing puzzles: %v", err)
	}
	if len(refs) != 3 {
		t.Fatalf("got %d puzzles for today, want one per game", len(refs))
	}

	// Seeded content must pass the same validation authoring does.
	for _, ref := range refs {
		p, err := app.Store.PuzzleByID(ctx, ref.ID)
		if err != nil {
			t.Fatalf("loading %s: %v", ref.ID, err)
		}
		if err := validatePuzzleData(p.Kind, p.Data); err != nil {
			t.Errorf("seeded %s puzzle is unplayable: %v", p.Kind, err)
		}
	}

	// Running again is a no-op.
	if err := SeedDemo(ctx, slog.Default(), app.Store, app.Admin); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	all, err := app.Store.ListPuzzles(ctx)
	if err != nil {
		t.Fatalf("listing all puzzles: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d puzzles after re-seed, want 3", len(all))
	}
}
