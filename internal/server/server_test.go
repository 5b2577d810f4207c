package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/charliearlie/football-iq/internal/category"
	"github.com/charliearlie/football-iq/internal/database"
	"github.com/charliearlie/football-iq/internal/migrations"
)

// newTestApp wires a full App against an in-memory SQLite database. Redis
// and the stats cache stay nil: the evaluator reads the store directly.
func newTestApp(t *testing.T) (*App, http.Handler) {
	t.Helper()

	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.Run(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	store := NewSQLiteStore(db)
	logger := slog.Default()
	app := &App{
		Logger:    logger,
		Store:     store,
		Admin:     NewSQLiteAdminStore(db),
		Evaluator: category.NewEvaluator(store, logger),
		Broker:    NewBroker(),
		DB:        db,
	}

	r := chi.NewRouter()
	addRoutes(r, app)
	return app, r
}

func newSession(t *testing.T, app *App) string {
	t.Helper()
	token, err := app.Store.CreateSession(context.Background(), "test-device")
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}
	return token
}

func seedPuzzle(t *testing.T, app *App, kind, date string, data any) Puzzle {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshaling puzzle data: %v", err)
	}
	p, err := app.Store.CreatePuzzle(context.Background(), kind, date, raw)
	if err != nil {
		t.Fatalf("creating puzzle: %v", err)
	}
	return p
}

func seedPlayer(t *testing.T, app *App, p PlayerImport) {
	t.Helper()
	if err := app.Store.UpsertPlayer(context.Background(), p); err != nil {
		t.Fatalf("seeding player %s: %v", p.ID, err)
	}
}

// doJSON performs a request against the router with an optional Bearer
// token and JSON body, decoding the response into out when non-nil.
func doJSON(t *testing.T, h http.Handler, method, path, token string, body, out any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 {
		if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
	}
	return rec
}
