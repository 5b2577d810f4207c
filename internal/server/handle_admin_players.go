package server

import (
	"net/http"
	"strings"
)

// handleAdminImportPlayer upserts a player record with its clubs and
// statistics, then drops any cached stats so predicates see the new
// values immediately.
func handleAdminImportPlayer(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p PlayerImport
		if err := readJSON(r, &p); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		p.ID = strings.TrimSpace(p.ID)
		p.Name = strings.TrimSpace(p.Name)
		if p.ID == "" || p.Name == "" {
			writeError(w, http.StatusBadRequest, "id and name are required")
			return
		}

		if err := app.Store.UpsertPlayer(r.Context(), p); err != nil {
			app.Logger.Error("player import failed", "player_id", p.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if app.StatsCache != nil {
			app.StatsCache.Invalidate(r.Context(), p.ID)
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": p.ID})
	}
}
