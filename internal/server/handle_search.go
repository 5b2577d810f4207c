package server

import (
	"net/http"
	"strconv"
)

type SearchResponse struct {
	Players []PlayerSearchResult `json:"players"`
}

const maxSearchResults = 10

// handlePlayerSearch returns ranked candidates for a text prefix. The
// response shape is spoiler-free: no statistics, no achievements.
func handlePlayerSearch(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			writeError(w, http.StatusBadRequest, "q is required")
			return
		}
		limit := maxSearchResults
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 && n < maxSearchResults {
				limit = n
			}
		}

		players, err := app.Store.SearchPlayers(r.Context(), q, limit)
		if err != nil {
			app.Logger.Error("player search failed", "query", q, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if players == nil {
			players = []PlayerSearchResult{}
		}
		writeJSON(w, http.StatusOK, SearchResponse{Players: players})
	}
}
