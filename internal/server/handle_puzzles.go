package server

import (
	"net/http"
	"time"
)

type TodayResponse struct {
	Date    string      `json:"date"`
	Puzzles []PuzzleRef `json:"puzzles"`
}

// handlePuzzlesToday lists the puzzle ids for a date (default today UTC).
func handlePuzzlesToday(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			date = time.Now().UTC().Format("2006-01-02")
		} else if _, err := time.Parse("2006-01-02", date); err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}

		refs, err := app.Store.PuzzlesForDate(r.Context(), date)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if refs == nil {
			refs = []PuzzleRef{}
		}
		writeJSON(w, http.StatusOK, TodayResponse{Date: date, Puzzles: refs})
	}
}
