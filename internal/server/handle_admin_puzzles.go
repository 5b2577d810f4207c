package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/charliearlie/football-iq/internal/careerpath"
	"github.com/charliearlie/football-iq/internal/grid"
	"github.com/charliearlie/football-iq/internal/lineup"
)

type AdminPuzzleRequest struct {
	Kind string          `json:"kind"`
	Date string          `json:"date"`
	Data json.RawMessage `json:"data"`
}

// validatePuzzleData rejects content a game handler would later refuse to
// play, so authoring mistakes surface at save time instead of in front of
// players.
func validatePuzzleData(kind string, data json.RawMessage) error {
	switch kind {
	case KindCareer:
		var p careerpath.Puzzle
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("invalid career content: %w", err)
		}
		return p.Validate()
	case KindGrid:
		var c grid.Content
		if err := json.Unmarshal(data, &c); err != nil {
			return fmt.Errorf("invalid grid content: %w", err)
		}
		for _, cat := range append(c.XAxis[:], c.YAxis[:]...) {
			if cat.Label == "" {
				return fmt.Errorf("grid category missing label")
			}
		}
		return nil
	case KindLineup:
		var c lineup.Content
		if err := json.Unmarshal(data, &c); err != nil {
			return fmt.Errorf("invalid lineup content: %w", err)
		}
		return c.Validate()
	default:
		return fmt.Errorf("unknown puzzle kind %q", kind)
	}
}

func handleAdminListPuzzles(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refs, err := app.Store.ListPuzzles(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if refs == nil {
			refs = []PuzzleRef{}
		}
		writeJSON(w, http.StatusOK, map[string][]PuzzleRef{"puzzles": refs})
	}
}

func handleAdminGetPuzzle(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := app.Store.PuzzleByID(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "puzzle not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func handleAdminCreatePuzzle(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminPuzzleRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		if err := validatePuzzleData(req.Kind, req.Data); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		p, err := app.Store.CreatePuzzle(r.Context(), req.Kind, req.Date, req.Data)
		if err != nil {
			writeError(w, http.StatusConflict, "a puzzle of this kind already exists for this date")
			return
		}
		writeJSON(w, http.StatusCreated, p)
	}
}

func handleAdminUpdatePuzzle(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		existing, err := app.Store.PuzzleByID(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "puzzle not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		var req AdminPuzzleRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Date == "" {
			req.Date = existing.Date
		} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		if req.Data == nil {
			req.Data = existing.Data
		}
		if err := validatePuzzleData(existing.Kind, req.Data); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		p, err := app.Store.UpdatePuzzle(r.Context(), id, req.Date, req.Data)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func handleAdminDeletePuzzle(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := app.Store.DeletePuzzle(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "puzzle not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
