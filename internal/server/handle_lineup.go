package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/charliearlie/football-iq/internal/lineup"
	"github.com/charliearlie/football-iq/internal/scoring"
)

type LineupGuessRequest struct {
	SlotIndex int    `json:"slotIndex"`
	Guess     string `json:"guess"`
}

type LineupStateResponse struct {
	AttemptID    string         `json:"attemptId,omitempty"`
	GameStatus   lineup.Status  `json:"gameStatus"`
	Outcome      lineup.Outcome `json:"outcome,omitempty"`
	Slots        []lineup.Slot  `json:"slots"`
	FoundCount   int            `json:"foundCount"`
	HiddenCount  int            `json:"hiddenCount"`
	ScoreDisplay string         `json:"scoreDisplay,omitempty"`
}

func loadLineupAttempt(w http.ResponseWriter, r *http.Request, app *App) (sessionID string, pz Puzzle, att Attempt, g *lineup.Game, ok bool) {
	sessionID, err := sessionFromRequest(r, app.Store)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid session token")
		return
	}

	pz, err = app.Store.PuzzleByID(r.Context(), chi.URLParam(r, "puzzleID"))
	if errors.Is(err, ErrNotFound) || (err == nil && pz.Kind != KindLineup) {
		writeError(w, http.StatusNotFound, "puzzle not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	var content lineup.Content
	if err := json.Unmarshal(pz.Data, &content); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "puzzle content is not playable")
		return
	}
	g, err = lineup.NewGame(content)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "puzzle content is not playable")
		return
	}

	att, err = app.Store.GetAttempt(r.Context(), sessionID, pz.ID)
	switch {
	case errors.Is(err, ErrNotFound):
		att = Attempt{SessionID: sessionID, PuzzleID: pz.ID, StartedAt: nowUTC()}
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	default:
		if len(att.Metadata) > 0 {
			if err := json.Unmarshal(att.Metadata, g); err != nil {
				app.Logger.Warn("corrupt lineup attempt metadata, starting over",
					"attempt_id", att.ID, "error", err)
				g, _ = lineup.NewGame(content)
			}
		}
	}
	return sessionID, pz, att, g, true
}

// visibleSlots blanks the names of hidden slots the player has not found
// yet. Everything else about the slot (position, coordinates) is shown.
func visibleSlots(g *lineup.Game) []lineup.Slot {
	slots := make([]lineup.Slot, len(g.Slots))
	copy(slots, g.Slots)
	for i := range slots {
		if slots[i].Hidden && !slots[i].Found {
			slots[i].FullName = ""
			slots[i].DisplayName = ""
		}
	}
	return slots
}

func lineupResponse(att Attempt, g *lineup.Game, outcome lineup.Outcome) LineupStateResponse {
	resp := LineupStateResponse{
		AttemptID:   att.ID,
		GameStatus:  g.Status,
		Outcome:     outcome,
		Slots:       visibleSlots(g),
		FoundCount:  g.FoundCount(),
		HiddenCount: g.HiddenCount(),
	}
	if g.Status == lineup.StatusComplete {
		resp.ScoreDisplay = scoring.FormatLineupShare(g.FoundCount(), g.HiddenCount())
	}
	return resp
}

func handleLineupState(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _, att, g, ok := loadLineupAttempt(w, r, app)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, lineupResponse(att, g, ""))
	}
}

func handleLineupGuess(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, _, att, g, ok := loadLineupAttempt(w, r, app)
		if !ok {
			return
		}

		var req LineupGuessRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Guess) == "" {
			writeError(w, http.StatusBadRequest, "guess is required")
			return
		}
		if g.Status != lineup.StatusPlaying {
			writeError(w, http.StatusConflict, "game is over")
			return
		}

		outcome := g.Guess(req.SlotIndex, req.Guess)
		if outcome == lineup.OutcomeIgnored {
			writeJSON(w, http.StatusOK, lineupResponse(att, g, outcome))
			return
		}

		meta, err := json.Marshal(g)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		att.Metadata = meta
		if att.ID == "" {
			att.ID = newAttemptID()
		}

		event := GameEvent{Type: "attempt_updated", Game: KindLineup, PuzzleID: att.PuzzleID, Result: string(outcome)}

		if g.Status == lineup.StatusComplete {
			points := g.FoundCount()
			att.Score = &points
			att.ScoreDisplay = scoring.FormatLineupShare(g.FoundCount(), g.HiddenCount())
			if err := app.saveTerminal(r.Context(), att); err != nil {
				app.Logger.Error("saving terminal attempt failed", "attempt_id", att.ID, "error", err)
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			event.Points = &points
		} else {
			app.saveProgress(r.Context(), att)
		}

		app.Broker.Publish(sessionID, event)
		writeJSON(w, http.StatusOK, lineupResponse(att, g, outcome))
	}
}
