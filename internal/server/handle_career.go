package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/charliearlie/football-iq/internal/careerpath"
	"github.com/charliearlie/football-iq/internal/scoring"
)

type CareerGuessRequest struct {
	Guess string `json:"guess"`
}

// CareerStateResponse is the full client-facing view of a Career Path
// attempt. Steps holds only the revealed prefix, and Answer is populated
// exclusively once the game is over.
type CareerStateResponse struct {
	AttemptID      string             `json:"attemptId,omitempty"`
	GameStatus     careerpath.Status  `json:"gameStatus"`
	Result         careerpath.Result  `json:"result,omitempty"`
	RevealedCount  int                `json:"revealedCount"`
	TotalSteps     int                `json:"totalSteps"`
	Steps          []careerpath.Step  `json:"steps"`
	Guesses        []string           `json:"guesses"`
	LastGuessWrong bool               `json:"lastGuessWrong,omitempty"`
	Answer         string             `json:"answer,omitempty"`
	Score          *scoring.GameScore `json:"score,omitempty"`
	ScoreDisplay   string             `json:"scoreDisplay,omitempty"`
}

// loadCareerAttempt authenticates the session, loads the puzzle, and
// rebuilds the reducer state from the stored attempt. On failure the
// error response has already been written and ok is false.
func loadCareerAttempt(w http.ResponseWriter, r *http.Request, app *App) (sessionID string, pz Puzzle, att Attempt, g *careerpath.Game, ok bool) {
	sessionID, err := sessionFromRequest(r, app.Store)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid session token")
		return
	}

	pz, err = app.Store.PuzzleByID(r.Context(), chi.URLParam(r, "puzzleID"))
	if errors.Is(err, ErrNotFound) || (err == nil && pz.Kind != KindCareer) {
		writeError(w, http.StatusNotFound, "puzzle not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	var content careerpath.Puzzle
	if err := json.Unmarshal(pz.Data, &content); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "puzzle content is not playable")
		return
	}
	g, err = careerpath.NewGame(content)
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
				app.Logger.Warn("corrupt career attempt metadata, starting over",
					"attempt_id", att.ID, "error", err)
				g, _ = careerpath.NewGame(content)
			}
		}
	}
	return sessionID, pz, att, g, true
}

func careerResponse(att Attempt, g *careerpath.Game, result careerpath.Result) CareerStateResponse {
	resp := CareerStateResponse{
		AttemptID:      att.ID,
		GameStatus:     g.Status,
		Result:         result,
		RevealedCount:  g.RevealedCount,
		TotalSteps:     g.TotalSteps(),
		Steps:          g.VisibleSteps(),
		Guesses:        g.Guesses,
		LastGuessWrong: g.LastGuessWrong,
		Score:          g.Score,
	}
	if g.Status != careerpath.StatusPlaying {
		resp.Answer = g.Puzzle.Answer
		resp.ScoreDisplay = careerScoreDisplay(g)
	}
	return resp
}

func careerScoreDisplay(g *careerpath.Game) string {
	if g.Score == nil {
		return ""
	}
	if g.Score.Won {
		return scoring.FormatScore(*g.Score)
	}
	return scoring.FormatReveals(*g.Score)
}

// persistCareer writes the attempt after a state change and notifies SSE
// subscribers. Terminal persistence failures abort the request; progress
// failures do not.
func persistCareer(w http.ResponseWriter, r *http.Request, app *App, sessionID string, att *Attempt, g *careerpath.Game, result careerpath.Result) bool {
	meta, err := json.Marshal(g)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return false
	}
	att.Metadata = meta
	if att.ID == "" {
		att.ID = newAttemptID()
	}

	event := GameEvent{Type: "attempt_updated", Game: KindCareer, PuzzleID: att.PuzzleID, Result: string(result)}

	if g.Status != careerpath.StatusPlaying {
		points := g.Score.Points
		att.Score = &points
		att.ScoreDisplay = careerScoreDisplay(g)
		if err := app.saveTerminal(r.Context(), *att); err != nil {
			app.Logger.Error("saving terminal attempt failed", "attempt_id", att.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return false
		}
		event.Points = &points
	} else {
		app.saveProgress(r.Context(), *att)
	}

	app.Broker.Publish(sessionID, event)
	return true
}

func handleCareerState(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _, att, g, ok := loadCareerAttempt(w, r, app)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, careerResponse(att, g, ""))
	}
}

func handleCareerReveal(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, _, att, g, ok := loadCareerAttempt(w, r, app)
		if !ok {
			return
		}
		if g.Status != careerpath.StatusPlaying {
			writeError(w, http.StatusConflict, "game is over")
			return
		}

		result := g.Reveal()
		if result != careerpath.ResultIgnored {
			if !persistCareer(w, r, app, sessionID, &att, g, result) {
				return
			}
		}
		writeJSON(w, http.StatusOK, careerResponse(att, g, result))
	}
}

func handleCareerGuess(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, _, att, g, ok := loadCareerAttempt(w, r, app)
		if !ok {
			return
		}

		var req CareerGuessRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Guess) == "" {
			writeError(w, http.StatusBadRequest, "guess is required")
			return
		}
		if g.Status != careerpath.StatusPlaying {
			writeError(w, http.StatusConflict, "game is over")
			return
		}

		result := g.SubmitGuess(req.Guess)
		if !persistCareer(w, r, app, sessionID, &att, g, result) {
			return
		}
		writeJSON(w, http.StatusOK, careerResponse(att, g, result))
	}
}

func handleCareerGiveUp(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, _, att, g, ok := loadCareerAttempt(w, r, app)
		if !ok {
			return
		}
		if g.Status != careerpath.StatusPlaying {
			writeError(w, http.StatusConflict, "game is over")
			return
		}

		result := g.GiveUp()
		if !persistCareer(w, r, app, sessionID, &att, g, result) {
			return
		}
		writeJSON(w, http.StatusOK, careerResponse(att, g, result))
	}
}
