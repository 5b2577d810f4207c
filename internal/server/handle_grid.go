package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/charliearlie/football-iq/internal/category"
	"github.com/charliearlie/football-iq/internal/grid"
	"github.com/charliearlie/football-iq/internal/scoring"
)

type GridSelectRequest struct {
	CellIndex int `json:"cellIndex"`
}

// GridSubmitRequest is the typed-selection flow: the player was picked
// from search results, so the guess arrives as an id plus the selection
// token issued when the cell was selected.
type GridSubmitRequest struct {
	CellIndex int    `json:"cellIndex"`
	Token     int    `json:"token"`
	PlayerID  string `json:"playerId"`
}

type GridGuessRequest struct {
	CellIndex int    `json:"cellIndex"`
	Guess     string `json:"guess"`
}

// GridStateResponse is the client-facing board view. ValidAnswers never
// leaves the server.
type GridStateResponse struct {
	AttemptID      string                    `json:"attemptId,omitempty"`
	GameStatus     grid.Status               `json:"gameStatus"`
	Result         grid.Result               `json:"result,omitempty"`
	XAxis          [3]category.Category      `json:"xAxis"`
	YAxis          [3]category.Category      `json:"yAxis"`
	Cells          [grid.Cells]*grid.FilledCell `json:"cells"`
	SelectedCell   int                       `json:"selectedCell"`
	Token          int                       `json:"selectionToken,omitempty"`
	LastGuessWrong bool                      `json:"lastGuessWrong,omitempty"`
	Matched        *category.MatchedCriteria `json:"matchedCriteria,omitempty"`
	Score          *scoring.GridScore        `json:"score,omitempty"`
	ScoreDisplay   string                    `json:"scoreDisplay,omitempty"`
}

func loadGridAttempt(w http.ResponseWriter, r *http.Request, app *App) (sessionID string, pz Puzzle, att Attempt, g *grid.Game, ok bool) {
	sessionID, err := sessionFromRequest(r, app.Store)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid session token")
		return
	}

	pz, err = app.Store.PuzzleByID(r.Context(), chi.URLParam(r, "puzzleID"))
	if errors.Is(err, ErrNotFound) || (err == nil && pz.Kind != KindGrid) {
		writeError(w, http.StatusNotFound, "puzzle not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	var content grid.Content
	if err := json.Unmarshal(pz.Data, &content); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "puzzle content is not playable")
		return
	}
	g = grid.NewGame(content)

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
				app.Logger.Warn("corrupt grid attempt metadata, starting over",
					"attempt_id", att.ID, "error", err)
				g = grid.NewGame(content)
			}
		}
	}
	return sessionID, pz, att, g, true
}

func gridResponse(att Attempt, g *grid.Game, result grid.Result, matched *category.MatchedCriteria) GridStateResponse {
	resp := GridStateResponse{
		AttemptID:      att.ID,
		GameStatus:     g.Status,
		Result:         result,
		XAxis:          g.Content.XAxis,
		YAxis:          g.Content.YAxis,
		Cells:          g.CellsState,
		SelectedCell:   g.Selected,
		Token:          g.Token,
		LastGuessWrong: g.LastWrong,
		Matched:        matched,
		Score:          g.Score,
	}
	if g.Status != grid.StatusPlaying && g.Score != nil {
		resp.ScoreDisplay = scoring.FormatGridShare(g.FilledMask(), *g.Score)
	}
	return resp
}

func persistGrid(w http.ResponseWriter, r *http.Request, app *App, sessionID string, att *Attempt, g *grid.Game, result grid.Result) bool {
	meta, err := json.Marshal(g)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return false
	}
	att.Metadata = meta
	if att.ID == "" {
		att.ID = newAttemptID()
	}

	event := GameEvent{Type: "attempt_updated", Game: KindGrid, PuzzleID: att.PuzzleID, Result: string(result)}

	if g.Status != grid.StatusPlaying {
		points := g.Score.Points
		att.Score = &points
		att.ScoreDisplay = scoring.FormatGridShare(g.FilledMask(), *g.Score)
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

func handleGridState(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _, att, g, ok := loadGridAttempt(w, r, app)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, gridResponse(att, g, "", nil))
	}
}

func handleGridSelect(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, _, att, g, ok := loadGridAttempt(w, r, app)
		if !ok {
			return
		}

		var req GridSelectRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if g.Status != grid.StatusPlaying {
			writeError(w, http.StatusConflict, "game is over")
			return
		}

		result, _ := g.SelectCell(req.CellIndex)
		if result != grid.ResultIgnored {
			if !persistGrid(w, r, app, sessionID, &att, g, result) {
				return
			}
		}
		writeJSON(w, http.StatusOK, gridResponse(att, g, result, nil))
	}
}

func handleGridSubmit(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, pz, att, g, ok := loadGridAttempt(w, r, app)
		if !ok {
			return
		}

		var req GridSubmitRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.PlayerID == "" {
			writeError(w, http.StatusBadRequest, "playerId is required")
			return
		}
		if g.Status != grid.StatusPlaying {
			writeError(w, http.StatusConflict, "game is over")
			return
		}

		cats, err := g.Content.Categories(req.CellIndex)
		if err != nil {
			writeError(w, http.StatusBadRequest, "cellIndex out of range")
			return
		}

		validation := app.Evaluator.ValidateCell(r.Context(), req.PlayerID, cats.Row, cats.Col)

		var cell grid.FilledCell
		if validation.Valid {
			player, err := app.Store.Player(r.Context(), req.PlayerID)
			if err != nil {
				writeError(w, http.StatusUnprocessableEntity, "unknown player")
				return
			}
			cell = grid.FilledCell{
				PlayerName:      player.Name,
				PlayerID:        player.ID,
				NationalityCode: player.NationalityCode,
			}
		}

		result := g.ApplyValidation(req.Token, req.CellIndex, validation.Valid, cell)

		if result == grid.ResultFilled || result == grid.ResultComplete {
			if err := app.Store.RecordCellPick(r.Context(), pz.ID, req.CellIndex, req.PlayerID); err != nil {
				app.Logger.Warn("recording cell pick failed", "puzzle_id", pz.ID, "error", err)
			} else if pct, err := app.Store.CellRarity(r.Context(), pz.ID, req.CellIndex, req.PlayerID); err == nil {
				g.CellsState[req.CellIndex].RarityPct = pct
			}
		}

		switch result {
		case grid.ResultIgnored, grid.ResultStale:
			writeJSON(w, http.StatusOK, gridResponse(att, g, result, validation.Matched))
		default:
			if !persistGrid(w, r, app, sessionID, &att, g, result) {
				return
			}
			writeJSON(w, http.StatusOK, gridResponse(att, g, result, validation.Matched))
		}
	}
}

func handleGridGuess(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, _, att, g, ok := loadGridAttempt(w, r, app)
		if !ok {
			return
		}

		var req GridGuessRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Guess) == "" {
			writeError(w, http.StatusBadRequest, "guess is required")
			return
		}
		if g.Status != grid.StatusPlaying {
			writeError(w, http.StatusConflict, "game is over")
			return
		}

		result := g.SubmitGuess(req.CellIndex, req.Guess)
		if result == grid.ResultIgnored {
			writeJSON(w, http.StatusOK, gridResponse(att, g, result, nil))
			return
		}
		if !persistGrid(w, r, app, sessionID, &att, g, result) {
			return
		}
		writeJSON(w, http.StatusOK, gridResponse(att, g, result, nil))
	}
}

func handleGridGiveUp(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, _, att, g, ok := loadGridAttempt(w, r, app)
		if !ok {
			return
		}
		if g.Status != grid.StatusPlaying {
			writeError(w, http.StatusConflict, "game is over")
			return
		}

		result := g.GiveUp()
		if !persistGrid(w, r, app, sessionID, &att, g, result) {
			return
		}
		writeJSON(w, http.StatusOK, gridResponse(att, g, result, nil))
	}
}
