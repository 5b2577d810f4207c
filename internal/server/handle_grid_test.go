package server

import (
	"net/http"
	"testing"
)

func gridPuzzleData() map[string]any {
	return map[string]any{
		"xAxis": []map[string]string{
			{"kind": "club", "label": "Real Madrid"},
			{"kind": "club", "label": "Liverpool"},
			{"kind": "club", "label": "Paris Saint-Germain"},
		},
		"yAxis": []map[string]string{
			{"kind": "nation", "label": "Brazil"},
			{"kind": "trophy", "label": "Champions League"},
			{"kind": "stat", "label": "100+ Goals"},
		},
	}
}

func seedGridPlayers(t *testing.T, app *App) {
	seedPlayer(t, app, PlayerImport{
		ID: "vinicius-junior", Name: "Vinícius Júnior",
		NationalityCodes: []string{"BR"},
		Clubs:            []string{"Flamengo", "Real Madrid"},
		Stats:            map[string]int{"goals": 110, "champions_league_titles": 2},
	})
	seedPlayer(t, app, PlayerImport{
		ID: "mohamed-salah", Name: "Mohamed Salah",
		NationalityCodes: []string{"EG"},
		Clubs:            []string{"Roma", "Liverpool"},
		Stats:            map[string]int{"goals": 250, "champions_league_titles": 1},
	})
}

func TestGridSubmitFlow(t *testing.T) {
	app, h := newTestApp(t)
	seedGridPlayers(t, app)
	token := newSession(t, app)
	pz := seedPuzzle(t, app, KindGrid, "2026-01-01", gridPuzzleData())
	base := "/api/grid/" + pz.ID

	// Cell 0 is Brazil x Real Madrid.
	var state GridStateResponse
	doJSON(t, h, http.MethodPost, base+"/select", token, GridSelectRequest{CellIndex: 0}, &state)
	if state.Result != "selected" || state.SelectedCell != 0 {
		t.Fatalf("select: result %q cell %d", state.Result, state.SelectedCell)
	}
	selToken := state.Token

	doJSON(t, h, http.MethodPost, base+"/submit", token,
		GridSubmitRequest{CellIndex: 0, Token: selToken, PlayerID: "vinicius-junior"}, &state)
	if state.Result != "filled" {
		t.Fatalf("submit: result %q", state.Result)
	}
	cell := state.Cells[0]
	if cell == nil || cell.PlayerName != "Vinícius Júnior" || cell.NationalityCode != "BR" {
		t.Fatalf("cell 0 = %+v", cell)
	}
	if state.Matched == nil || !state.Matched.Row || !state.Matched.Col {
		t.Errorf("matchedCriteria = %+v", state.Matched)
	}
	if cell.RarityPct == nil || *cell.RarityPct != 100 {
		t.Errorf("rarityPct = %v, want 100 for the only pick", cell.RarityPct)
	}
}

func TestGridStaleValidationDiscarded(t *testing.T) {
	app, h := newTestApp(t)
	seedGridPlayers(t, app)
	token := newSession(t, app)
	pz := seedPuzzle(t, app, KindGrid, "2026-01-01", gridPuzzleData())
	base := "/api/grid/" + pz.ID

	var state GridStateResponse
	doJSON(t, h, http.MethodPost, base+"/select", token, GridSelectRequest{CellIndex: 0}, &state)
	oldToken := state.Token

	// Re-selecting supersedes the first token.
	doJSON(t, h, http.MethodPost, base+"/select", token, GridSelectRequest{CellIndex: 1}, &state)

	doJSON(t, h, http.MethodPost, base+"/submit", token,
		GridSubmitRequest{CellIndex: 0, Token: oldToken, PlayerID: "vinicius-junior"}, &state)
	if state.Result != "stale" {
		t.Fatalf("result = %q, want stale", state.Result)
	}
	if state.Cells[0] != nil {
		t.Error("stale validation filled the board")
	}
	if state.SelectedCell != 1 {
		t.Errorf("selectedCell = %d, want 1", state.SelectedCell)
	}
}

func TestGridIncorrectPlayerReportsCriteria(t *testing.T) {
	app, h := newTestApp(t)
	seedGridPlayers(t, app)
	token := newSession(t, app)
	pz := seedPuzzle(t, app, KindGrid, "2026-01-01", gridPuzzleData())
	base := "/api/grid/" + pz.ID

	// Cell 1 is Brazil x Liverpool; Salah satisfies only the club.
	var state GridStateResponse
	doJSON(t, h, http.MethodPost, base+"/select", token, GridSelectRequest{CellIndex: 1}, &state)

	doJSON(t, h, http.MethodPost, base+"/submit", token,
		GridSubmitRequest{CellIndex: 1, Token: state.Token, PlayerID: "mohamed-salah"}, &state)
	if state.Result != "incorrect" {
		t.Fatalf("result = %q, want incorrect", state.Result)
	}
	if state.Matched == nil || state.Matched.Row || !state.Matched.Col {
		t.Fatalf("matchedCriteria = %+v, want row=false col=true", state.Matched)
	}
	if !state.LastGuessWrong {
		t.Error("lastGuessWrong not set")
	}
}

func TestGridUnknownPlayerIsInvalid(t *testing.T) {
	app, h := newTestApp(t)
	seedGridPlayers(t, app)
	token := newSession(t, app)
	pz := seedPuzzle(t, app, KindGrid, "2026-01-01", gridPuzzleData())
	base := "/api/grid/" + pz.ID

	var state GridStateResponse
	doJSON(t, h, http.MethodPost, base+"/select", token, GridSelectRequest{CellIndex: 0}, &state)

	doJSON(t, h, http.MethodPost, base+"/submit", token,
		GridSubmitRequest{CellIndex: 0, Token: state.Token, PlayerID: "nobody"}, &state)
	if state.Result != "incorrect" {
		t.Fatalf("result = %q, want incorrect", state.Result)
	}
	if state.Matched != nil {
		t.Errorf("matchedCriteria = %+v, want nil for unknown player", state.Matched)
	}
}

func TestGridGiveUpKeepsPartialCredit(t *testing.T) {
	app, h := newTestApp(t)
	seedGridPlayers(t, app)
	token := newSession(t, app)
	pz := seedPuzzle(t, app, KindGrid, "2026-01-01", gridPuzzleData())
	base := "/api/grid/" + pz.ID

	var state GridStateResponse
	doJSON(t, h, http.MethodPost, base+"/select", token, GridSelectRequest{CellIndex: 0}, &state)
	doJSON(t, h, http.MethodPost, base+"/submit", token,
		GridSubmitRequest{CellIndex: 0, Token: state.Token, PlayerID: "vinicius-junior"}, &state)

	doJSON(t, h, http.MethodPost, base+"/giveup", token, nil, &state)
	if state.GameStatus != "gave_up" {
		t.Fatalf("status = %q", state.GameStatus)
	}
	if state.Score == nil || state.Score.Points != 11 {
		t.Fatalf("score = %+v, want 11 points for one filled cell", state.Score)
	}
	if state.ScoreDisplay == "" {
		t.Error("scoreDisplay missing on terminal state")
	}

	rec := doJSON(t, h, http.MethodPost, base+"/select", token, GridSelectRequest{CellIndex: 1}, nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("select after give up: status = %d, want %d", rec.Code, http.StatusConflict)
	}
}
