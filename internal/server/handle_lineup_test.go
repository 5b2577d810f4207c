package server

import (
	"net/http"
	"strings"
	"testing"
)

func lineupPuzzleData() map[string]any {
	slot := func(pos string, name, display string, hidden bool) map[string]any {
		return map[string]any{
			"positionKey": pos,
			"coordinates": map[string]float64{"x": 50, "y": 50},
			"fullName":    name,
			"displayName": display,
			"isHidden":    hidden,
		}
	}
	return map[string]any{
		"slots": []map[string]any{
			slot("GK", "Alisson Becker", "Alisson", false),
			slot("RB", "Trent Alexander-Arnold", "Alexander-Arnold", true),
			slot("RCB", "Joel Matip", "Matip", false),
			slot("LCB", "Virgil van Dijk", "Van Dijk", false),
			slot("LB", "Andrew Robertson", "Robertson", false),
			slot("RCM", "Jordan Henderson", "Henderson", false),
			slot("CDM", "Fabinho", "Fabinho", false),
			slot("LCM", "Georginio Wijnaldum", "Wijnaldum", false),
			slot("RW", "Mohamed Salah", "Salah", false),
			slot("ST", "Roberto Firmino", "Firmino", true),
			slot("LW", "Sadio Mané", "Mané", false),
		},
	}
}

func TestLineupStateHidesUnfoundNames(t *testing.T) {
	app, h := newTestApp(t)
	token := newSession(t, app)
	pz := seedPuzzle(t, app, KindLineup, "2026-01-01", lineupPuzzleData())

	var state LineupStateResponse
	rec := doJSON(t, h, http.MethodGet, "/api/lineup/"+pz.ID+"/state", token, nil, &state)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if state.HiddenCount != 2 || state.FoundCount != 0 {
		t.Fatalf("hidden %d found %d", state.HiddenCount, state.FoundCount)
	}
	for _, s := range state.Slots {
		if s.Hidden && !s.Found && (s.FullName != "" || s.DisplayName != "") {
			t.Errorf("hidden slot %s leaks name %q", s.PositionKey, s.FullName)
		}
	}
}

func TestLineupGuessOutcomes(t *testing.T) {
	app, h := newTestApp(t)
	token := newSession(t, app)
	pz := seedPuzzle(t, app, KindLineup, "2026-01-01", lineupPuzzleData())
	base := "/api/lineup/" + pz.ID

	// Firmino guessed at the RB slot: in the XI, wrong position.
	var state LineupStateResponse
	doJSON(t, h, http.MethodPost, base+"/guess", token, LineupGuessRequest{SlotIndex: 1, Guess: "Firmino"}, &state)
	if state.Outcome != "wrong_position" {
		t.Fatalf("outcome = %q, want wrong_position", state.Outcome)
	}

	// Not in the XI at all.
	doJSON(t, h, http.MethodPost, base+"/guess", token, LineupGuessRequest{SlotIndex: 1, Guess: "Origi"}, &state)
	if state.Outcome != "incorrect" {
		t.Fatalf("outcome = %q, want incorrect", state.Outcome)
	}

	// Surname-only guess resolves the slot.
	doJSON(t, h, http.MethodPost, base+"/guess", token, LineupGuessRequest{SlotIndex: 1, Guess: "alexander-arnold"}, &state)
	if state.Outcome != "correct" || state.FoundCount != 1 {
		t.Fatalf("outcome = %q found %d", state.Outcome, state.FoundCount)
	}
	if state.Slots[1].FullName != "Trent Alexander-Arnold" {
		t.Errorf("found slot name = %q", state.Slots[1].FullName)
	}

	// A found name guessed again elsewhere is a duplicate.
	doJSON(t, h, http.MethodPost, base+"/guess", token, LineupGuessRequest{SlotIndex: 9, Guess: "Alexander-Arnold"}, &state)
	if state.Outcome != "duplicate" {
		t.Fatalf("outcome = %q, want duplicate", state.Outcome)
	}

	// Last hidden player completes the lineup.
	doJSON(t, h, http.MethodPost, base+"/guess", token, LineupGuessRequest{SlotIndex: 9, Guess: "Roberto Firmino"}, &state)
	if state.Outcome != "complete" || state.GameStatus != "complete" {
		t.Fatalf("outcome %q status %q", state.Outcome, state.GameStatus)
	}
	if !strings.Contains(state.ScoreDisplay, "2 of 2") {
		t.Errorf("scoreDisplay = %q", state.ScoreDisplay)
	}
}
