package server

import (
	"net/http"
	"testing"
)

func TestCreateSessionIdempotentPerDevice(t *testing.T) {
	_, h := newTestApp(t)

	var first, second SessionResponse
	rec := doJSON(t, h, http.MethodPost, "/api/session", "", SessionRequest{DeviceID: "phone-1"}, &first)
	if rec.Code != http.StatusOK || first.Token == "" {
		t.Fatalf("status = %d, token = %q", rec.Code, first.Token)
	}

	doJSON(t, h, http.MethodPost, "/api/session", "", SessionRequest{DeviceID: "phone-1"}, &second)
	if second.Token != first.Token {
		t.Errorf("same device got different tokens: %q vs %q", first.Token, second.Token)
	}

	var other SessionResponse
	doJSON(t, h, http.MethodPost, "/api/session", "", SessionRequest{DeviceID: "phone-2"}, &other)
	if other.Token == first.Token {
		t.Error("different devices share a token")
	}
}

func TestCreateSessionRequiresDeviceID(t *testing.T) {
	_, h := newTestApp(t)
	rec := doJSON(t, h, http.MethodPost, "/api/session", "", SessionRequest{}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestPuzzlesTodayFiltersByDate(t *testing.T) {
	app, h := newTestApp(t)
	seedPuzzle(t, app, KindCareer, "2026-03-01", careerPuzzleData())
	seedPuzzle(t, app, KindGrid, "2026-03-01", gridPuzzleData())
	seedPuzzle(t, app, KindCareer, "2026-03-02", careerPuzzleData())

	var resp TodayResponse
	doJSON(t, h, http.MethodGet, "/api/puzzles/today?date=2026-03-01", "", nil, &resp)
	if len(resp.Puzzles) != 2 {
		t.Fatalf("got %d puzzles, want 2", len(resp.Puzzles))
	}

	rec := doJSON(t, h, http.MethodGet, "/api/puzzles/today?date=not-a-date", "", nil, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad date: status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
