package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Football IQ API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the Football IQ trivia games.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/session
	postSession, _ := r.NewOperationContext(http.MethodPost, "/api/session")
	postSession.SetSummary("Register device session")
	postSession.SetDescription("Registers a device and returns its Bearer token. Idempotent per device.")
	postSession.AddReqStructure(SessionRequest{})
	postSession.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postSession)

	// GET /api/puzzles/today
	getToday, _ := r.NewOperationContext(http.MethodGet, "/api/puzzles/today")
	getToday.SetSummary("Today's puzzles")
	getToday.SetDescription("Lists puzzle ids for a date (query parameter, default today UTC).")
	getToday.AddRespStructure(TodayResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getToday.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getToday)

	// GET /api/players/search
	getSearch, _ := r.NewOperationContext(http.MethodGet, "/api/players/search")
	getSearch.SetSummary("Player search")
	getSearch.SetDescription("Ranked player candidates for a text prefix. The shape carries no statistics.")
	getSearch.AddRespStructure(SearchResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getSearch.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getSearch)

	// GET /api/game/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/game/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of attempt updates. Pass token as query parameter.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// Career Path
	getCareerState, _ := r.NewOperationContext(http.MethodGet, "/api/career/{puzzleID}/state")
	getCareerState.SetSummary("Career Path state")
	getCareerState.SetDescription("Returns the attempt state, resuming if one exists. Requires Bearer token.")
	getCareerState.AddRespStructure(CareerStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getCareerState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	getCareerState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getCareerState)

	postCareerReveal, _ := r.NewOperationContext(http.MethodPost, "/api/career/{puzzleID}/reveal")
	postCareerReveal.SetSummary("Reveal next clue")
	postCareerReveal.AddRespStructure(CareerStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postCareerReveal.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postCareerReveal)

	postCareerGuess, _ := r.NewOperationContext(http.MethodPost, "/api/career/{puzzleID}/guess")
	postCareerGuess.SetSummary("Submit Career Path guess")
	postCareerGuess.SetDescription("Fuzzy-matches the guess against the answer. A wrong guess costs a clue.")
	postCareerGuess.AddReqStructure(CareerGuessRequest{})
	postCareerGuess.AddRespStructure(CareerStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postCareerGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postCareerGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postCareerGuess)

	postCareerGiveUp, _ := r.NewOperationContext(http.MethodPost, "/api/career/{puzzleID}/giveup")
	postCareerGiveUp.SetSummary("Forfeit Career Path")
	postCareerGiveUp.AddRespStructure(CareerStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postCareerGiveUp.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postCareerGiveUp)

	// The Grid
	getGridState, _ := r.NewOperationContext(http.MethodGet, "/api/grid/{puzzleID}/state")
	getGridState.SetSummary("Grid state")
	getGridState.AddRespStructure(GridStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getGridState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	getGridState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getGridState)

	postGridSelect, _ := r.NewOperationContext(http.MethodPost, "/api/grid/{puzzleID}/select")
	postGridSelect.SetSummary("Select grid cell")
	postGridSelect.SetDescription("Marks an empty cell as awaiting input and issues a selection token.")
	postGridSelect.AddReqStructure(GridSelectRequest{})
	postGridSelect.AddRespStructure(GridStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postGridSelect.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postGridSelect)

	postGridSubmit, _ := r.NewOperationContext(http.MethodPost, "/api/grid/{puzzleID}/submit")
	postGridSubmit.SetSummary("Submit grid cell pick")
	postGridSubmit.SetDescription("Validates a player picked from search against both cell categories. Results for superseded selections are discarded.")
	postGridSubmit.AddReqStructure(GridSubmitRequest{})
	postGridSubmit.AddRespStructure(GridStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postGridSubmit.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postGridSubmit.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postGridSubmit)

	postGridGuess, _ := r.NewOperationContext(http.MethodPost, "/api/grid/{puzzleID}/guess")
	postGridGuess.SetSummary("Submit grid free-text guess")
	postGridGuess.AddReqStructure(GridGuessRequest{})
	postGridGuess.AddRespStructure(GridStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postGridGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postGridGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postGridGuess)

	postGridGiveUp, _ := r.NewOperationContext(http.MethodPost, "/api/grid/{puzzleID}/giveup")
	postGridGiveUp.SetSummary("Forfeit The Grid")
	postGridGiveUp.SetDescription("Ends the attempt with partial credit for filled cells.")
	postGridGiveUp.AddRespStructure(GridStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postGridGiveUp.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postGridGiveUp)

	// Starting XI
	getLineupState, _ := r.NewOperationContext(http.MethodGet, "/api/lineup/{puzzleID}/state")
	getLineupState.SetSummary("Starting XI state")
	getLineupState.SetDescription("Returns the pitch with names of unfound hidden slots blanked.")
	getLineupState.AddRespStructure(LineupStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getLineupState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	getLineupState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getLineupState)

	postLineupGuess, _ := r.NewOperationContext(http.MethodPost, "/api/lineup/{puzzleID}/guess")
	postLineupGuess.SetSummary("Submit Starting XI guess")
	postLineupGuess.AddReqStructure(LineupGuessRequest{})
	postLineupGuess.AddRespStructure(LineupStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLineupGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postLineupGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postLineupGuess)

	// POST /api/admin/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/admin/login")
	postLogin.SetSummary("Admin login")
	postLogin.SetDescription("Authenticate with email and password. Sets admin_session cookie.")
	postLogin.AddReqStructure(AdminLoginRequest{})
	postLogin.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postLogin)

	// POST /api/admin/logout
	postLogout, _ := r.NewOperationContext(http.MethodPost, "/api/admin/logout")
	postLogout.SetSummary("Admin logout")
	postLogout.SetDescription("Clears admin session and cookie.")
	postLogout.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postLogout)

	// GET /api/admin/me
	getMe, _ := r.NewOperationContext(http.MethodGet, "/api/admin/me")
	getMe.SetSummary("Current admin")
	getMe.SetDescription("Returns the currently authenticated admin. Requires admin_session cookie.")
	getMe.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getMe.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getMe)

	// Admin puzzle authoring
	listPuzzles, _ := r.NewOperationContext(http.MethodGet, "/api/admin/puzzles")
	listPuzzles.SetSummary("List puzzles")
	listPuzzles.AddRespStructure(map[string][]PuzzleRef{}, openapi.WithHTTPStatus(http.StatusOK))
	listPuzzles.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(listPuzzles)

	createPuzzle, _ := r.NewOperationContext(http.MethodPost, "/api/admin/puzzles")
	createPuzzle.SetSummary("Create puzzle")
	createPuzzle.SetDescription("Creates a puzzle after validating its content is playable. One puzzle per kind per date.")
	createPuzzle.AddReqStructure(AdminPuzzleRequest{})
	createPuzzle.AddRespStructure(Puzzle{}, openapi.WithHTTPStatus(http.StatusCreated))
	createPuzzle.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	createPuzzle.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(createPuzzle)

	getPuzzle, _ := r.NewOperationContext(http.MethodGet, "/api/admin/puzzles/{id}")
	getPuzzle.SetSummary("Get puzzle")
	getPuzzle.AddRespStructure(Puzzle{}, openapi.WithHTTPStatus(http.StatusOK))
	getPuzzle.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getPuzzle)

	updatePuzzle, _ := r.NewOperationContext(http.MethodPut, "/api/admin/puzzles/{id}")
	updatePuzzle.SetSummary("Update puzzle")
	updatePuzzle.AddReqStructure(AdminPuzzleRequest{})
	updatePuzzle.AddRespStructure(Puzzle{}, openapi.WithHTTPStatus(http.StatusOK))
	updatePuzzle.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	updatePuzzle.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(updatePuzzle)

	deletePuzzle, _ := r.NewOperationContext(http.MethodDelete, "/api/admin/puzzles/{id}")
	deletePuzzle.SetSummary("Delete puzzle")
	deletePuzzle.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	deletePuzzle.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(deletePuzzle)

	// POST /api/admin/players
	importPlayer, _ := r.NewOperationContext(http.MethodPost, "/api/admin/players")
	importPlayer.SetSummary("Import player")
	importPlayer.SetDescription("Upserts a player with clubs and statistics, invalidating any cached stats.")
	importPlayer.AddReqStructure(PlayerImport{})
	importPlayer.AddRespStructure(map[string]string{}, openapi.WithHTTPStatus(http.StatusCreated))
	importPlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(importPlayer)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
