package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, app *App) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Football IQ API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(app.Logger, app.DB, app.Redis))

	r.Route("/api", func(r chi.Router) {
		r.Post("/session", handleCreateSession(app))
		r.Get("/puzzles/today", handlePuzzlesToday(app))
		r.Get("/players/search", handlePlayerSearch(app))
		r.Get("/game/events", handleEvents(app))

		r.Route("/career/{puzzleID}", func(r chi.Router) {
			r.Get("/state", handleCareerState(app))
			r.Post("/reveal", handleCareerReveal(app))
			r.Post("/guess", handleCareerGuess(app))
			r.Post("/giveup", handleCareerGiveUp(app))
		})

		r.Route("/grid/{puzzleID}", func(r chi.Router) {
			r.Get("/state", handleGridState(app))
			r.Post("/select", handleGridSelect(app))
			r.Post("/submit", handleGridSubmit(app))
			r.Post("/guess", handleGridGuess(app))
			r.Post("/giveup", handleGridGiveUp(app))
		})

		r.Route("/lineup/{puzzleID}", func(r chi.Router) {
			r.Get("/state", handleLineupState(app))
			r.Post("/guess", handleLineupGuess(app))
		})
	})

	// Admin auth + puzzle authoring.
	r.Post("/api/admin/login", handleAdminLogin(app.Admin))
	r.Post("/api/admin/logout", handleAdminLogout(app.Admin))
	r.Get("/api/admin/me", handleAdminMe(app.Admin))

	r.Route("/api/admin/puzzles", func(r chi.Router) {
		r.Use(adminAuthMiddleware(app.Admin))
		r.Get("/", handleAdminListPuzzles(app))
		r.Post("/", handleAdminCreatePuzzle(app))
		r.Get("/{id}", handleAdminGetPuzzle(app))
		r.Put("/{id}", handleAdminUpdatePuzzle(app))
		r.Delete("/{id}", handleAdminDeletePuzzle(app))
	})

	r.Route("/api/admin/players", func(r chi.Router) {
		r.Use(adminAuthMiddleware(app.Admin))
		r.Post("/", handleAdminImportPlayer(app))
	})
}
