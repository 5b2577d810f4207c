package server

import (
	"net/http"
	"strings"
)

type SessionRequest struct {
	DeviceID string `json:"deviceId"`
}

type SessionResponse struct {
	Token string `json:"token"`
}

// handleCreateSession registers a device and returns its Bearer token.
// Registering the same device twice returns the same token, so the app
// shell can call this on every launch.
func handleCreateSession(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SessionRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.DeviceID = strings.TrimSpace(req.DeviceID)
		if req.DeviceID == "" {
			writeError(w, http.StatusBadRequest, "deviceId is required")
			return
		}

		token, err := app.Store.CreateSession(r.Context(), req.DeviceID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, SessionResponse{Token: token})
	}
}
