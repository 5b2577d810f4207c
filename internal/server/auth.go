package server

import (
	"errors"
	"net/http"
	"strings"
)

var errNoSession = errors.New("no valid session")

// sessionFromRequest resolves the Bearer device-session token.
func sessionFromRequest(r *http.Request, store Store) (string, error) {
	auth := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		return "", errNoSession
	}
	return store.SessionFromToken(r.Context(), token)
}
