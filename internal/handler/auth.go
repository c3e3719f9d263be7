package handler

import (
	"crypto/subtle"
	"net/http"

	"EpicBackend/config"
)

// HandleLogin checks the shared admin password. There is no session or token;
// the front end only needs the status code.
func HandleLogin(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		password := r.FormValue("password")
		if subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) == 1 {
			writeJSON(w, http.StatusAccepted, message("Login successful"))
			return
		}
		writeError(w, http.StatusUnauthorized, "Invalid password")
	}
}
