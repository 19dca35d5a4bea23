package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"contactdesk/internal/store"
)

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	users     *store.UserStore
	admins    *store.AdminStore
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewHandler(users *store.UserStore, admins *store.AdminStore, jwtSecret string, tokenTTL time.Duration) *Handler {
	return &Handler{
		users:     users,
		admins:    admins,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeError sends a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeErrorDetails is writeError plus a details field echoing the
// underlying fault. Only used on 500s; this service runs behind a
// trusted boundary.
func writeErrorDetails(w http.ResponseWriter, status int, message string, err error) {
	writeJSON(w, status, map[string]string{"error": message, "details": err.Error()})
}

// readJSON decodes the request body into the given destination.
func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
