package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"contactdesk/internal/auth"
	"contactdesk/internal/models"
	"contactdesk/internal/store"
)

// AdminLogin checks credentials and mints a session token. Unknown
// username and wrong password get the same response body, so the
// endpoint cannot be used to enumerate usernames.
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := readJSON(r, &creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, err := h.admins.GetByUsername(r.Context(), creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("admin lookup", "error", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Database error", err)
		return
	}

	if !auth.CheckPassword(creds.Password, admin.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(admin.ID, h.jwtSecret, h.tokenTTL)
	if err != nil {
		slog.Error("generate token", "error", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Authentication error", err)
		return
	}

	slog.Info("admin logged in", "username", admin.Username)
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// VerifySession confirms a bearer token is still valid. All the work
// happens in RequireAuth; reaching this handler means the token passed.
func (h *Handler) VerifySession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"valid": true})
}
