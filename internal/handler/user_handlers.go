package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"contactdesk/internal/models"
)

// CreateUser handles the public form submission. No auth.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in models.UserInput
	if err := readJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.users.Create(r.Context(), in); err != nil {
		slog.Error("create user", "error", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Database error", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User created successfully"})
}

// ListUsers returns every record, newest first, for the dashboard.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		slog.Error("list users", "error", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Database error", err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// UpdateUser rewrites one record's fields. A request matching no row
// returns the same success message as a real update.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var in models.UserInput
	if err := readJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.users.Update(r.Context(), id, in); err != nil {
		slog.Error("update user", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "User updated successfully"})
}

// DeleteUser removes one record. Deleting a nonexistent id is not an error.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if _, err := h.users.Delete(r.Context(), id); err != nil {
		slog.Error("delete user", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
