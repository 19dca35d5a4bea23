package handler

import (
	"io/fs"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Routes builds the full HTTP handler: the /api surface, the embedded
// browser clients, and the CORS policy for external origins.
func (h *Handler) Routes(static fs.FS, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	api.Handle("/users", h.RequireAuth(http.HandlerFunc(h.ListUsers))).Methods(http.MethodGet)
	api.Handle("/users/{id}", h.RequireAuth(http.HandlerFunc(h.UpdateUser))).Methods(http.MethodPut)
	api.Handle("/users/{id}", h.RequireAuth(http.HandlerFunc(h.DeleteUser))).Methods(http.MethodDelete)
	api.HandleFunc("/admin/login", h.AdminLogin).Methods(http.MethodPost)
	api.Handle("/admin/verify", h.RequireAuth(http.HandlerFunc(h.VerifySession))).Methods(http.MethodGet)

	r.PathPrefix("/").Handler(http.FileServer(http.FS(static)))

	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowCredentials(),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return cors(r)
}
