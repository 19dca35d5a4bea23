package main

import (
	"log/slog"
	"net/http"
	"os"

	"contactdesk/config"
	"contactdesk/internal/handler"
	"contactdesk/internal/store"
	"contactdesk/pkg/database"
	"contactdesk/web"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment")
	}

	cfg := config.Load()

	// Connect before accepting traffic; the handle is closed on exit.
	db, err := database.Open(cfg.Database)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("connected to database", "name", cfg.Database.Name, "host", cfg.Database.Host)

	static, err := web.Static()
	if err != nil {
		slog.Error("load embedded clients", "error", err)
		os.Exit(1)
	}

	h := handler.NewHandler(
		store.NewUserStore(db),
		store.NewAdminStore(db),
		cfg.JWT.Secret,
		cfg.JWT.Expiration,
	)

	router := handlers.LoggingHandler(os.Stdout, h.Routes(static, cfg.CORS.AllowedOrigins))

	slog.Info("server listening", "port", cfg.Server.Port, "env", cfg.Server.Env)
	if err := http.ListenAndServe(":"+cfg.Server.Port, router); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
