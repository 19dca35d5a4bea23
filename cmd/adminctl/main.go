// Command adminctl provisions dashboard accounts. The API never writes
// to the admins table; this tool is the out-of-band path.
package main

import (
	"flag"
	"log/slog"
	"os"

	"contactdesk/config"
	"contactdesk/internal/auth"
	"contactdesk/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	username := flag.String("username", "", "admin username (required)")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *username == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment")
	}
	cfg := config.Load()

	db, err := database.Open(cfg.Database)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		slog.Error("hash password", "error", err)
		os.Exit(1)
	}

	query := `INSERT INTO admins (username, password) VALUES ($1, $2)
	          ON CONFLICT (username) DO UPDATE SET password = EXCLUDED.password`
	if _, err := db.Exec(query, *username, hash); err != nil {
		slog.Error("provision admin", "username", *username, "error", err)
		os.Exit(1)
	}

	slog.Info("admin provisioned", "username", *username)
}
