package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"contactdesk/internal/models"
)

// AdminStore reads dashboard accounts. Admins are provisioned out of
// band; nothing here writes to the table.
type AdminStore struct {
	db *sql.DB
}

func NewAdminStore(db *sql.DB) *AdminStore {
	return &AdminStore{db: db}
}

// GetByUsername looks up one admin by exact username match.
func (s *AdminStore) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := `SELECT id, username, password FROM admins WHERE username = $1`

	admin := &models.Admin{}
	err := s.db.QueryRowContext(ctx, query, username).Scan(&admin.ID, &admin.Username, &admin.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select admin: %w", err)
	}

	return admin, nil
}
