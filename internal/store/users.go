package store

import (
	"context"
	"database/sql"
	"fmt"

	"contactdesk/internal/models"
)

// UserStore runs the queries behind the public form and the dashboard.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, in models.UserInput) error {
	query := `INSERT INTO users (name, email, phone, address) VALUES ($1, $2, $3, $4)`

	_, err := s.db.ExecContext(ctx, query, in.Name, in.Email, in.Phone, in.Address)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// List returns every record, newest first. There is no server-side
// paging; the dashboard pages client-side.
func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, name, email, phone, address, created_at FROM users ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// Update rewrites the four client-supplied fields of one record and
// reports how many rows matched. Identity and created_at never change.
func (s *UserStore) Update(ctx context.Context, id int, in models.UserInput) (int64, error) {
	query := `UPDATE users SET name = $1, email = $2, phone = $3, address = $4 WHERE id = $5`

	res, err := s.db.ExecContext(ctx, query, in.Name, in.Email, in.Phone, in.Address, id)
	if err != nil {
		return 0, fmt.Errorf("update user: %w", err)
	}
	return res.RowsAffected()
}

// Delete removes one record and reports how many rows matched.
func (s *UserStore) Delete(ctx context.Context, id int) (int64, error) {
	query := `DELETE FROM users WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	return res.RowsAffected()
}
