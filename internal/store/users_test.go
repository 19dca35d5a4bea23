package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactdesk/internal/models"
)

func newUserStoreWithMock(t *testing.T) (*UserStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserStore(db), mock
}

func TestUserCreate(t *testing.T) {
	s, mock := newUserStoreWithMock(t)

	mock.ExpectExec(`^INSERT INTO users \(name, email, phone, address\) VALUES \(\$1, \$2, \$3, \$4\)$`).
		WithArgs("Ada", "ada@x.com", "555", "1 Main St").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.Create(context.Background(), models.UserInput{
		Name: "Ada", Email: "ada@x.com", Phone: "555", Address: "1 Main St",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateDBError(t *testing.T) {
	s, mock := newUserStoreWithMock(t)

	mock.ExpectExec(`^INSERT INTO users`).
		WillReturnError(errors.New("connection refused"))

	err := s.Create(context.Background(), models.UserInput{Name: "Ada"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestUserListNewestFirst(t *testing.T) {
	s, mock := newUserStoreWithMock(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "address", "created_at"}).
		AddRow(2, "Grace", "grace@x.com", "556", "2 Side St", now).
		AddRow(1, "Ada", "ada@x.com", "555", "1 Main St", now.Add(-time.Minute))

	mock.ExpectQuery(`^SELECT id, name, email, phone, address, created_at FROM users ORDER BY created_at DESC$`).
		WillReturnRows(rows)

	users, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Grace", users[0].Name)
	assert.Equal(t, "Ada", users[1].Name)
	assert.Equal(t, 1, users[1].ID)
}

func TestUserListEmpty(t *testing.T) {
	s, mock := newUserStoreWithMock(t)

	mock.ExpectQuery(`^SELECT id, name, email, phone, address, created_at FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "address", "created_at"}))

	users, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserListDBError(t *testing.T) {
	s, mock := newUserStoreWithMock(t)

	mock.ExpectQuery(`^SELECT id, name`).WillReturnError(errors.New("db down"))

	_, err := s.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestUserUpdateReportsRowsAffected(t *testing.T) {
	s, mock := newUserStoreWithMock(t)

	mock.ExpectExec(`^UPDATE users SET name = \$1, email = \$2, phone = \$3, address = \$4 WHERE id = \$5$`).
		WithArgs("Ada", "ada@x.com", "555", "1 Main St", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := s.Update(context.Background(), 7, models.UserInput{
		Name: "Ada", Email: "ada@x.com", Phone: "555", Address: "1 Main St",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUserUpdateUnknownIDMatchesNoRows(t *testing.T) {
	s, mock := newUserStoreWithMock(t)

	mock.ExpectExec(`^UPDATE users SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := s.Update(context.Background(), 999, models.UserInput{Name: "Ghost"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestUserDelete(t *testing.T) {
	s, mock := newUserStoreWithMock(t)

	mock.ExpectExec(`^DELETE FROM users WHERE id = \$1$`).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := s.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUserDeleteDBError(t *testing.T) {
	s, mock := newUserStoreWithMock(t)

	mock.ExpectExec(`^DELETE FROM users`).
		WillReturnError(errors.New("db down"))

	_, err := s.Delete(context.Background(), 7)
	assert.Error(t, err)
}
