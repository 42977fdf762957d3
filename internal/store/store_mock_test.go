package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Error paths are exercised against a mock connection; the happy paths
// run against a real in-memory database in store_test.go.

func TestStore_UpsertUser_DatabaseError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(int64(1), "ghost").
		WillReturnError(errors.New("disk I/O error"))

	s := NewWithDB(db)
	err = s.UpsertUser(context.Background(), 1, "ghost")
	assert.ErrorContains(t, err, "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListUsers_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"chat_id", "username", "language", "created_at", "last_seen"}).
		AddRow("not-an-int", "x", "en", "bad", "bad")
	mock.ExpectQuery("SELECT chat_id, username, language").WillReturnRows(rows)

	s := NewWithDB(db)
	_, err = s.ListUsers(context.Background())
	assert.Error(t, err)
}

func TestStore_CountUsers_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("locked"))

	s := NewWithDB(db)
	_, err = s.CountUsers(context.Background())
	assert.ErrorContains(t, err, "locked")
}
