// Package store persists per-user bot state (identity, language
// preference, admin flags) in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested user does not exist.
var ErrNotFound = errors.New("store: user not found")

// User is one registered chat user.
type User struct {
	ChatID    int64
	Username  string
	Language  string
	CreatedAt time.Time
	LastSeen  time.Time
}

// Store wraps the SQLite connection holding user state.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (and creates if needed) the user database at path and runs
// pending migrations. Use ":memory:" for an in-memory database.
func Open(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening user database: %w", err)
	}
	// SQLite allows one writer; a second pooled connection would also
	// see a fresh database when path is ":memory:".
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging user database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewWithDB wraps an existing connection. The caller owns migrations;
// used by tests that supply a mock.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// UpsertUser records a sighting of a user: inserts on first contact,
// otherwise refreshes the username and last-seen timestamp. The stored
// language preference is never touched here.
func (s *Store) UpsertUser(ctx context.Context, chatID int64, username string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (chat_id, username) VALUES (?, ?)
		ON CONFLICT (chat_id) DO UPDATE SET
			username = excluded.username,
			last_seen = CURRENT_TIMESTAMP`,
		chatID, username)
	if err != nil {
		return fmt.Errorf("upserting user %d: %w", chatID, err)
	}
	return nil
}

// SetLanguage stores the user's language preference.
func (s *Store) SetLanguage(ctx context.Context, chatID int64, language string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET language = ? WHERE chat_id = ?`, language, chatID)
	if err != nil {
		return fmt.Errorf("setting language for user %d: %w", chatID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, chatID)
	}
	return nil
}

// GetUser fetches one user by chat ID.
func (s *Store) GetUser(ctx context.Context, chatID int64) (*User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT chat_id, username, language, created_at, last_seen
		FROM users WHERE chat_id = ?`, chatID)

	var u User
	err := row.Scan(&u.ChatID, &u.Username, &u.Language, &u.CreatedAt, &u.LastSeen)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, chatID)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching user %d: %w", chatID, err)
	}
	return &u, nil
}

// ListUsers returns every registered user, oldest first.
func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT chat_id, username, language, created_at, last_seen
		FROM users ORDER BY created_at, chat_id`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ChatID, &u.Username, &u.Language, &u.CreatedAt, &u.LastSeen); err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

// CountUsers returns the number of registered users.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return count, nil
}

// AddAdmin grants admin rights to a chat ID.
func (s *Store) AddAdmin(ctx context.Context, chatID int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO admins (chat_id) VALUES (?) ON CONFLICT (chat_id) DO NOTHING`, chatID)
	if err != nil {
		return fmt.Errorf("adding admin %d: %w", chatID, err)
	}
	return nil
}

// IsAdmin reports whether a chat ID has admin rights.
func (s *Store) IsAdmin(ctx context.Context, chatID int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM admins WHERE chat_id = ?`, chatID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking admin %d: %w", chatID, err)
	}
	return true, nil
}
