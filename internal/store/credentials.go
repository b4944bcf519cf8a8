// Package store persists the small amount of local state the CLI keeps:
// the bearer token plus a few preferences, as key-value rows in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"time"
)

const (
	keyAuthToken = "auth_token"
	keyLastEmail = "last_email"
)

// CredentialStore is the durable home of the bearer token. The token is
// stored in the clear; the API surfaces no at-rest encryption requirement.
type CredentialStore struct {
	db *sql.DB
}

func NewCredentialStore(db *sql.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

// Token returns the persisted bearer token, or "" when signed out.
func (s *CredentialStore) Token() (string, error) {
	return s.get(keyAuthToken)
}

// SetToken persists the bearer token, replacing any previous one.
func (s *CredentialStore) SetToken(token string) error {
	return s.set(keyAuthToken, token)
}

// ClearToken removes the persisted bearer token.
func (s *CredentialStore) ClearToken() error {
	return s.clear(keyAuthToken)
}

// LastEmail returns the email used for the most recent sign-in, or "".
func (s *CredentialStore) LastEmail() (string, error) {
	return s.get(keyLastEmail)
}

// SetLastEmail remembers the email used to sign in, for pre-filling.
func (s *CredentialStore) SetLastEmail(email string) error {
	return s.set(keyLastEmail, email)
}

func (s *CredentialStore) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get credential %q: %w", key, err)
	}
	return value, nil
}

func (s *CredentialStore) set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO credentials (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set credential %q: %w", key, err)
	}
	return nil
}

func (s *CredentialStore) clear(key string) error {
	if _, err := s.db.Exec(`DELETE FROM credentials WHERE key = ?`, key); err != nil {
		return fmt.Errorf("clear credential %q: %w", key, err)
	}
	return nil
}
