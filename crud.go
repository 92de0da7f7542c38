//go:build !wasm

package storefront

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/tinywasm/unixid"
)

// nullableStr converts "" to nil so SQLite stores NULL instead of an empty string.
func nullableStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func newID() (string, error) {
	u, err := unixid.NewUnixID()
	if err != nil {
		return "", err
	}
	return u.GetNewID(), nil
}

const accountColumns = "id, COALESCE(email, ''), name, COALESCE(phone, ''), status, created_at"

func (s *Store) CreateAccount(email, name, phone string) (Account, error) {
	id, err := newID()
	if err != nil {
		return Account{}, err
	}
	email = normalizeEmail(email)
	now := time.Now().Unix()

	if err := s.exec.Exec(
		`INSERT INTO accounts (id, email, name, phone, created_at)
         VALUES (?, ?, ?, ?, ?)`,
		id, nullableStr(email), name, nullableStr(phone), now,
	); err != nil {
		if isUniqueViolation(err) {
			return Account{}, ErrEmailTaken
		}
		return Account{}, err
	}
	return Account{ID: id, Email: email, Name: name, Phone: phone, Status: "active", CreatedAt: now}, nil
}

func (s *Store) GetAccount(id string) (Account, error) {
	return s.scanAccount(s.exec.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE id = ?", id))
}

func (s *Store) GetAccountByEmail(email string) (Account, error) {
	return s.scanAccount(s.exec.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE email = ?", normalizeEmail(email)))
}

func (s *Store) scanAccount(row Scanner) (Account, error) {
	var a Account
	if err := row.Scan(&a.ID, &a.Email, &a.Name, &a.Phone, &a.Status, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, ErrNotFound
		}
		return Account{}, err
	}
	return a, nil
}

func (s *Store) SuspendAccount(id string) error {
	return s.exec.Exec("UPDATE accounts SET status = 'suspended' WHERE id = ?", id)
}

func (s *Store) ReactivateAccount(id string) error {
	return s.exec.Exec("UPDATE accounts SET status = 'active' WHERE id = ?", id)
}

func (s *Store) deleteAccount(id string) error {
	return s.exec.Exec("DELETE FROM accounts WHERE id = ?", id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "constraint: unique") ||
		strings.Contains(err.Error(), "duplicate key")
}
