//go:build !wasm

package storefront

import (
	"database/sql"
	"errors"
	"time"
)

const identityColumns = "id, account_id, provider, provider_id, COALESCE(email, ''), created_at"

func (s *Store) CreateIdentity(accountID, provider, providerID, email string) error {
	id, err := newID()
	if err != nil {
		return err
	}
	return s.exec.Exec(
		`INSERT INTO account_identities (id, account_id, provider, provider_id, email, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, accountID, provider, providerID, nullableStr(email), time.Now().Unix(),
	)
}

func (s *Store) GetIdentityByProvider(provider, providerID string) (Identity, error) {
	return scanIdentity(s.exec.QueryRow(
		"SELECT "+identityColumns+" FROM account_identities WHERE provider = ? AND provider_id = ?",
		provider, providerID,
	))
}

func (s *Store) identityFor(accountID, provider string) (Identity, error) {
	return scanIdentity(s.exec.QueryRow(
		"SELECT "+identityColumns+" FROM account_identities WHERE account_id = ? AND provider = ?",
		accountID, provider,
	))
}

func scanIdentity(row Scanner) (Identity, error) {
	var i Identity
	if err := row.Scan(&i.ID, &i.AccountID, &i.Provider, &i.ProviderID, &i.Email, &i.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Identity{}, ErrNotFound
		}
		return Identity{}, err
	}
	return i, nil
}

func (s *Store) AccountIdentities(accountID string) ([]Identity, error) {
	rows, err := s.exec.Query(
		"SELECT "+identityColumns+" FROM account_identities WHERE account_id = ? ORDER BY created_at ASC",
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var identities []Identity
	for rows.Next() {
		var i Identity
		if err := rows.Scan(&i.ID, &i.AccountID, &i.Provider, &i.ProviderID, &i.Email, &i.CreatedAt); err != nil {
			return nil, err
		}
		identities = append(identities, i)
	}
	return identities, rows.Err()
}

func (s *Store) upsertIdentity(accountID, provider, providerID, email string) error {
	_, err := s.identityFor(accountID, provider)
	switch {
	case err == nil:
		return s.exec.Exec(
			"UPDATE account_identities SET provider_id = ?, email = ? WHERE account_id = ? AND provider = ?",
			providerID, nullableStr(email), accountID, provider,
		)
	case errors.Is(err, ErrNotFound):
		return s.CreateIdentity(accountID, provider, providerID, email)
	default:
		return err
	}
}
