//go:build !wasm

package storefront

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

const oauthStateTTL = 600 // 10 minutes

// BeginOAuth stores a one-shot state and returns the provider's consent URL.
func (s *Store) BeginOAuth(providerName string) (string, error) {
	p := s.provider(providerName)
	if p == nil {
		return "", ErrProviderNotFound
	}

	state, err := newID()
	if err != nil {
		return "", err
	}
	now := time.Now().Unix()
	if err := s.exec.Exec(
		"INSERT INTO oauth_states (state, provider, expires_at, created_at) VALUES (?, ?, ?, ?)",
		state, providerName, now+oauthStateTTL, now,
	); err != nil {
		return "", err
	}
	return p.AuthCodeURL(state), nil
}

// CompleteOAuth exchanges the callback code and resolves the account: an
// existing identity, an existing account with the same e-mail (linked), or a
// freshly created account. The bool reports whether the account is new.
func (s *Store) CompleteOAuth(ctx context.Context, providerName, state, code string) (Account, bool, error) {
	if err := s.consumeState(state, providerName); err != nil {
		return Account{}, false, ErrInvalidOAuthState
	}

	p := s.provider(providerName)
	if p == nil {
		return Account{}, false, ErrProviderNotFound
	}

	token, err := p.ExchangeCode(ctx, code)
	if err != nil {
		return Account{}, false, err
	}
	info, err := p.GetUserInfo(ctx, token)
	if err != nil {
		return Account{}, false, err
	}

	if identity, err := s.GetIdentityByProvider(providerName, info.ID); err == nil {
		a, err := s.GetAccount(identity.AccountID)
		return a, false, err
	}

	if a, err := s.GetAccountByEmail(info.Email); err == nil {
		if err := s.CreateIdentity(a.ID, providerName, info.ID, info.Email); err != nil {
			s.log.Warn().Err(err).Str("provider", providerName).Msg("link identity")
		}
		return a, false, nil
	}

	a, err := s.CreateAccount(info.Email, info.Name, "")
	if err != nil {
		return Account{}, false, err
	}
	if err := s.CreateIdentity(a.ID, providerName, info.ID, info.Email); err != nil {
		return Account{}, false, err
	}
	s.log.Info().Str("account_id", a.ID).Str("provider", providerName).Msg("account created")
	return a, true, nil
}

func (s *Store) consumeState(state, provider string) error {
	var expiresAt int64
	var dbProvider string
	err := s.exec.QueryRow("SELECT expires_at, provider FROM oauth_states WHERE state = ?", state).Scan(&expiresAt, &dbProvider)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidOAuthState
		}
		return err
	}
	if dbProvider != provider {
		return ErrInvalidOAuthState
	}

	// single use, even when expired
	if err := s.exec.Exec("DELETE FROM oauth_states WHERE state = ?", state); err != nil {
		return err
	}
	if expiresAt < time.Now().Unix() {
		return ErrInvalidOAuthState
	}
	return nil
}

func (s *Store) PurgeExpiredOAuthStates() error {
	return s.exec.Exec("DELETE FROM oauth_states WHERE expires_at < ?", time.Now().Unix())
}
