//go:build !wasm

package storefront

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var PasswordHashCost = bcrypt.DefaultCost

const localProvider = "local"

// Signup creates an account with a local password identity. The password is
// checked before the account row is written so a weak password leaves no
// trace behind.
func (s *Store) Signup(ctx context.Context, name, email, password, mobile string) (Account, error) {
	if err := ctx.Err(); err != nil {
		return Account{}, err
	}
	if len(password) < s.config.MinPasswordLength {
		return Account{}, ErrWeakPassword
	}
	a, err := s.CreateAccount(email, strings.TrimSpace(name), strings.TrimSpace(mobile))
	if err != nil {
		return Account{}, err
	}
	if err := s.SetPassword(a.ID, password); err != nil {
		if derr := s.deleteAccount(a.ID); derr != nil {
			s.log.Error().Err(derr).Str("account_id", a.ID).Msg("rollback account after password failure")
		}
		return Account{}, err
	}
	s.log.Info().Str("account_id", a.ID).Msg("account created")
	return a, nil
}

func (s *Store) Login(email, password string) (Account, error) {
	a, err := s.GetAccountByEmail(email)
	if err != nil {
		return Account{}, ErrInvalidCredentials
	}
	if a.Status == "suspended" {
		return Account{}, ErrSuspended
	}
	if err := s.VerifyPassword(a.ID, password); err != nil {
		return Account{}, err
	}
	return a, nil
}

func (s *Store) SetPassword(accountID, password string) error {
	if len(password) < s.config.MinPasswordLength {
		return ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return err
	}
	return s.upsertIdentity(accountID, localProvider, string(hash), "")
}

func (s *Store) VerifyPassword(accountID, password string) error {
	identity, err := s.identityFor(accountID, localProvider)
	if err != nil {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(identity.ProviderID), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
