//go:build !wasm

package storefront

import (
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

// Store is the local authentication provider: accounts, password and OAuth
// identities, and sessions, persisted through an Executor.
type Store struct {
	exec   Executor
	cache  *sessionCache
	config Config
	log    zerolog.Logger

	providersMu sync.RWMutex
	providers   map[string]OAuthProvider
}

// New runs the schema migrations, registers the configured OAuth providers
// and warms the session cache from unexpired rows.
func New(exec Executor, cfg Config) (*Store, error) {
	cfg.setDefaults()
	if err := runMigrations(exec); err != nil {
		return nil, err
	}
	s := &Store{
		exec:      exec,
		cache:     newSessionCache(),
		config:    cfg,
		log:       cfg.Logger.With().Str("component", "store").Logger(),
		providers: make(map[string]OAuthProvider),
	}
	for _, p := range cfg.OAuthProviders {
		s.RegisterProvider(p)
	}
	if err := s.cache.warmUp(exec); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) SessionCookieName() string { return s.config.SessionCookieName }

func (s *Store) RegisterProvider(p OAuthProvider) {
	s.providersMu.Lock()
	defer s.providersMu.Unlock()
	s.providers[p.Name()] = p
}

func (s *Store) provider(name string) OAuthProvider {
	s.providersMu.RLock()
	defer s.providersMu.RUnlock()
	return s.providers[name]
}

// Providers returns the registered OAuth provider names, sorted.
func (s *Store) Providers() []string {
	s.providersMu.RLock()
	defer s.providersMu.RUnlock()
	names := make([]string, 0, len(s.providers))
	for name := range s.providers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
