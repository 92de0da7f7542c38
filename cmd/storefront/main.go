// Command storefront serves the SaiFashionZone homepage and sign-up form
// backed by a local SQLite account store.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/saifashionzone/storefront"
)

func main() {
	envFile := flag.String("env", ".env", "optional env file")
	flag.Parse()

	cfg, err := loadConfig(*envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("parse log level")
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("storefront stopped")
	}
}

func run(ctx context.Context, cfg config, logger zerolog.Logger) error {
	db, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return err
	}

	var providers []storefront.OAuthProvider
	if cfg.Google.enabled() {
		providers = append(providers, &storefront.GoogleProvider{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
		})
	}
	if cfg.Microsoft.enabled() {
		providers = append(providers, &storefront.MicrosoftProvider{
			ClientID:     cfg.Microsoft.ClientID,
			ClientSecret: cfg.Microsoft.ClientSecret,
			RedirectURL:  cfg.Microsoft.RedirectURL,
		})
	}

	store, err := storefront.New(storefront.DBExecutor{DB: db}, storefront.Config{
		SessionTTL:        cfg.SessionTTL,
		TrustProxy:        cfg.TrustProxy,
		InsecureCookie:    !cfg.HTTPS,
		MinPasswordLength: cfg.MinPassword,
		OAuthProviders:    providers,
		Logger:            &logger,
	})
	if err != nil {
		return err
	}

	pages := storefront.DefaultPages()
	pages.FrontWASM = cfg.FrontWASM
	pages.WASMExec = cfg.WASMExec
	pages.Providers = store.Providers()

	form := storefront.NewSignUpForm(store,
		storefront.WithFieldValidator(storefront.SignUpModule.ValidateDraft),
		storefront.WithSignUpLogger(logger.With().Str("component", "signup").Logger()),
	)

	opts := []storefront.ServerOption{
		storefront.WithPages(pages),
		storefront.WithSessions(store),
		storefront.WithServerLogger(logger),
	}
	if len(providers) > 0 {
		opts = append(opts, storefront.WithOAuth(store))
	}
	if cfg.AssetsDir != "" {
		opts = append(opts, storefront.WithAssets(cfg.AssetsDir))
	}
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           storefront.NewServer(form, opts...).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go purgeExpired(ctx, store, logger)

	errc := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// purgeExpired drops stale sessions and OAuth states every hour.
func purgeExpired(ctx context.Context, store *storefront.Store, logger zerolog.Logger) {
	t := time.NewTicker(time.Hour)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := store.PurgeExpiredSessions(); err != nil {
				logger.Warn().Err(err).Msg("purge sessions")
			}
			if err := store.PurgeExpiredOAuthStates(); err != nil {
				logger.Warn().Err(err).Msg("purge oauth states")
			}
		}
	}
}
