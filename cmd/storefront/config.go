package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type config struct {
	Addr        string `env:"STOREFRONT_ADDR" envDefault:":8080"`
	DBPath      string `env:"STOREFRONT_DB_PATH" envDefault:"storefront.db"`
	AssetsDir   string `env:"STOREFRONT_ASSETS_DIR"`
	FrontWASM   string `env:"STOREFRONT_FRONT_WASM"`
	WASMExec    string `env:"STOREFRONT_WASM_EXEC" envDefault:"/assets/wasm_exec.js"`
	SessionTTL  int    `env:"STOREFRONT_SESSION_TTL" envDefault:"86400"`
	TrustProxy  bool   `env:"STOREFRONT_TRUST_PROXY"`
	HTTPS       bool   `env:"STOREFRONT_HTTPS"`
	MinPassword int    `env:"STOREFRONT_MIN_PASSWORD" envDefault:"6"`
	LogLevel    string `env:"STOREFRONT_LOG_LEVEL" envDefault:"info"`

	Google    oauthConfig `envPrefix:"GOOGLE_"`
	Microsoft oauthConfig `envPrefix:"MICROSOFT_"`
}

type oauthConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URL"`
}

func (c oauthConfig) enabled() bool { return c.ClientID != "" && c.ClientSecret != "" }

// loadConfig reads an optional env file, then the process environment.
// Variables already set in the environment win over the file.
func loadConfig(envFile string) (config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
