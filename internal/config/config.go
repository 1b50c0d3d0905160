// Package config loads runtime settings from the environment.
//
// A .env file in the working directory is loaded first (development only;
// real environment variables win), then the environment is parsed into
// Config.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// Config holds every setting the server and terminal game read.
type Config struct {
	Port     string `env:"PORT" envDefault:"5175"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	NodeEnv  string `env:"NODE_ENV" envDefault:"development"`

	// DBPath is the SQLite file holding the dictionary.
	DBPath string `env:"DB_PATH" envDefault:"./data/words.db"`

	// StartFile and DictFile override the embedded word lists.
	StartFile string `env:"WORDS_START_FILE"`
	DictFile  string `env:"WORDS_DICT_FILE"`
	Language  string `env:"WORDS_LANGUAGE" envDefault:"en"`

	JWTSecret    string        `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	CookieName   string        `env:"COOKIE_NAME" envDefault:"wordscramble_session"`
	ClientOrigin string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	DailySalt    string        `env:"DAILY_SALT" envDefault:"local_dev_salt"`
}

// Load reads .env (if present) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the environment without touching .env files.
func Parse() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := c.Lang(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Lang parses the configured dictionary language.
func (c Config) Lang() (language.Tag, error) {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Und, fmt.Errorf("WORDS_LANGUAGE %q: %w", c.Language, err)
	}
	return tag, nil
}

// Production reports whether cookies should be Secure/SameSite=None.
func (c Config) Production() bool { return c.NodeEnv == "production" }

// ApplyLogLevel sets the global zerolog level; unknown levels are ignored.
func (c Config) ApplyLogLevel() {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}
