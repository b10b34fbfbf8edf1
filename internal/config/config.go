// internal/config/config.go
//
// Runtime configuration read from the environment.
// main loads an optional .env file first (godotenv), then calls Load.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/internal/words"
)

// Config holds every environment-driven setting.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"` // console | json
	NoColor   bool   `env:"NO_COLOR"`

	Locale     string `env:"GAME_LOCALE"       envDefault:"en"`
	StartFile  string `env:"WORDS_START_FILE"`
	DictFile   string `env:"WORDS_DICT_FILE"`
	DictLocale string `env:"WORDS_DICT_LOCALE" envDefault:"en"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env.Parse cannot.
func (c Config) Validate() error {
	game, err := language.Parse(c.Locale)
	if err != nil {
		return fmt.Errorf("GAME_LOCALE %q: %w", c.Locale, err)
	}
	dict, err := language.Parse(c.DictLocale)
	if err != nil {
		return fmt.Errorf("WORDS_DICT_LOCALE %q: %w", c.DictLocale, err)
	}
	// Input and lists are lowercased with their own locale's rules and
	// looked up by base language, so the two must agree.
	gameBase, _ := game.Base()
	dictBase, _ := dict.Base()
	if gameBase != dictBase {
		return fmt.Errorf("GAME_LOCALE %q and WORDS_DICT_LOCALE %q must share a language", c.Locale, c.DictLocale)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT %q: want console or json", c.LogFormat)
	}
	return nil
}

// Sources maps the word list settings for words.Load.
func (c Config) Sources() words.Sources {
	return words.Sources{
		StartFile:  c.StartFile,
		DictFile:   c.DictFile,
		DictLocale: c.DictLocale,
	}
}
