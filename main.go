package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/console"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg)
	if cfg.NoColor {
		pterm.DisableStyling()
	}

	lists, err := words.Load(cfg.Sources())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	roots, dict := lists.Stats()
	log.Debug().Int("roots", roots).Int("dictionary", dict).Msg("word lists loaded")

	g, err := game.New(lists, lists.Dictionary(), game.WithLocale(cfg.Locale))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}
	log.Info().Str("session", g.ID()).Str("root", g.RootWord()).Str("locale", g.Locale()).Msg("new game")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := console.New(g, os.Stdin, os.Stdout).Run(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("console exited")
		stop()
		os.Exit(1)
	}
}

// setupLogging applies LOG_LEVEL and LOG_FORMAT to the global logger.
// Logs go to stderr so they stay off the game screen.
func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen, NoColor: cfg.NoColor})
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}
