package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/daily"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/httpserver"
	"github.com/robalobadob/wordscramble/internal/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "wordscramble",
		Short:        "Make as many words as you can from a root word",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newPlayCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON HTTP API",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := mustConfig()
			if port != "" {
				cfg.Port = port
			}

			o, err := loadOracles(cmd.Context(), cfg)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to load word lists")
			}
			defer o.Close()

			srv := httpserver.New(cfg, httpserver.Deps{
				Store:     store.NewMemoryStore(),
				Roots:     o.Roots,
				Daily:     daily.Provider{Source: o.Lister, Salt: cfg.DailySalt},
				Checker:   o.Checker,
				Lang:      o.Lang,
				WordStats: o.Stats,
			})
			log.Info().Str("port", cfg.Port).Msg("starting wordscramble")
			if err := srv.Start(":" + cfg.Port); err != nil {
				log.Fatal().Err(err).Msg("server exited")
			}
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}

func newPlayCmd() *cobra.Command {
	var dailyMode bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Run: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			cfg := mustConfig()

			o, err := loadOracles(cmd.Context(), cfg)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to load word lists")
			}
			defer o.Close()

			var roots game.RootProvider = o.Roots
			if dailyMode {
				roots = daily.Provider{Source: o.Lister, Salt: cfg.DailySalt}
			}
			if err := runPlay(cmd.InOrStdin(), cmd.OutOrStdout(), roots, o.Checker, o.Lang); err != nil {
				log.Fatal().Err(err).Msg("cannot start a game")
			}
		},
	}
	cmd.Flags().BoolVar(&dailyMode, "daily", false, "use today's shared root word")
	return cmd
}

// mustConfig loads configuration and applies the log level.
func mustConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	cfg.ApplyLogLevel()
	return cfg
}
