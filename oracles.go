package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/assets"
	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/db"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/words"
)

// rootSource is both a random provider and a full listing (for daily mode).
type rootSource interface {
	game.RootProvider
	words.Lister
}

// oracles are the word corpus and dictionary a game consults.
type oracles struct {
	Roots   rootSource
	Lister  words.Lister
	Checker *words.SQLiteChecker
	Lang    language.Tag

	db        *sql.DB
	rootCount int
	dictCount int
}

// loadOracles resolves the root corpus and seeds the SQLite dictionary.
// Any failure here is a startup error: without a corpus there is no game.
func loadOracles(ctx context.Context, cfg config.Config) (*oracles, error) {
	lang, err := cfg.Lang()
	if err != nil {
		return nil, err
	}

	var roots rootSource
	if cfg.StartFile != "" {
		roots = words.FileCorpus{Path: cfg.StartFile}
	} else {
		c, err := words.Embedded()
		if err != nil {
			return nil, fmt.Errorf("embedded corpus: %w", err)
		}
		roots = c
	}
	list, err := roots.Words()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrCorpusUnavailable, err)
	}
	if len(list) == 0 {
		log.Warn().Str("fallback", game.FallbackRoot).Msg("root corpus is empty")
	}

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBPath, err)
	}
	if err := db.Migrate(conn, assets.Migrations()); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	dict, source, err := words.DictionaryLines(cfg.DictFile)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	checker := words.NewSQLiteChecker(conn)
	added, err := checker.Load(ctx, lang, source, dict)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	total, err := checker.Count(ctx, lang)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	log.Info().
		Int("roots", len(list)).
		Int("dictionary", total).
		Int("added", added).
		Str("source", source).
		Str("lang", lang.String()).
		Msg("word lists loaded")

	return &oracles{
		Roots:     roots,
		Lister:    roots,
		Checker:   checker,
		Lang:      lang,
		db:        conn,
		rootCount: len(list),
		dictCount: total,
	}, nil
}

// Stats reports (roots, dictionary words) as loaded at startup.
func (o *oracles) Stats() (int, int) { return o.rootCount, o.dictCount }

// Close releases the dictionary database.
func (o *oracles) Close() {
	if err := o.db.Close(); err != nil {
		log.Warn().Err(err).Msg("close dictionary db")
	}
}
