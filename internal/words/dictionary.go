// internal/words/dictionary.go
//
// Spell checkers consulted by the engine's dictionary check.
//
//   - SetChecker:    an in-memory word set for a single language.
//   - SQLiteChecker: a (lang, word) table in SQLite, seeded from a word list.
//
// Both satisfy game.SpellChecker.

package words

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/assets"
)

// DictionaryLines returns the dictionary at path, or the embedded one if
// path is empty. The second value names the source for logging.
func DictionaryLines(path string) ([]string, string, error) {
	if path == "" {
		list, err := assets.DictionaryWords()
		if err != nil {
			return nil, "", err
		}
		out, _ := ReadList(strings.NewReader(strings.Join(list, "\n")))
		return out, "embedded", nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer fh.Close()
	out, err := ReadList(fh)
	return out, path, err
}

// SetChecker is an in-memory dictionary for one language.
type SetChecker struct {
	lang  language.Tag
	words map[string]struct{}
}

// NewSetChecker builds a checker for lang from a word list.
func NewSetChecker(lang language.Tag, list []string) *SetChecker {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[strings.ToLower(w)] = struct{}{}
	}
	return &SetChecker{lang: lang, words: m}
}

// IsValidWord reports whether word is known in lang.
// Only the base language is compared, so en-GB matches an en dictionary.
func (c *SetChecker) IsValidWord(word string, lang language.Tag) bool {
	if !sameBase(c.lang, lang) {
		return false
	}
	_, ok := c.words[strings.ToLower(word)]
	return ok
}

// Len reports the number of words in the set.
func (c *SetChecker) Len() int { return len(c.words) }

// SQLiteChecker looks words up in the dictionary table.
type SQLiteChecker struct {
	db *sql.DB
}

// NewSQLiteChecker wraps a migrated database handle.
func NewSQLiteChecker(db *sql.DB) *SQLiteChecker { return &SQLiteChecker{db: db} }

// Load inserts list under lang, ignoring words already present, and
// records the source. Returns the number of newly inserted words.
func (c *SQLiteChecker) Load(ctx context.Context, lang language.Tag, source string, list []string) (int, error) {
	key := langKey(lang)
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO dictionary(lang, word) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, w := range list {
		res, err := stmt.ExecContext(ctx, key, strings.ToLower(w))
		if err != nil {
			return 0, fmt.Errorf("insert %q: %w", w, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			added++
		}
	}

	var total int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM dictionary WHERE lang=?`, key).Scan(&total); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
        INSERT INTO dictionary_sources(lang, source, words, loaded_at) VALUES (?, ?, ?, ?)
        ON CONFLICT(lang) DO UPDATE SET source=excluded.source, words=excluded.words, loaded_at=excluded.loaded_at`,
		key, source, total, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return 0, fmt.Errorf("record source: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// IsValidWord reports whether word is in the dictionary for lang.
// Lookup failures are logged and treated as unknown words.
func (c *SQLiteChecker) IsValidWord(word string, lang language.Tag) bool {
	var one int
	err := c.db.QueryRow(`SELECT 1 FROM dictionary WHERE lang=? AND word=?`,
		langKey(lang), strings.ToLower(word)).Scan(&one)
	switch {
	case err == nil:
		return true
	case err == sql.ErrNoRows:
		return false
	default:
		log.Warn().Err(err).Str("word", word).Msg("dictionary lookup")
		return false
	}
}

// Count returns the number of words stored for lang.
func (c *SQLiteChecker) Count(ctx context.Context, lang language.Tag) (int, error) {
	var n int
	err := c.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM dictionary WHERE lang=?`, langKey(lang)).Scan(&n)
	return n, err
}

// langKey stores dictionaries by base language ("en", "fr", ...).
func langKey(t language.Tag) string {
	base, _ := t.Base()
	return base.String()
}

func sameBase(a, b language.Tag) bool {
	return langKey(a) == langKey(b)
}
