// internal/words/words.go
//
// Root word corpus for the game engine.
//
// Responsibilities:
//   - Parse newline-delimited corpora (lowercase, trimmed, alphabetic only;
//     blank lines and # comments skipped).
//   - Pick a uniformly random root with crypto/rand.
//
// Providers:
//   - Corpus:     an in-memory list (the embedded start.txt by default).
//   - FileCorpus: re-reads a file on every pick, so a corpus that vanishes
//     surfaces as an error at new-game time.
//
// Both satisfy game.RootProvider and Lister.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordscramble/assets"
)

// Lister exposes the full corpus, for providers that choose deterministically.
type Lister interface {
	Words() ([]string, error)
}

// Corpus is an in-memory root word list.
type Corpus struct {
	words []string
}

// NewCorpus builds a corpus from already-split lines.
func NewCorpus(lines []string) *Corpus {
	var out []string
	for _, l := range lines {
		if w, ok := clean(l); ok {
			out = append(out, w)
		}
	}
	return &Corpus{words: out}
}

// Embedded returns the corpus compiled into the binary.
func Embedded() (*Corpus, error) {
	lines, err := assets.StartWords()
	if err != nil {
		return nil, err
	}
	return NewCorpus(lines), nil
}

// PickRandomRoot returns a random word; ok is false for an empty corpus.
func (c *Corpus) PickRandomRoot() (string, bool, error) {
	w, ok := pick(c.words)
	return w, ok, nil
}

// Words returns the parsed corpus.
func (c *Corpus) Words() ([]string, error) { return c.words, nil }

// Len reports the number of usable roots.
func (c *Corpus) Len() int { return len(c.words) }

// FileCorpus reads roots from Path on every call.
type FileCorpus struct {
	Path string
}

// PickRandomRoot loads the file and picks a random line from it.
func (f FileCorpus) PickRandomRoot() (string, bool, error) {
	list, err := f.Words()
	if err != nil {
		return "", false, err
	}
	w, ok := pick(list)
	return w, ok, nil
}

// Words loads and parses the file.
func (f FileCorpus) Words() ([]string, error) {
	if f.Path == "" {
		return nil, errors.New("words: no corpus path configured")
	}
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return ReadList(fh)
}

// ReadList reads one word per line, keeping only clean alphabetic entries.
func ReadList(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w, ok := clean(sc.Text()); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// clean lowercases and trims a line; comments, blanks and words with
// non-letters are rejected.
func clean(line string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(line))
	if w == "" || strings.HasPrefix(w, "#") || !isAlpha(w) {
		return "", false
	}
	return w, true
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func pick(list []string) (string, bool) {
	if len(list) == 0 {
		return "", false
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		return list[0], true
	}
	return list[nBig.Int64()], true
}
