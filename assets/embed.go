// Package assets embeds the default word lists and SQL migrations so the
// binary runs without any files configured.
package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed start.txt dictionary.txt sql/*.sql
var FS embed.FS

// Migrations returns the embedded sql/ directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "sql")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return sub
}

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// StartWords returns the embedded root word corpus.
func StartWords() ([]string, error) {
	return readLines("start.txt")
}

// DictionaryWords returns the embedded English dictionary.
func DictionaryWords() ([]string, error) {
	return readLines("dictionary.txt")
}
