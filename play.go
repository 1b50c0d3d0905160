package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/internal/game"
)

const playHelp = "Type a word and press enter. :new starts over, :words lists your words, :quit exits."

// runPlay is the terminal control loop. It owns exactly one session and
// submits each input line to it in turn.
func runPlay(in io.Reader, out io.Writer, roots game.RootProvider, sc game.SpellChecker, lang language.Tag) error {
	s, err := game.NewGame(roots)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, playHelp)
	printRoot(out, s)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := scanner.Text()

		switch strings.TrimSpace(line) {
		case ":quit", ":q":
			fmt.Fprintf(out, "Final score: %d\n", s.Score)
			return nil
		case ":new":
			if err := s.Reset(roots); err != nil {
				return err
			}
			printRoot(out, s)
			continue
		case ":words":
			printWords(out, s)
			continue
		case "":
			continue
		}

		s.Candidate = line
		r := s.Submit(line, sc, lang)
		if r.Accepted {
			fmt.Fprintf(out, "+ %s (%d letters). Your score is %d\n", r.Word, len([]rune(r.Word)), s.Score)
		} else {
			fmt.Fprintf(out, "%s: %s\n", r.Title, r.Message)
		}
	}
	fmt.Fprintf(out, "Final score: %d\n", s.Score)
	return scanner.Err()
}

func printRoot(out io.Writer, s *game.Session) {
	fmt.Fprintf(out, "Root word: %s\n", s.RootWord)
}

func printWords(out io.Writer, s *game.Session) {
	if len(s.UsedWords) == 0 {
		fmt.Fprintln(out, "No words yet.")
		return
	}
	for _, w := range s.UsedWords {
		fmt.Fprintf(out, "  %d  %s\n", len([]rune(w)), w)
	}
}
