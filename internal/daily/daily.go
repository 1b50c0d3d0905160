// Package daily picks the same root word for every player on a given UTC day.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordscramble/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Provider is a game.RootProvider returning the day's root from Source.
type Provider struct {
	Source words.Lister
	Salt   string
	Now    func() time.Time // defaults to time.Now
}

// PickRandomRoot returns the root for today; ok is false for an empty corpus.
func (p Provider) PickRandomRoot() (string, bool, error) {
	list, err := p.Source.Words()
	if err != nil {
		return "", false, err
	}
	if len(list) == 0 {
		return "", false, nil
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return list[WordIndex(now(), p.Salt, len(list))], true, nil
}
