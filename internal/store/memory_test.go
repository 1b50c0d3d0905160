package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/internal/game"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		st := NewMemoryStore()
		s := &game.Session{ID: "abc", RootWord: "escargot", UsedWords: []string{"cargo"}}
		require.NoError(t, st.Save(ctx, s))
		assert.Equal(t, 1, st.Len())

		got, err := st.Get(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, "escargot", got.RootWord)

		got.UsedWords[0] = "mutated"
		again, _ := st.Get(ctx, "abc")
		assert.Equal(t, []string{"cargo"}, again.UsedWords, "Get returns a copy")
	})

	t.Run("missing session", func(t *testing.T) {
		st := NewMemoryStore()
		_, err := st.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
		err = st.Update(ctx, "nope", func(*game.Session) error { return nil })
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects sessions without ID", func(t *testing.T) {
		st := NewMemoryStore()
		assert.Error(t, st.Save(ctx, &game.Session{}))
		assert.Error(t, st.Save(ctx, nil))
	})

	t.Run("update passes errors through", func(t *testing.T) {
		st := NewMemoryStore()
		require.NoError(t, st.Save(ctx, &game.Session{ID: "x"}))
		boom := errors.New("boom")
		assert.ErrorIs(t, st.Update(ctx, "x", func(*game.Session) error { return boom }), boom)
	})

	t.Run("update honours cancelled context", func(t *testing.T) {
		st := NewMemoryStore()
		require.NoError(t, st.Save(ctx, &game.Session{ID: "x"}))
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, st.Update(cctx, "x", func(*game.Session) error { return nil }), context.Canceled)
	})

	t.Run("updates are serialized", func(t *testing.T) {
		st := NewMemoryStore()
		require.NoError(t, st.Save(ctx, &game.Session{ID: "x"}))
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = st.Update(ctx, "x", func(s *game.Session) error {
					s.Score++
					return nil
				})
			}()
		}
		wg.Wait()
		got, _ := st.Get(ctx, "x")
		assert.Equal(t, 50, got.Score)
	})
}
