package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("Open missing", func(t *testing.T) {
		_, err := store.Open(ctx, "missing.txt")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Put then Open", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "vocab.txt", []byte("a 2\nb 1\n")))

		r, err := store.Open(ctx, "vocab.txt")
		require.NoError(t, err)
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		require.NoError(t, r.Close())
		assert.Equal(t, "a 2\nb 1\n", string(data))
	})

	t.Run("Create streams and becomes visible on Close", func(t *testing.T) {
		blob, err := store.Create(ctx, "out/vectors.txt")
		require.NoError(t, err)
		_, err = blob.Write([]byte("2 2\n"))
		require.NoError(t, err)
		_, err = blob.Write([]byte("a 0.100000 0.200000\n"))
		require.NoError(t, err)
		require.NoError(t, blob.Sync())
		require.NoError(t, blob.Close())

		r, err := store.Open(ctx, "out/vectors.txt")
		require.NoError(t, err)
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		require.NoError(t, r.Close())
		assert.Equal(t, "2 2\na 0.100000 0.200000\n", string(data))
	})

	t.Run("List by prefix", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "run1/vocab.txt", []byte("x")))
		require.NoError(t, store.Put(ctx, "run1/vectors.txt", []byte("y")))
		require.NoError(t, store.Put(ctx, "run2/vocab.txt", []byte("z")))

		names, err := store.List(ctx, "run1/")
		require.NoError(t, err)
		assert.Equal(t, []string{"run1/vectors.txt", "run1/vocab.txt"}, names)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "tmp.txt", []byte("x")))
		require.NoError(t, store.Delete(ctx, "tmp.txt"))

		_, err := store.Open(ctx, "tmp.txt")
		assert.ErrorIs(t, err, ErrNotFound)

		// Deleting again is not an error.
		assert.NoError(t, store.Delete(ctx, "tmp.txt"))
	})
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestLocalStore(t *testing.T) {
	testStore(t, NewLocalStore(t.TempDir()))
}

func TestMemoryStoreOpenReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Put(ctx, "a", []byte("abc")))

	r, err := store.Open(ctx, "a")
	require.NoError(t, err)
	buf := make([]byte, 3)
	_, err = io.ReadFull(r, buf)
	require.NoError(t, err)
	buf[0] = 'X'

	r2, err := store.Open(ctx, "a")
	require.NoError(t, err)
	data, err := io.ReadAll(r2)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
}
