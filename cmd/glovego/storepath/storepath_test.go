package storepath

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/glovego/blobstore"
)

func TestResolveLocal(t *testing.T) {
	ctx := context.Background()

	store, name, err := Resolve(ctx, filepath.Join("some", "dir", "vocab.txt"))
	require.NoError(t, err)
	assert.IsType(t, &blobstore.LocalStore{}, store)
	assert.Equal(t, "vocab.txt", name)

	store, name, err = Resolve(ctx, "vocab.txt")
	require.NoError(t, err)
	assert.IsType(t, &blobstore.LocalStore{}, store)
	assert.Equal(t, "vocab.txt", name)
}

func TestResolveS3Invalid(t *testing.T) {
	ctx := context.Background()

	_, _, err := Resolve(ctx, "s3://bucket-only")
	assert.Error(t, err)

	_, _, err = Resolve(ctx, "s3://bucket/")
	assert.Error(t, err)
}

func TestResolveMinioInvalid(t *testing.T) {
	ctx := context.Background()

	_, _, err := Resolve(ctx, "minio://host-only")
	assert.Error(t, err)

	_, _, err = Resolve(ctx, "minio://host/bucket-only")
	assert.Error(t, err)
}

func TestResolveMinio(t *testing.T) {
	ctx := context.Background()

	store, name, err := Resolve(ctx, "minio://localhost:9000/embeddings/run1/vectors.txt")
	require.NoError(t, err)
	assert.NotNil(t, store)
	assert.Equal(t, "run1/vectors.txt", name)
}

func TestOpenWriteRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewLocalStore(t.TempDir())

	require.NoError(t, Write(ctx, store, "data.txt.gz", func(w io.Writer) error {
		_, err := w.Write([]byte("a b a\n"))
		return err
	}))

	rc, err := Open(ctx, store, "data.txt.gz")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "a b a\n", string(data))
}
