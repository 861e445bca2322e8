package glovego

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/glovego/blobstore"
	"github.com/hupe1980/glovego/testutil"
)

func newTestModel(t *testing.T, corpus string, optFns ...Option) (*Model, *blobstore.MemoryStore) {
	t.Helper()

	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), "corpus.txt", []byte(corpus)))

	opts := append([]Option{WithStore(store), WithMinCount(1)}, optFns...)
	return New(opts...), store
}

func TestModelPipeline(t *testing.T) {
	ctx := context.Background()
	corpus := testutil.NewRNG(3).ZipfCorpus(200, 12, 30, 1.1)

	model, _ := newTestModel(t, corpus,
		WithVectorSize(8),
		WithWindowSize(4),
		WithSymmetric(true),
		WithIterations(5),
	)

	require.NoError(t, model.BuildVocab(ctx, "corpus.txt"))
	require.NotNil(t, model.Vocabulary())
	assert.Positive(t, model.Vocabulary().Len())

	require.NoError(t, model.BuildCooccurrence(ctx, "corpus.txt"))
	assert.NotEmpty(t, model.Records())

	require.NoError(t, model.Train(ctx))

	word, ok := model.Vocabulary().WordAt(0)
	require.True(t, ok)

	vec, err := model.Embedding(word)
	require.NoError(t, err)
	assert.Len(t, vec, 8)

	matches, err := model.MostSimilar(word, 3)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	for _, m := range matches {
		assert.NotEqual(t, word, m.Word)
	}
}

func TestModelStageOrdering(t *testing.T) {
	ctx := context.Background()
	model, _ := newTestModel(t, "a b a\n")

	assert.ErrorIs(t, model.BuildCooccurrence(ctx, "corpus.txt"), ErrVocabNotBuilt)
	assert.ErrorIs(t, model.Train(ctx), ErrVocabNotBuilt)
	assert.ErrorIs(t, model.SaveVocab(ctx, "vocab.txt"), ErrVocabNotBuilt)

	require.NoError(t, model.BuildVocab(ctx, "corpus.txt"))
	assert.ErrorIs(t, model.Train(ctx), ErrNoRecords)
	assert.ErrorIs(t, model.SaveCooccurrence(ctx, "cooccur.txt"), ErrNoRecords)

	_, err := model.Embedding("a")
	assert.ErrorIs(t, err, ErrNotTrained)
	assert.ErrorIs(t, model.SaveVectors(ctx, "vectors.txt"), ErrNotTrained)
}

func TestModelCooccurrenceCounts(t *testing.T) {
	ctx := context.Background()
	model, _ := newTestModel(t, "a b a\n",
		WithWindowSize(1),
		WithSymmetric(true),
	)

	require.NoError(t, model.BuildVocab(ctx, "corpus.txt"))
	require.NoError(t, model.BuildCooccurrence(ctx, "corpus.txt"))

	// Window 1 over "a b a" yields two unordered pairs, each observed from
	// both sides and mirrored by the symmetric flag.
	assert.Len(t, model.Records(), 8)

	// Ingesting the same corpus again appends rather than coalescing.
	require.NoError(t, model.BuildCooccurrence(ctx, "corpus.txt"))
	assert.Len(t, model.Records(), 16)
}

func TestModelVocabRoundTrip(t *testing.T) {
	ctx := context.Background()
	model, store := newTestModel(t, "c c c a a b\n")

	require.NoError(t, model.BuildVocab(ctx, "corpus.txt"))
	require.NoError(t, model.SaveVocab(ctx, "vocab.txt"))

	rc, err := store.Open(ctx, "vocab.txt")
	require.NoError(t, err)
	data := make([]byte, 64)
	n, _ := rc.Read(data)
	require.NoError(t, rc.Close())
	assert.Equal(t, "c 3\na 2\nb 1\n", string(data[:n]))

	loaded := New(WithStore(store), WithMinCount(1))
	require.NoError(t, loaded.LoadVocab(ctx, "vocab.txt"))
	assert.Equal(t, model.Vocabulary().Words(), loaded.Vocabulary().Words())
}

func TestModelCompressedArtifacts(t *testing.T) {
	ctx := context.Background()
	model, store := newTestModel(t, "b a b a b\n")

	require.NoError(t, model.BuildVocab(ctx, "corpus.txt"))
	require.NoError(t, model.SaveVocab(ctx, "vocab.txt.gz"))

	// The stored blob must actually be gzip, not plain text.
	rc, err := store.Open(ctx, "vocab.txt.gz")
	require.NoError(t, err)
	header := make([]byte, 2)
	_, err = rc.Read(header)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, []byte{0x1f, 0x8b}, header)

	loaded := New(WithStore(store), WithMinCount(1))
	require.NoError(t, loaded.LoadVocab(ctx, "vocab.txt.gz"))
	assert.Equal(t, model.Vocabulary().Words(), loaded.Vocabulary().Words())
}

func TestModelTrainFromRecordFile(t *testing.T) {
	ctx := context.Background()
	model, store := newTestModel(t, "a b c a b c\n",
		WithWindowSize(2),
		WithSymmetric(true),
		WithIterations(2),
		WithVectorSize(4),
	)

	require.NoError(t, model.BuildVocab(ctx, "corpus.txt"))
	require.NoError(t, model.BuildCooccurrence(ctx, "corpus.txt"))
	require.NoError(t, model.SaveCooccurrence(ctx, "cooccur.txt"))

	// A fresh model can train from the record file alone; surface forms
	// are synthesized placeholders.
	standalone := New(WithStore(store), WithIterations(2), WithVectorSize(4))
	require.NoError(t, standalone.LoadCooccurrence(ctx, "cooccur.txt"))
	require.NoError(t, standalone.Train(ctx))

	vec, err := standalone.Embedding("word0")
	require.NoError(t, err)
	assert.Len(t, vec, 4)

	require.NoError(t, standalone.SaveVectors(ctx, "vectors.txt"))

	rc, err := store.Open(ctx, "vectors.txt")
	require.NoError(t, err)
	buf := make([]byte, 8)
	n, _ := rc.Read(buf)
	require.NoError(t, rc.Close())
	assert.True(t, strings.HasPrefix(string(buf[:n]), "3 4\n"))
}

func TestModelUnknownWord(t *testing.T) {
	ctx := context.Background()
	model, _ := newTestModel(t, "a b a b\n",
		WithWindowSize(1),
		WithIterations(1),
		WithVectorSize(2),
	)

	require.NoError(t, model.BuildVocab(ctx, "corpus.txt"))
	require.NoError(t, model.BuildCooccurrence(ctx, "corpus.txt"))
	require.NoError(t, model.Train(ctx))

	_, err := model.Embedding("zzz")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = model.MostSimilar("zzz", 3)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = model.Analogy("a", "b", "zzz", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestModelMetrics(t *testing.T) {
	ctx := context.Background()
	metrics := &BasicMetricsCollector{}
	model, _ := newTestModel(t, "a b a b a b\n",
		WithWindowSize(1),
		WithIterations(3),
		WithVectorSize(2),
		WithMetricsCollector(metrics),
	)

	require.NoError(t, model.BuildVocab(ctx, "corpus.txt"))
	require.NoError(t, model.BuildCooccurrence(ctx, "corpus.txt"))
	require.NoError(t, model.Train(ctx))
	require.NoError(t, model.SaveVectors(ctx, "vectors.txt"))

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.VocabBuildCount)
	assert.Equal(t, int64(2), stats.VocabWords)
	assert.Equal(t, int64(1), stats.IngestCount)
	assert.Equal(t, int64(10), stats.IngestRecords)
	assert.Equal(t, int64(3), stats.EpochCount)
	assert.Equal(t, int64(1), stats.ExportCount)
	assert.Zero(t, stats.ExportErrors)
}

func TestModelRebuildVocabResetsDownstream(t *testing.T) {
	ctx := context.Background()
	model, _ := newTestModel(t, "a b a b\n",
		WithWindowSize(1),
		WithIterations(1),
		WithVectorSize(2),
	)

	require.NoError(t, model.BuildVocab(ctx, "corpus.txt"))
	require.NoError(t, model.BuildCooccurrence(ctx, "corpus.txt"))
	require.NoError(t, model.Train(ctx))

	require.NoError(t, model.BuildVocab(ctx, "corpus.txt"))
	assert.Empty(t, model.Records())

	_, err := model.Embedding("a")
	assert.ErrorIs(t, err, ErrNotTrained)
}
