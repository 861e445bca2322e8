package artifact

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/glovego/cooccur"
	"github.com/hupe1980/glovego/train"
	"github.com/hupe1980/glovego/vocab"
)

func TestVocabRoundTrip(t *testing.T) {
	voc, err := vocab.Build(strings.NewReader("a b a c c c"), 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteVocab(&buf, voc))

	assert.Equal(t, "c 3\na 2\nb 1\n", buf.String())

	restored, err := ReadVocab(&buf, 1)
	require.NoError(t, err)

	require.Equal(t, voc.Len(), restored.Len())
	for i := 0; i < voc.Len(); i++ {
		word, _ := voc.WordAt(i)
		got, ok := restored.WordAt(i)
		require.True(t, ok)
		assert.Equal(t, word, got)

		wantCount, _ := voc.CountOf(word)
		gotCount, ok := restored.CountOf(word)
		require.True(t, ok)
		assert.Equal(t, wantCount, gotCount)
	}
}

func TestReadVocabMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Bad count", "a notanumber\n"},
		{"Too many fields", "a 1 2\n"},
		{"Too few fields", "a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadVocab(strings.NewReader(tt.input), 1)
			assert.Error(t, err)
		})
	}
}

func TestRecordsRoundTrip(t *testing.T) {
	records := []cooccur.Record{
		{I: 0, J: 1, Weight: 1.0},
		{I: 1, J: 0, Weight: 0.5},
		{I: 0, J: 1, Weight: 1.0}, // duplicates survive
		{I: 7, J: 2, Weight: 1.0 / 3.0},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, records))

	assert.Equal(t,
		"0 1 1.000000\n1 0 0.500000\n0 1 1.000000\n7 2 0.333333\n",
		buf.String())

	set, err := ReadRecords(&buf)
	require.NoError(t, err)

	require.Len(t, set.Records, 4)
	assert.Equal(t, 0, set.Records[0].I)
	assert.Equal(t, 1, set.Records[0].J)
	assert.InDelta(t, 1.0, set.Records[0].Weight, 1e-12)
	// 6-decimal precision is what survives the round trip.
	assert.InDelta(t, 0.333333, set.Records[3].Weight, 1e-12)

	assert.Equal(t, 8, set.InferredVocabSize())
	assert.Equal(t, uint64(4), set.DistinctIndices())
}

func TestReadRecordsEmpty(t *testing.T) {
	set, err := ReadRecords(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, set.Records)
	assert.Equal(t, 0, set.InferredVocabSize())
}

func TestReadRecordsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Bad first index", "x 1 0.5\n"},
		{"Bad second index", "1 x 0.5\n"},
		{"Bad weight", "1 2 w\n"},
		{"Missing field", "1 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRecords(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestWriteVectors(t *testing.T) {
	tr, err := train.New(3, 2)
	require.NoError(t, err)

	// Two real words; the trainer's third row has no word and is skipped.
	voc := vocab.Restore([]string{"alpha", "beta"}, []int{5, 3}, 1)

	var buf bytes.Buffer
	require.NoError(t, WriteVectors(&buf, tr, voc))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2 2", lines[0])

	for i, word := range []string{"alpha", "beta"} {
		emb, err := tr.EmbeddingOf(i)
		require.NoError(t, err)
		want := fmt.Sprintf("%s %.6f %.6f", word, emb[0], emb[1])
		assert.Equal(t, want, lines[i+1])
	}
}

func TestVectorsRoundTrip(t *testing.T) {
	tr, err := train.New(2, 3)
	require.NoError(t, err)
	voc := vocab.Restore([]string{"x", "y"}, []int{2, 1}, 1)

	var buf bytes.Buffer
	require.NoError(t, WriteVectors(&buf, tr, voc))

	emb, err := ReadVectors(&buf)
	require.NoError(t, err)

	assert.Equal(t, 2, emb.Len())
	assert.Equal(t, 3, emb.Dim())

	vec, err := emb.Vector("x")
	require.NoError(t, err)

	want, err := tr.EmbeddingOf(0)
	require.NoError(t, err)
	for k := range want {
		assert.InDelta(t, want[k], vec[k], 5e-7, "component %d survives 6-decimal formatting", k)
	}
}

func TestReadVectorsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty file", ""},
		{"Bad header", "two 3\n"},
		{"Component count mismatch", "1 3\nw 0.1 0.2\n"},
		{"Bad component", "1 2\nw 0.1 oops\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadVectors(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestPlaceholders(t *testing.T) {
	voc := Placeholders(3)

	assert.Equal(t, 3, voc.Len())
	for i := 0; i < 3; i++ {
		word, ok := voc.WordAt(i)
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("word%d", i), word)
	}
}
