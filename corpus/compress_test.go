package corpus

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{"Gzip", "corpus.txt.gz"},
		{"Zstd", "corpus.txt.zst"},
		{"LZ4", "corpus.txt.lz4"},
		{"Plain passthrough", "corpus.txt"},
	}

	payload := []byte("the quick brown fox\njumps over the lazy dog\n")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			w, err := Compress(&buf, tt.filename)
			require.NoError(t, err)
			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := Decompress(&buf, tt.filename)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())

			assert.Equal(t, payload, got)
		})
	}
}

func TestDecompressScansLines(t *testing.T) {
	var buf bytes.Buffer
	w, err := Compress(&buf, "c.gz")
	require.NoError(t, err)
	_, err = w.Write([]byte("a b\nc d\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := Decompress(&buf, "c.gz")
	require.NoError(t, err)
	defer r.Close()

	s := NewScannerSize(r, 4)
	var lines []string
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	require.NoError(t, s.Err())
	assert.Equal(t, []string{"a b", "c d"}, lines)
}
