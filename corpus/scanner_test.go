package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectLines(t *testing.T, input string, chunkSize int) []string {
	t.Helper()

	s := NewScannerSize(strings.NewReader(input), chunkSize)
	var lines []string
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	require.NoError(t, s.Err())
	return lines
}

func TestScanner(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Empty input", "", nil},
		{"Single line with newline", "a b c\n", []string{"a b c"}},
		{"Single line without newline", "a b c", []string{"a b c"}},
		{"Multiple lines", "one\ntwo\nthree\n", []string{"one", "two", "three"}},
		{"Empty lines preserved", "a\n\nb\n", []string{"a", "", "b"}},
		{"Trailing partial line", "a\nb", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, collectLines(t, tt.input, DefaultChunkSize))
		})
	}
}

func TestScannerChunkBoundaries(t *testing.T) {
	// The result must not depend on where chunk boundaries fall. Sweep every
	// chunk size from 1 byte upward, including sizes that place the boundary
	// exactly on a newline.
	input := "alpha beta\ngamma\n\ndelta epsilon zeta\neta"
	expected := []string{"alpha beta", "gamma", "", "delta epsilon zeta", "eta"}

	for chunkSize := 1; chunkSize <= len(input)+1; chunkSize++ {
		assert.Equal(t, expected, collectLines(t, input, chunkSize), "chunk size %d", chunkSize)
	}
}

func TestScannerBoundaryOnNewline(t *testing.T) {
	// Chunk size 4 puts the first boundary immediately after the newline of
	// "abc\n" and the second one immediately before the newline of "defg\n".
	input := "abc\ndefg\nhi\n"
	assert.Equal(t, []string{"abc", "defg", "hi"}, collectLines(t, input, 4))
}

func TestScannerLineLongerThanChunk(t *testing.T) {
	long := strings.Repeat("x", 100)
	input := long + "\nshort\n"
	assert.Equal(t, []string{long, "short"}, collectLines(t, input, 8))
}

func TestFields(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"Empty line", "", nil},
		{"Single word", "hello", []string{"hello"}},
		{"Multiple words", "a b c", []string{"a", "b", "c"}},
		{"Consecutive spaces dropped", "a  b   c", []string{"a", "b", "c"}},
		{"Leading and trailing spaces", " a b ", []string{"a", "b"}},
		{"Only spaces", "   ", nil},
		{"Case preserved", "Hello WORLD", []string{"Hello", "WORLD"}},
		{"Punctuation preserved", "end. (start)", []string{"end.", "(start)"}},
		{"Tabs are not separators", "a\tb c", []string{"a\tb", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Fields(tt.line))
		})
	}
}
