package cooccurcmder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCooccurCmdSymmetric(t *testing.T) {
	dir := t.TempDir()
	corpusPath := filepath.Join(dir, "corpus.txt")
	vocabPath := filepath.Join(dir, "vocab.txt")
	outputPath := filepath.Join(dir, "cooccur.txt")
	require.NoError(t, os.WriteFile(corpusPath, []byte("a b a\n"), 0o644))
	require.NoError(t, os.WriteFile(vocabPath, []byte("a 2\nb 1\n"), 0o644))

	cmd := NewCooccurCmd()
	cmd.SetArgs([]string{corpusPath, vocabPath, outputPath, "--window-size", "1", "--symmetric"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 8)

	forward, backward := 0, 0
	for _, line := range lines {
		switch line {
		case "0 1 1.000000":
			forward++
		case "1 0 1.000000":
			backward++
		default:
			t.Fatalf("unexpected record line %q", line)
		}
	}
	assert.Equal(t, 4, forward)
	assert.Equal(t, 4, backward)
}

func TestCooccurCmdIgnoresVocabFile(t *testing.T) {
	dir := t.TempDir()
	corpusPath := filepath.Join(dir, "corpus.txt")
	outputPath := filepath.Join(dir, "cooccur.txt")
	require.NoError(t, os.WriteFile(corpusPath, []byte("a b\n"), 0o644))

	// The vocab argument does not need to exist; indices come from an
	// internal counting pass.
	cmd := NewCooccurCmd()
	cmd.SetArgs([]string{corpusPath, filepath.Join(dir, "missing-vocab.txt"), outputPath, "--window-size", "1"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.Len(t, lines, 2)
}
