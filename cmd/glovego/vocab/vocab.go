// Package vocabcmder provides the `glovego vocab` CLI command.
package vocabcmder

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/hupe1980/glovego/artifact"
	"github.com/hupe1980/glovego/cmd/glovego/clilog"
	"github.com/hupe1980/glovego/cmd/glovego/storepath"
	"github.com/hupe1980/glovego/vocab"
)

const vocabLongDesc string = `Build the vocabulary from a corpus.

Streams the corpus, counts whitespace-separated tokens, drops words below
the minimum count and writes one "<word> <count>" line per retained word,
most frequent first.

Examples:
  glovego vocab corpus.txt vocab.txt
  glovego vocab corpus.txt.gz vocab.txt --min-count 10
  glovego vocab s3://corpora/wiki.txt.zst s3://models/vocab.txt`

const vocabShortDesc string = "Build the vocabulary from a corpus"

type vocabCommander struct {
	minCount int
}

// NewVocabCmd creates the vocab cobra command.
func NewVocabCmd() *cobra.Command {
	cmder := &vocabCommander{}

	cmd := &cobra.Command{
		Use:   "vocab <corpus> <output>",
		Short: vocabShortDesc,
		Long:  vocabLongDesc,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd, args[0], args[1])
		},
	}

	cmd.Flags().IntVar(&cmder.minCount, "min-count", vocab.DefaultMinCount, "Minimum corpus frequency for a word to be kept")

	return cmd
}

func (c *vocabCommander) run(ctx context.Context, cmd *cobra.Command, corpusPath, outputPath string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	logger := clilog.New(debug)

	srcStore, srcName, err := storepath.Resolve(ctx, corpusPath)
	if err != nil {
		return err
	}
	dstStore, dstName, err := storepath.Resolve(ctx, outputPath)
	if err != nil {
		return err
	}

	rc, err := storepath.Open(ctx, srcStore, srcName)
	if err != nil {
		return err
	}
	defer rc.Close()

	voc, err := vocab.Build(rc, c.minCount)
	if err != nil {
		logger.LogVocabBuild(ctx, corpusPath, 0, err)
		return err
	}
	logger.LogVocabBuild(ctx, corpusPath, voc.Len(), nil)

	err = storepath.Write(ctx, dstStore, dstName, func(w io.Writer) error {
		return artifact.WriteVocab(w, voc)
	})
	logger.LogExport(ctx, outputPath, err)
	return err
}
