// Package cooccurcmder provides the `glovego cooccur` CLI command.
package cooccurcmder

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/hupe1980/glovego/artifact"
	"github.com/hupe1980/glovego/cmd/glovego/clilog"
	"github.com/hupe1980/glovego/cmd/glovego/storepath"
	"github.com/hupe1980/glovego/cooccur"
	"github.com/hupe1980/glovego/vocab"
)

const cooccurLongDesc string = `Accumulate co-occurrence records from a corpus.

Slides a context window over every line and writes one "<i> <j> <weight>"
record per in-window pair, weighted by 1/distance. The word indices are
assigned by an internal counting pass over the corpus with threshold 1;
the vocab argument is accepted for pipeline symmetry.

Examples:
  glovego cooccur corpus.txt vocab.txt cooccur.txt
  glovego cooccur corpus.txt vocab.txt cooccur.txt --window-size 10 --symmetric`

const cooccurShortDesc string = "Accumulate co-occurrence records from a corpus"

type cooccurCommander struct {
	windowSize int
	symmetric  bool
}

// NewCooccurCmd creates the cooccur cobra command.
func NewCooccurCmd() *cobra.Command {
	cmder := &cooccurCommander{}

	cmd := &cobra.Command{
		Use:   "cooccur <corpus> <vocab> <output>",
		Short: cooccurShortDesc,
		Long:  cooccurLongDesc,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd, args[0], args[2])
		},
	}

	cmd.Flags().IntVar(&cmder.windowSize, "window-size", cooccur.DefaultWindowSize, "Context window radius")
	cmd.Flags().BoolVar(&cmder.symmetric, "symmetric", false, "Record each pair in both directions")

	return cmd
}

func (c *cooccurCommander) run(ctx context.Context, cmd *cobra.Command, corpusPath, outputPath string) error {
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

	// First pass: index assignment. Every word is kept.
	rc, err := storepath.Open(ctx, srcStore, srcName)
	if err != nil {
		return err
	}
	voc, err := vocab.Build(rc, 1)
	_ = rc.Close()
	if err != nil {
		return err
	}

	// Second pass: window walk.
	rc, err = storepath.Open(ctx, srcStore, srcName)
	if err != nil {
		return err
	}
	acc := cooccur.NewAccumulator(c.windowSize, c.symmetric)
	err = acc.Ingest(rc, voc)
	_ = rc.Close()
	if err != nil {
		logger.LogIngest(ctx, corpusPath, 0, err)
		return err
	}
	logger.LogIngest(ctx, corpusPath, acc.Size(), nil)

	err = storepath.Write(ctx, dstStore, dstName, func(w io.Writer) error {
		return artifact.WriteRecords(w, acc.Records())
	})
	logger.LogExport(ctx, outputPath, err)
	return err
}
