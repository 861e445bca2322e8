// Package similarcmder provides the `glovego similar` CLI command.
package similarcmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/glovego/artifact"
	"github.com/hupe1980/glovego/cmd/glovego/storepath"
)

const similarLongDesc string = `Find the nearest neighbors of a word by cosine similarity.

Loads a trained vectors file and prints the top matches, most similar
first.

Examples:
  glovego similar vectors.txt king
  glovego similar s3://models/vectors.txt.gz king --top 20`

const similarShortDesc string = "Find nearest neighbors by cosine similarity"

type similarCommander struct {
	top int
}

// NewSimilarCmd creates the similar cobra command.
func NewSimilarCmd() *cobra.Command {
	cmder := &similarCommander{}

	cmd := &cobra.Command{
		Use:   "similar <vectors> <word>",
		Short: similarShortDesc,
		Long:  similarLongDesc,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd, args[0], args[1])
		},
	}

	cmd.Flags().IntVar(&cmder.top, "top", 10, "Number of matches to print")

	return cmd
}

func (c *similarCommander) run(ctx context.Context, cmd *cobra.Command, vectorsPath, word string) error {
	store, name, err := storepath.Resolve(ctx, vectorsPath)
	if err != nil {
		return err
	}

	rc, err := store.Open(ctx, name)
	if err != nil {
		return err
	}
	emb, err := artifact.ReadVectorsReader(rc, name)
	_ = rc.Close()
	if err != nil {
		return err
	}

	matches, err := emb.MostSimilar(word, c.top)
	if err != nil {
		return err
	}

	for _, m := range matches {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.6f\n", m.Word, m.Similarity)
	}
	return nil
}
