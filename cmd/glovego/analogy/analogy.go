// Package analogycmder provides the `glovego analogy` CLI command.
package analogycmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/glovego/artifact"
	"github.com/hupe1980/glovego/cmd/glovego/storepath"
)

const analogyLongDesc string = `Solve a word analogy: a is to b as c is to ?

Loads a trained vectors file and ranks candidates against the vector
b - a + c, excluding the three query words.

Examples:
  glovego analogy vectors.txt man king woman
  glovego analogy s3://models/vectors.txt man king woman --top 5`

const analogyShortDesc string = "Solve a word analogy (a is to b as c is to ?)"

type analogyCommander struct {
	top int
}

// NewAnalogyCmd creates the analogy cobra command.
func NewAnalogyCmd() *cobra.Command {
	cmder := &analogyCommander{}

	cmd := &cobra.Command{
		Use:   "analogy <vectors> <a> <b> <c>",
		Short: analogyShortDesc,
		Long:  analogyLongDesc,
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd, args[0], args[1], args[2], args[3])
		},
	}

	cmd.Flags().IntVar(&cmder.top, "top", 10, "Number of candidates to print")

	return cmd
}

func (c *analogyCommander) run(ctx context.Context, cmd *cobra.Command, vectorsPath, a, b, cw string) error {
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

	matches, err := emb.Analogy(a, b, cw, c.top)
	if err != nil {
		return err
	}

	for _, m := range matches {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.6f\n", m.Word, m.Similarity)
	}
	return nil
}
