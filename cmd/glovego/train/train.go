// Package traincmder provides the `glovego train` CLI command.
package traincmder

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/hupe1980/glovego/artifact"
	"github.com/hupe1980/glovego/cmd/glovego/clilog"
	"github.com/hupe1980/glovego/cmd/glovego/storepath"
	"github.com/hupe1980/glovego/train"
)

const trainLongDesc string = `Train word vectors from a co-occurrence file.

Reads "<i> <j> <weight>" records, sizes the parameter table to the largest
index seen and runs gradient descent. Output words are placeholders
(word0, word1, ...) since record files carry indices only; the vocab
argument is accepted for pipeline symmetry.

Examples:
  glovego train cooccur.txt vocab.txt vectors.txt
  glovego train cooccur.txt vocab.txt vectors.txt --vector-size 100 --iterations 50`

const trainShortDesc string = "Train word vectors from a co-occurrence file"

type trainCommander struct {
	vectorSize   int
	iterations   int
	xmax         float64
	alpha        float64
	learningRate float64
}

// NewTrainCmd creates the train cobra command.
func NewTrainCmd() *cobra.Command {
	cmder := &trainCommander{}

	cmd := &cobra.Command{
		Use:   "train <cooccur> <vocab> <output>",
		Short: trainShortDesc,
		Long:  trainLongDesc,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd, args[0], args[2])
		},
	}

	cmd.Flags().IntVar(&cmder.vectorSize, "vector-size", 50, "Embedding dimension")
	cmd.Flags().IntVar(&cmder.iterations, "iterations", train.DefaultIterations, "Number of training epochs")
	cmd.Flags().Float64Var(&cmder.xmax, "x-max", train.DefaultXMax, "Weighting function saturation point")
	cmd.Flags().Float64Var(&cmder.alpha, "alpha", train.DefaultAlpha, "Weighting function exponent")
	cmd.Flags().Float64Var(&cmder.learningRate, "learning-rate", train.DefaultLearningRate, "Gradient descent step size")

	return cmd
}

func (c *trainCommander) run(ctx context.Context, cmd *cobra.Command, recordsPath, outputPath string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	logger := clilog.New(debug)

	srcStore, srcName, err := storepath.Resolve(ctx, recordsPath)
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
	set, err := artifact.ReadRecords(rc)
	_ = rc.Close()
	if err != nil {
		return err
	}

	voc := artifact.Placeholders(set.InferredVocabSize())

	tr, err := train.New(voc.Len(), c.vectorSize, func(o *train.Options) {
		o.XMax = c.xmax
		o.Alpha = c.alpha
		o.LearningRate = c.learningRate
		o.Progress = func(p train.Progress) {
			logger.LogEpoch(ctx, p.Epoch, p.Epochs, p.Records, p.Elapsed)
		}
	})
	if err != nil {
		return err
	}

	if err := tr.Train(ctx, set.Records, c.iterations); err != nil {
		return err
	}

	err = storepath.Write(ctx, dstStore, dstName, func(w io.Writer) error {
		return artifact.WriteVectors(w, tr, voc)
	})
	logger.LogExport(ctx, outputPath, err)
	return err
}
