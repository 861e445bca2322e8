// Package fullcmder provides the `glovego full` CLI command.
package fullcmder

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	glovego "github.com/hupe1980/glovego"
	"github.com/hupe1980/glovego/artifact"
	"github.com/hupe1980/glovego/cmd/glovego/clilog"
	"github.com/hupe1980/glovego/cmd/glovego/storepath"
	"github.com/hupe1980/glovego/cooccur"
	"github.com/hupe1980/glovego/train"
)

const fullLongDesc string = `Run the whole pipeline in one pass.

Builds the vocabulary, accumulates co-occurrences and trains word vectors
in memory, then writes the vectors file. Co-occurrence counting is
symmetric unless disabled.

Hyperparameter flags take string values; a value that does not parse falls
back to its default. Defaults can also be set via GLOVEGO_* environment
variables (GLOVEGO_VECTOR_SIZE, GLOVEGO_X_MAX, ...).

Examples:
  glovego full corpus.txt vectors.txt
  glovego full corpus.txt.gz vectors.txt --vector-size 100 --window-size 10
  GLOVEGO_ITERATIONS=50 glovego full s3://corpora/wiki.txt s3://models/vectors.txt`

const fullShortDesc string = "Run vocab, cooccur and train in one pass"

type fullCommander struct {
	vectorSize   string
	windowSize   string
	minCount     string
	iterations   string
	xmax         string
	alpha        string
	learningRate string
	symmetric    bool

	v *viper.Viper
}

// NewFullCmd creates the full cobra command.
func NewFullCmd() *cobra.Command {
	cmder := &fullCommander{v: initViper()}

	cmd := &cobra.Command{
		Use:   "full <corpus> <output>",
		Short: fullShortDesc,
		Long:  fullLongDesc,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&cmder.vectorSize, "vector-size", cmder.v.GetString("vector_size"), "Embedding dimension")
	cmd.Flags().StringVar(&cmder.windowSize, "window-size", cmder.v.GetString("window_size"), "Context window radius")
	cmd.Flags().StringVar(&cmder.minCount, "min-count", cmder.v.GetString("min_count"), "Minimum corpus frequency for a word to be kept")
	cmd.Flags().StringVar(&cmder.iterations, "iterations", cmder.v.GetString("iterations"), "Number of training epochs")
	cmd.Flags().StringVar(&cmder.xmax, "x-max", cmder.v.GetString("x_max"), "Weighting function saturation point")
	cmd.Flags().StringVar(&cmder.alpha, "alpha", cmder.v.GetString("alpha"), "Weighting function exponent")
	cmd.Flags().StringVar(&cmder.learningRate, "learning-rate", cmder.v.GetString("learning_rate"), "Gradient descent step size")
	cmd.Flags().BoolVar(&cmder.symmetric, "symmetric", cmder.v.GetBool("symmetric"), "Record each pair in both directions")

	return cmd
}

// initViper registers pipeline defaults and binds GLOVEGO_* environment
// variables over them.
func initViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("vector_size", glovego.DefaultVectorSize)
	v.SetDefault("window_size", cooccur.DefaultWindowSize)
	v.SetDefault("min_count", glovego.DefaultMinCount)
	v.SetDefault("iterations", train.DefaultIterations)
	v.SetDefault("x_max", train.DefaultXMax)
	v.SetDefault("alpha", train.DefaultAlpha)
	v.SetDefault("learning_rate", train.DefaultLearningRate)
	v.SetDefault("symmetric", true)

	v.SetEnvPrefix("GLOVEGO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

func (c *fullCommander) run(ctx context.Context, cmd *cobra.Command, corpusPath, outputPath string) error {
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

	model := glovego.New(
		glovego.WithStore(srcStore),
		glovego.WithLogger(logger),
		glovego.WithVectorSize(intOr(c.vectorSize, c.v.GetInt("vector_size"))),
		glovego.WithWindowSize(intOr(c.windowSize, c.v.GetInt("window_size"))),
		glovego.WithMinCount(intOr(c.minCount, c.v.GetInt("min_count"))),
		glovego.WithIterations(intOr(c.iterations, c.v.GetInt("iterations"))),
		glovego.WithXMax(floatOr(c.xmax, c.v.GetFloat64("x_max"))),
		glovego.WithAlpha(floatOr(c.alpha, c.v.GetFloat64("alpha"))),
		glovego.WithLearningRate(floatOr(c.learningRate, c.v.GetFloat64("learning_rate"))),
		glovego.WithSymmetric(c.symmetric),
	)

	if err := model.BuildVocab(ctx, srcName); err != nil {
		return err
	}
	if err := model.BuildCooccurrence(ctx, srcName); err != nil {
		return err
	}
	if err := model.Train(ctx); err != nil {
		return err
	}

	err = storepath.Write(ctx, dstStore, dstName, func(w io.Writer) error {
		return artifact.WriteVectors(w, model.Trainer(), model.Vocabulary())
	})
	logger.LogExport(ctx, outputPath, err)
	return err
}

// intOr parses s as an integer, falling back to def on malformed input.
func intOr(s string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return v
	}
	return def
}

// floatOr parses s as a float, falling back to def on malformed input.
func floatOr(s string, def float64) float64 {
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return v
	}
	return def
}
