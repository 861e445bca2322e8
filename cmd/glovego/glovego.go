// Package glovegocmder
package glovegocmder

import (
	"github.com/spf13/cobra"

	analogycmder "github.com/hupe1980/glovego/cmd/glovego/analogy"
	cooccurcmder "github.com/hupe1980/glovego/cmd/glovego/cooccur"
	fullcmder "github.com/hupe1980/glovego/cmd/glovego/full"
	similarcmder "github.com/hupe1980/glovego/cmd/glovego/similar"
	traincmder "github.com/hupe1980/glovego/cmd/glovego/train"
	vocabcmder "github.com/hupe1980/glovego/cmd/glovego/vocab"
)

const glovegoLongDesc string = `Glovego trains GloVe word embeddings from plain-text corpora.

Run the pipeline stage by stage:
  glovego vocab      Build the vocabulary from a corpus
  glovego cooccur    Accumulate co-occurrence records
  glovego train      Train word vectors from co-occurrence records

Or all at once:
  glovego full       Run vocab, cooccur and train in one pass

Query trained vectors:
  glovego similar    Nearest neighbors by cosine similarity
  glovego analogy    Word analogies (a is to b as c is to ?)

Paths may be local files, s3://bucket/key or minio://host/bucket/key.
Names ending in .gz, .zst or .lz4 are (de)compressed transparently.`

const glovegoShortDesc string = "Glovego - GloVe word embeddings"

func NewGlovegoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glovego",
		Short: glovegoShortDesc,
		Long:  glovegoLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	// Add subcommands
	cmd.AddCommand(vocabcmder.NewVocabCmd())
	cmd.AddCommand(cooccurcmder.NewCooccurCmd())
	cmd.AddCommand(traincmder.NewTrainCmd())
	cmd.AddCommand(fullcmder.NewFullCmd())
	cmd.AddCommand(similarcmder.NewSimilarCmd())
	cmd.AddCommand(analogycmder.NewAnalogyCmd())

	return cmd
}
