// Package glovego trains GloVe word embeddings from plain-text corpora.
//
// The pipeline has three stages, each usable on its own or chained through
// a Model:
//
//   - Vocabulary: count whitespace tokens, filter by minimum frequency,
//     assign indices by descending count.
//   - Co-occurrence: slide a context window over each line and accumulate
//     distance-weighted word pair records.
//   - Training: stochastic gradient descent over the records toward
//     dot(w_i, c_j) + b_i + b_j ≈ ln(x_ij).
//
// # Quick Start
//
//	ctx := context.Background()
//	model := glovego.New(
//	    glovego.WithVectorSize(50),
//	    glovego.WithWindowSize(15),
//	    glovego.WithSymmetric(true),
//	)
//	if err := model.BuildVocab(ctx, "corpus.txt"); err != nil { ... }
//	if err := model.BuildCooccurrence(ctx, "corpus.txt"); err != nil { ... }
//	if err := model.Train(ctx); err != nil { ... }
//	if err := model.SaveVectors(ctx, "vectors.txt"); err != nil { ... }
//
// Corpora and artifacts are read and written through a blobstore.Store, so
// the same pipeline runs against the local file system, memory, S3 or
// MinIO. Filenames ending in .gz, .zst or .lz4 are compressed and
// decompressed transparently.
//
// # Artifacts
//
// Each stage persists to a plain text format: the vocabulary as
// "<word> <count>" lines, co-occurrences as "<i> <j> <weight>" lines and
// vectors as a "<vocab_size> <dim>" header followed by one word per line.
// Stages can resume from persisted artifacts, so vocab counting,
// co-occurrence accumulation and training can run as separate processes.
package glovego

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/glovego/artifact"
	"github.com/hupe1980/glovego/blobstore"
	"github.com/hupe1980/glovego/cooccur"
	"github.com/hupe1980/glovego/corpus"
	"github.com/hupe1980/glovego/distance"
	"github.com/hupe1980/glovego/train"
	"github.com/hupe1980/glovego/vocab"
)

// Model ties the pipeline stages together over a shared configuration.
// It is not safe for concurrent use; the pipeline is synchronous and
// single-threaded throughout.
type Model struct {
	opts    options
	voc     *vocab.Vocabulary
	acc     *cooccur.Accumulator
	trainer *train.Trainer
}

// New creates a Model with the given options.
func New(optFns ...Option) *Model {
	return &Model{
		opts: applyOptions(optFns),
	}
}

// openCorpus opens a blob and wraps it for transparent decompression.
func (m *Model) openCorpus(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := m.opts.store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	dec, err := corpus.Decompress(rc, name)
	if err != nil {
		_ = rc.Close()
		return nil, err
	}
	return &corpusReader{ReadCloser: dec, underlying: rc}, nil
}

// corpusReader closes the decompressor and the underlying blob together.
type corpusReader struct {
	io.ReadCloser
	underlying io.Closer
}

func (c *corpusReader) Close() error {
	err := c.ReadCloser.Close()
	if uerr := c.underlying.Close(); err == nil {
		err = uerr
	}
	return err
}

// BuildVocab streams the named corpus and builds the vocabulary.
// Any previously built co-occurrences and trained parameters are discarded,
// since their indices are only meaningful against the vocabulary that
// produced them.
func (m *Model) BuildVocab(ctx context.Context, name string) error {
	start := time.Now()

	err := m.buildVocab(ctx, name)

	words := 0
	if m.voc != nil {
		words = m.voc.Len()
	}
	m.opts.metricsCollector.RecordVocabBuild(words, time.Since(start), err)
	m.opts.logger.LogVocabBuild(ctx, name, words, err)

	return err
}

func (m *Model) buildVocab(ctx context.Context, name string) error {
	rc, err := m.openCorpus(ctx, name)
	if err != nil {
		return err
	}
	defer rc.Close()

	voc, err := vocab.BuildSize(rc, m.opts.minCount, m.opts.chunkSize)
	if err != nil {
		return err
	}

	m.voc = voc
	m.acc = nil
	m.trainer = nil
	return nil
}

// BuildCooccurrence streams the named corpus and accumulates co-occurrence
// records against the current vocabulary. Repeated calls accumulate into
// the same record set.
func (m *Model) BuildCooccurrence(ctx context.Context, name string) error {
	start := time.Now()

	before := 0
	if m.acc != nil {
		before = m.acc.Size()
	}

	err := m.buildCooccurrence(ctx, name)

	added := 0
	if m.acc != nil {
		added = m.acc.Size() - before
	}
	m.opts.metricsCollector.RecordIngest(added, time.Since(start), err)
	m.opts.logger.LogIngest(ctx, name, added, err)

	return err
}

func (m *Model) buildCooccurrence(ctx context.Context, name string) error {
	if m.voc == nil || !m.voc.Finalized() {
		return ErrVocabNotBuilt
	}

	rc, err := m.openCorpus(ctx, name)
	if err != nil {
		return err
	}
	defer rc.Close()

	if m.acc == nil {
		m.acc = cooccur.NewAccumulator(m.opts.windowSize, m.opts.symmetric)
	}
	return m.acc.IngestSize(rc, m.voc, m.opts.chunkSize)
}

// Train runs the configured number of epochs over the accumulated records.
// Parameters are freshly initialized on every call.
func (m *Model) Train(ctx context.Context) error {
	if m.voc == nil || !m.voc.Finalized() {
		return ErrVocabNotBuilt
	}
	if m.acc == nil || m.acc.Size() == 0 {
		return ErrNoRecords
	}
	return m.trainRecords(ctx, m.voc.Len(), m.acc.Records())
}

func (m *Model) trainRecords(ctx context.Context, vocabSize int, records []cooccur.Record) error {
	tr, err := train.New(vocabSize, m.opts.vectorSize, func(o *train.Options) {
		o.XMax = m.opts.xmax
		o.Alpha = m.opts.alpha
		o.LearningRate = m.opts.learningRate
		o.Seed = m.opts.seed
		o.Progress = func(p train.Progress) {
			m.opts.metricsCollector.RecordEpoch(p.Epoch, p.Records, p.Elapsed)
			m.opts.logger.LogEpoch(ctx, p.Epoch, p.Epochs, p.Records, p.Elapsed)
		}
	})
	if err != nil {
		return translateError(err)
	}

	if err := tr.Train(ctx, records, m.opts.iterations); err != nil {
		return err
	}

	m.trainer = tr
	return nil
}

// SaveVocab writes the vocabulary artifact to the store.
func (m *Model) SaveVocab(ctx context.Context, name string) error {
	if m.voc == nil || !m.voc.Finalized() {
		return ErrVocabNotBuilt
	}
	return m.save(ctx, name, func(w io.Writer) error {
		return artifact.WriteVocab(w, m.voc)
	})
}

// SaveCooccurrence writes the co-occurrence artifact to the store.
func (m *Model) SaveCooccurrence(ctx context.Context, name string) error {
	if m.acc == nil {
		return ErrNoRecords
	}
	return m.save(ctx, name, func(w io.Writer) error {
		return artifact.WriteRecords(w, m.acc.Records())
	})
}

// SaveVectors writes the trained vectors artifact to the store. Words that
// fell out of the vocabulary keep their parameter rows but are skipped in
// the output.
func (m *Model) SaveVectors(ctx context.Context, name string) error {
	if m.trainer == nil {
		return ErrNotTrained
	}
	return m.save(ctx, name, func(w io.Writer) error {
		return artifact.WriteVectors(w, m.trainer, m.voc)
	})
}

func (m *Model) save(ctx context.Context, name string, write func(io.Writer) error) error {
	start := time.Now()

	err := m.saveBlob(ctx, name, write)

	m.opts.metricsCollector.RecordExport(time.Since(start), err)
	m.opts.logger.LogExport(ctx, name, err)

	return err
}

func (m *Model) saveBlob(ctx context.Context, name string, write func(io.Writer) error) error {
	blob, err := m.opts.store.Create(ctx, name)
	if err != nil {
		return err
	}

	enc, err := corpus.Compress(blob, name)
	if err != nil {
		_ = blob.Close()
		return err
	}

	if err := write(enc); err != nil {
		_ = enc.Close()
		_ = blob.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		_ = blob.Close()
		return err
	}
	return blob.Close()
}

// LoadVocab reads a persisted vocabulary artifact from the store. The
// vocabulary is restored as-is; the min-count filter was already applied
// when it was written.
func (m *Model) LoadVocab(ctx context.Context, name string) error {
	rc, err := m.openCorpus(ctx, name)
	if err != nil {
		return err
	}
	defer rc.Close()

	voc, err := artifact.ReadVocab(rc, m.opts.minCount)
	if err != nil {
		return err
	}

	m.voc = voc
	m.acc = nil
	m.trainer = nil
	return nil
}

// LoadCooccurrence reads a persisted co-occurrence artifact from the store.
// If no vocabulary is present, a placeholder vocabulary sized to the
// largest record index is synthesized so training can proceed standalone.
func (m *Model) LoadCooccurrence(ctx context.Context, name string) error {
	rc, err := m.openCorpus(ctx, name)
	if err != nil {
		return err
	}
	defer rc.Close()

	set, err := artifact.ReadRecords(rc)
	if err != nil {
		return err
	}

	if m.voc == nil || !m.voc.Finalized() {
		m.voc = artifact.Placeholders(set.InferredVocabSize())
	}

	if m.acc == nil {
		m.acc = cooccur.NewAccumulator(m.opts.windowSize, m.opts.symmetric)
	}
	m.acc.SetRecords(append(m.acc.Records(), set.Records...))
	return nil
}

// Vocabulary returns the current vocabulary, or nil if none has been built.
func (m *Model) Vocabulary() *vocab.Vocabulary {
	return m.voc
}

// Trainer returns the trained parameters, or nil before a training run.
func (m *Model) Trainer() *train.Trainer {
	return m.trainer
}

// Records returns the accumulated co-occurrence records.
func (m *Model) Records() []cooccur.Record {
	if m.acc == nil {
		return nil
	}
	return m.acc.Records()
}

// Embedding returns the trained embedding for a word: the average of its
// target and context vectors.
func (m *Model) Embedding(word string) ([]float64, error) {
	if m.trainer == nil {
		return nil, ErrNotTrained
	}
	idx, ok := m.voc.IndexOf(word)
	if !ok {
		return nil, ErrNotFound
	}
	vec, err := m.trainer.EmbeddingOf(idx)
	if err != nil {
		return nil, translateError(err)
	}
	return vec, nil
}

// Embeddings materializes the trained parameters into a queryable
// embedding table.
func (m *Model) Embeddings() (*distance.Embeddings, error) {
	if m.trainer == nil {
		return nil, ErrNotTrained
	}

	words := make([]string, 0, m.voc.Len())
	vecs := make([][]float64, 0, m.voc.Len())
	for i := 0; i < m.voc.Len(); i++ {
		word, ok := m.voc.WordAt(i)
		if !ok {
			continue
		}
		vec, err := m.trainer.EmbeddingOf(i)
		if err != nil {
			return nil, translateError(err)
		}
		words = append(words, word)
		vecs = append(vecs, vec)
	}

	return distance.NewEmbeddings(words, vecs)
}

// MostSimilar returns the k nearest vocabulary words by cosine similarity.
func (m *Model) MostSimilar(word string, k int) ([]distance.Match, error) {
	emb, err := m.Embeddings()
	if err != nil {
		return nil, err
	}
	matches, err := emb.MostSimilar(word, k)
	if err != nil {
		return nil, m.translateEmbeddingsError(err)
	}
	return matches, nil
}

// Analogy solves a:b :: c:? and returns the k best candidates.
func (m *Model) Analogy(a, b, c string, k int) ([]distance.Match, error) {
	emb, err := m.Embeddings()
	if err != nil {
		return nil, err
	}
	matches, err := emb.Analogy(a, b, c, k)
	if err != nil {
		return nil, m.translateEmbeddingsError(err)
	}
	return matches, nil
}

func (m *Model) translateEmbeddingsError(err error) error {
	if errors.Is(err, distance.ErrWordNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}

// Store exposes the configured blob store, mainly for callers that manage
// artifacts around the pipeline.
func (m *Model) Store() blobstore.Store {
	return m.opts.store
}
