package glovego

import (
	"log/slog"

	"github.com/hupe1980/glovego/blobstore"
	"github.com/hupe1980/glovego/cooccur"
	"github.com/hupe1980/glovego/corpus"
	"github.com/hupe1980/glovego/train"
	"github.com/hupe1980/glovego/vocab"
)

// Pipeline defaults.
const (
	DefaultVectorSize = 50
	DefaultMinCount   = vocab.DefaultMinCount
)

type options struct {
	vectorSize       int
	windowSize       int
	symmetric        bool
	minCount         int
	xmax             float64
	alpha            float64
	learningRate     float64
	iterations       int
	seed             int64
	chunkSize        int
	store            blobstore.Store
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Model behavior.
type Option func(*options)

// WithVectorSize sets the embedding dimension.
func WithVectorSize(dim int) Option {
	return func(o *options) {
		o.vectorSize = dim
	}
}

// WithWindowSize sets the co-occurrence context window.
func WithWindowSize(window int) Option {
	return func(o *options) {
		o.windowSize = window
	}
}

// WithSymmetric enables symmetric co-occurrence counting, where each pair
// is recorded in both directions.
func WithSymmetric(symmetric bool) Option {
	return func(o *options) {
		o.symmetric = symmetric
	}
}

// WithMinCount sets the minimum corpus frequency for a word to enter the
// vocabulary.
func WithMinCount(minCount int) Option {
	return func(o *options) {
		o.minCount = minCount
	}
}

// WithXMax sets the saturation point of the weighting function.
func WithXMax(xmax float64) Option {
	return func(o *options) {
		o.xmax = xmax
	}
}

// WithAlpha sets the weighting function exponent.
func WithAlpha(alpha float64) Option {
	return func(o *options) {
		o.alpha = alpha
	}
}

// WithLearningRate sets the fixed gradient descent step size.
func WithLearningRate(lr float64) Option {
	return func(o *options) {
		o.learningRate = lr
	}
}

// WithIterations sets the number of training epochs.
func WithIterations(iterations int) Option {
	return func(o *options) {
		o.iterations = iterations
	}
}

// WithSeed seeds parameter initialization for reproducible runs.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithChunkSize sets the corpus read chunk size. Intended for tests; the
// default of 1 MiB is fine for production corpora.
func WithChunkSize(chunkSize int) Option {
	return func(o *options) {
		o.chunkSize = chunkSize
	}
}

// WithStore configures the blob store used to read corpora and persist
// artifacts. Defaults to the local file system rooted at the working
// directory.
func WithStore(store blobstore.Store) Option {
	return func(o *options) {
		if store == nil {
			return
		}
		o.store = store
	}
}

// WithMetricsCollector configures a metrics collector for monitoring the
// pipeline stages.
//
// Example with BasicMetricsCollector:
//
//	metrics := &glovego.BasicMetricsCollector{}
//	model := glovego.New(glovego.WithMetricsCollector(metrics))
//	// ... run the pipeline ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for pipeline stages.
//
// Example with JSON logging:
//
//	logger := glovego.NewJSONLogger(slog.LevelInfo)
//	model := glovego.New(glovego.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		vectorSize:       DefaultVectorSize,
		windowSize:       cooccur.DefaultWindowSize,
		symmetric:        false,
		minCount:         DefaultMinCount,
		xmax:             train.DefaultXMax,
		alpha:            train.DefaultAlpha,
		learningRate:     train.DefaultLearningRate,
		iterations:       train.DefaultIterations,
		seed:             train.DefaultSeed,
		chunkSize:        corpus.DefaultChunkSize,
		store:            blobstore.NewLocalStore(""),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
