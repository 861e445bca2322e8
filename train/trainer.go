package train

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/hupe1980/glovego/cooccur"
)

// Default hyperparameters.
const (
	DefaultXMax         = 100.0
	DefaultAlpha        = 0.75
	DefaultLearningRate = 0.05
	DefaultIterations   = 25
	DefaultSeed         = 1

	// logEps keeps the logarithm of small co-occurrence weights finite.
	logEps = 1e-8
)

// Options configure a Trainer.
type Options struct {
	// XMax is the saturation point of the weighting function.
	XMax float64
	// Alpha is the weighting function exponent.
	Alpha float64
	// LearningRate is the fixed gradient descent step size.
	LearningRate float64
	// Seed seeds parameter initialization. Epoch shuffles are keyed by the
	// epoch index and are independent of this seed.
	Seed int64
	// Progress, if set, is invoked once after every completed epoch.
	Progress func(Progress)
}

// Progress describes the state of a training run after an epoch.
type Progress struct {
	Epoch   int // 1-based
	Epochs  int
	Records int
	Elapsed time.Duration
}

// Trainer holds the model parameters and performs the per-record updates.
// It is owned by a single goroutine; training is synchronous throughout.
type Trainer struct {
	dim  int
	xmax float64
	alph float64
	lr   float64

	target      [][]float64
	context     [][]float64
	bias        []float64
	contextBias []float64

	progress func(Progress)
}

// New creates a Trainer with freshly initialized parameters for vocabSize
// words of the given dimension. Target and context vectors start from the
// same small random value per component; biases are drawn independently.
func New(vocabSize, dim int, optFns ...func(*Options)) (*Trainer, error) {
	if dim < 1 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}
	if vocabSize < 0 {
		vocabSize = 0
	}

	opts := Options{
		XMax:         DefaultXMax,
		Alpha:        DefaultAlpha,
		LearningRate: DefaultLearningRate,
		Seed:         DefaultSeed,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	t := &Trainer{
		dim:         dim,
		xmax:        opts.XMax,
		alph:        opts.Alpha,
		lr:          opts.LearningRate,
		target:      make([][]float64, vocabSize),
		context:     make([][]float64, vocabSize),
		bias:        make([]float64, vocabSize),
		contextBias: make([]float64, vocabSize),
		progress:    opts.Progress,
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	initRange := 0.5 / float64(dim)
	for i := 0; i < vocabSize; i++ {
		t.target[i] = make([]float64, dim)
		t.context[i] = make([]float64, dim)
		for k := 0; k < dim; k++ {
			v := (rng.Float64() - 0.5) * 2 * initRange
			t.target[i][k] = v
			t.context[i][k] = v
		}
		t.bias[i] = (rng.Float64() - 0.5) * 2 * initRange
		t.contextBias[i] = (rng.Float64() - 0.5) * 2 * initRange
	}

	return t, nil
}

// VocabSize returns the number of parameter rows.
func (t *Trainer) VocabSize() int {
	return len(t.target)
}

// Dim returns the vector dimension.
func (t *Trainer) Dim() int {
	return t.dim
}

// Weighting computes f(x) = (x/xmax)^alpha for x < xmax, else 1. It
// down-weights rare co-occurrences and caps the influence of frequent ones.
func (t *Trainer) Weighting(x float64) float64 {
	if x < t.xmax {
		return math.Pow(x/t.xmax, t.alph)
	}
	return 1.0
}

// TrainRecord applies one gradient step for the co-occurrence (i, j, x).
// Out-of-range indices make the call a silent no-op; records referencing
// them are tolerated upstream and rejected only here.
func (t *Trainer) TrainRecord(i, j int, x float64) {
	if i < 0 || i >= len(t.target) || j < 0 || j >= len(t.context) {
		return
	}

	ti := t.target[i]
	cj := t.context[j]

	inner := t.bias[i] + t.contextBias[j]
	for k := 0; k < t.dim; k++ {
		inner += ti[k] * cj[k]
	}

	diff := inner - math.Log(x+logEps)
	scale := t.Weighting(x) * diff * t.lr

	// Simultaneous update: each vector moves against the other's pre-update
	// value, so the target component is saved before it is overwritten.
	for k := 0; k < t.dim; k++ {
		tk := ti[k]
		ti[k] -= scale * cj[k]
		cj[k] -= scale * tk
	}
	t.bias[i] -= scale
	t.contextBias[j] -= scale
}

// Train runs the given number of full epochs over records. Each epoch
// reshuffles the slice in place with a generator seeded by the epoch index,
// keeping repeated runs reproducible. The context is checked only between
// epochs; an epoch in progress always completes.
func (t *Trainer) Train(ctx context.Context, records []cooccur.Record, epochs int) error {
	start := time.Now()
	for epoch := 0; epoch < epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		rng := rand.New(rand.NewSource(int64(epoch)))
		rng.Shuffle(len(records), func(i, j int) {
			records[i], records[j] = records[j], records[i]
		})

		for _, rec := range records {
			t.TrainRecord(rec.I, rec.J, rec.Weight)
		}

		if t.progress != nil {
			t.progress(Progress{
				Epoch:   epoch + 1,
				Epochs:  epochs,
				Records: len(records),
				Elapsed: time.Since(start),
			})
		}
	}
	return nil
}

// EmbeddingOf returns a freshly allocated embedding for index i: the
// elementwise average of its target and context vectors.
func (t *Trainer) EmbeddingOf(i int) ([]float64, error) {
	if i < 0 || i >= len(t.target) {
		return nil, &ErrIndexOutOfRange{Index: i, Size: len(t.target)}
	}
	vec := make([]float64, t.dim)
	for k := 0; k < t.dim; k++ {
		vec[k] = (t.target[i][k] + t.context[i][k]) / 2
	}
	return vec, nil
}

// Inner returns dot(target[i], context[j]) + bias[i] + contextBias[j], the
// quantity driven toward ln(x) during training. Exposed for diagnostics.
func (t *Trainer) Inner(i, j int) (float64, error) {
	if i < 0 || i >= len(t.target) {
		return 0, &ErrIndexOutOfRange{Index: i, Size: len(t.target)}
	}
	if j < 0 || j >= len(t.context) {
		return 0, &ErrIndexOutOfRange{Index: j, Size: len(t.context)}
	}
	inner := t.bias[i] + t.contextBias[j]
	for k := 0; k < t.dim; k++ {
		inner += t.target[i][k] * t.context[j][k]
	}
	return inner, nil
}
