// Package balance equalizes the two analyst classes by undersampling the
// valuable (label 1) domains down to the number of non-valuable ones.
package balance

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/GriffinCanCode/domainprep/internal/dataset"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// LabelColumn holds the 0/1 class label.
const LabelColumn = "analystResult"

// ErrClassSizeMismatch is returned when the valuable class is smaller than the
// non-valuable class, so no undersampling can equalize them.
var ErrClassSizeMismatch = errors.New("class size mismatch")

// InputSchema is checked before partitioning.
var InputSchema = dataset.Schema{
	{Name: LabelColumn, Kind: dataset.KindNumber},
}

// Balancer owns a random source; it must not be shared across goroutines.
type Balancer struct {
	src    rand.Source
	logger *zap.Logger
}

// Option configures a Balancer.
type Option func(*Balancer)

// WithSource sets the random source used for sampling.
func WithSource(src rand.Source) Option {
	return func(b *Balancer) {
		if src != nil {
			b.src = src
		}
	}
}

// WithSeed uses a PCG source with the given seed, making Balance repeatable.
func WithSeed(seed uint64) Option {
	return WithSource(rand.NewPCG(seed, seed))
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Balancer) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New creates a balancer. Without WithSource or WithSeed the source is seeded
// randomly.
func New(opts ...Option) *Balancer {
	b := &Balancer{
		src:    rand.NewPCG(rand.Uint64(), rand.Uint64()),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Balance splits f into valuable (label 1) and non-valuable (label 0) rows and
// keeps a random subset of the valuable rows, in random order, equal in size
// to the non-valuable rows. Non-valuable rows keep their input order. Rows
// with any other label belong to neither side.
func (b *Balancer) Balance(f *dataset.Frame) (valuable, nonValuable *dataset.Frame, err error) {
	if err := InputSchema.Validate(f); err != nil {
		return nil, nil, fmt.Errorf("balance: %w", err)
	}

	labels, _ := f.Column(LabelColumn)
	var pos, neg []int
	for i, v := range labels {
		label, ok := dataset.ToInt(v)
		if !ok {
			continue
		}
		switch label {
		case 1:
			pos = append(pos, i)
		case 0:
			neg = append(neg, i)
		}
	}

	if len(pos) < len(neg) {
		return nil, nil, fmt.Errorf("balance: %d valuable rows cannot cover %d non-valuable rows: %w",
			len(pos), len(neg), ErrClassSizeMismatch)
	}

	sample := make([]int, len(neg))
	if len(sample) > 0 {
		picks := make([]int, len(neg))
		sampleuv.WithoutReplacement(picks, len(pos), b.src)
		for i, p := range picks {
			sample[i] = pos[p]
		}
	}

	if valuable, err = f.Take(sample); err != nil {
		return nil, nil, fmt.Errorf("balance: %w", err)
	}
	if nonValuable, err = f.Take(neg); err != nil {
		return nil, nil, fmt.Errorf("balance: %w", err)
	}

	if valuable.Len() != nonValuable.Len() {
		return nil, nil, fmt.Errorf("balance: %d valuable vs %d non-valuable rows: %w",
			valuable.Len(), nonValuable.Len(), ErrClassSizeMismatch)
	}

	b.logger.Debug("Balanced analyst classes",
		zap.Int("valuable_total", len(pos)),
		zap.Int("non_valuable_total", len(neg)),
		zap.Int("skipped", f.Len()-len(pos)-len(neg)),
		zap.Int("per_class", nonValuable.Len()))

	return valuable, nonValuable, nil
}
