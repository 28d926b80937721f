package preprocess

import (
	"fmt"
	"math"

	"github.com/GriffinCanCode/domainprep/internal/dataset"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Preprocessor turns raw analyst-scored records into model-ready rows.
// It holds no per-call state and is safe for concurrent use.
type Preprocessor struct {
	country string
	logger  *zap.Logger
}

// Option configures a Preprocessor.
type Option func(*Preprocessor)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Preprocessor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithPositiveCountry sets the registrant country encoded as 1.
func WithPositiveCountry(country string) Option {
	return func(p *Preprocessor) {
		p.country = country
	}
}

// New creates a preprocessor.
func New(opts ...Option) *Preprocessor {
	p := &Preprocessor{
		country: DefaultPositiveCountry,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Preprocess validates f against InputSchema and returns the cleaned frame.
// Surviving rows keep their index labels.
func (p *Preprocessor) Preprocess(f *dataset.Frame) (*dataset.Frame, error) {
	if err := InputSchema.Validate(f); err != nil {
		return nil, fmt.Errorf("preprocess: %w", err)
	}
	inputRows := f.Len()

	out, err := f.Drop(DroppedColumns...)
	if err != nil {
		return nil, fmt.Errorf("preprocess: %w", err)
	}

	if out, err = out.DropMissing(ColAnalystResult); err != nil {
		return nil, fmt.Errorf("preprocess: %w", err)
	}

	if out, err = out.Map(ColPrivateRegistration, binarizeNonZero); err != nil {
		return nil, fmt.Errorf("preprocess: %w", err)
	}

	if out, err = out.Map(ColRegistrantCountry, p.binarizeCountry); err != nil {
		return nil, fmt.Errorf("preprocess: %w", err)
	}

	if out, err = p.normalizeDomainAge(out); err != nil {
		return nil, fmt.Errorf("preprocess: %w", err)
	}

	// No-op after the first pass.
	if out, err = out.DropMissing(ColAnalystResult); err != nil {
		return nil, fmt.Errorf("preprocess: %w", err)
	}

	if out, err = out.Map(ColAnalystResult, MapAnalystResult); err != nil {
		return nil, fmt.Errorf("preprocess: %w", err)
	}

	if unmapped := countMissing(out, ColAnalystResult); unmapped > 0 {
		p.logger.Warn("Unrecognized analyst results left unmapped",
			zap.Int("rows", unmapped))
	}

	p.logger.Debug("Preprocessed analyst scored domains",
		zap.Int("input_rows", inputRows),
		zap.Int("output_rows", out.Len()),
		zap.Int("dropped_unlabeled", inputRows-out.Len()))

	return out, nil
}

// MapAnalystResult maps a raw analyst label to 1 or 0. Unrecognized values map
// to nil (missing); they are passed through without validation.
func MapAnalystResult(v any) any {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	label, ok := analystLabels[s]
	if !ok {
		return nil
	}
	return label
}

// binarizeNonZero fills missing with 0, then maps any non-zero value to 1.
// Strings are never zero.
func binarizeNonZero(v any) any {
	if dataset.IsMissing(v) {
		return 0
	}
	switch x := v.(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		return 1
	}
	if f, ok := dataset.ToFloat(v); ok && f == 0 {
		return 0
	}
	return 1
}

func (p *Preprocessor) binarizeCountry(v any) any {
	if s, ok := v.(string); ok && s == p.country {
		return 1
	}
	return 0
}

// normalizeDomainAge z-scores domainAge over the non-missing cells using the
// sample standard deviation. Cells that come out non-finite are left missing.
func (p *Preprocessor) normalizeDomainAge(f *dataset.Frame) (*dataset.Frame, error) {
	ages, err := f.Floats(ColDomainAge)
	if err != nil {
		return nil, err
	}

	present := make([]float64, 0, len(ages))
	for _, a := range ages {
		if !math.IsNaN(a) {
			present = append(present, a)
		}
	}

	mean, std := math.NaN(), math.NaN()
	if len(present) > 0 {
		mean, std = stat.MeanStdDev(present, nil)
	}

	// Missing ages stay NaN through the shift and scale.
	scores := append([]float64(nil), ages...)
	floats.AddConst(-mean, scores)
	floats.Scale(1/std, scores)

	normalized := make([]any, len(ages))
	nonFinite := 0
	for i, a := range ages {
		z := scores[i]
		if math.IsNaN(z) || math.IsInf(z, 0) {
			if !math.IsNaN(a) {
				nonFinite++
			}
			normalized[i] = nil
			continue
		}
		normalized[i] = z
	}

	if nonFinite > 0 {
		p.logger.Warn("Domain age could not be normalized",
			zap.Int("rows", nonFinite),
			zap.Float64("mean", mean),
			zap.Float64("std", std))
	}

	return f.WithColumn(ColDomainAge, normalized)
}

func countMissing(f *dataset.Frame, name string) int {
	col, _ := f.Column(name)
	n := 0
	for _, v := range col {
		if dataset.IsMissing(v) {
			n++
		}
	}
	return n
}
