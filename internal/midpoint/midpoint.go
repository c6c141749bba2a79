package midpoint

import (
	"errors"
	"fmt"
	"math"

	tt "github.com/quadlabs/quadpi/internal/types"
)

// DefaultSubintervals is the resolution used when nothing overrides it.
const DefaultSubintervals = 100_000_000

// ErrNonPositiveIntervals is returned when the subinterval count is zero
// or negative, which would otherwise divide by zero.
var ErrNonPositiveIntervals = errors.New("subinterval count must be positive")

// Estimator approximates pi with a midpoint Riemann sum of 4/(1+x^2)
// over [0,1].
type Estimator struct {
	n           int64
	compensated bool
}

type Option func(*Estimator)

// WithSubintervals sets the number of equal-width subintervals.
func WithSubintervals(n int64) Option {
	return func(e *Estimator) { e.n = n }
}

// WithCompensation toggles Kahan compensated accumulation.
func WithCompensation(on bool) Option {
	return func(e *Estimator) { e.compensated = on }
}

func New(opts ...Option) *Estimator {
	e := &Estimator{n: DefaultSubintervals}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Subintervals returns the configured subinterval count.
func (e *Estimator) Subintervals() int64 { return e.n }

// Estimate runs the summation with the configured subinterval count.
func (e *Estimator) Estimate() (tt.Result, error) {
	return e.EstimateN(e.n)
}

// EstimateN runs the summation over n subintervals. The accumulation
// order is fixed (ascending index), so equal n always yields
// bit-identical results.
func (e *Estimator) EstimateN(n int64) (tt.Result, error) {
	if n <= 0 {
		return tt.Result{}, fmt.Errorf("%w: got %d", ErrNonPositiveIntervals, n)
	}

	h := 1.0 / float64(n)
	var sum float64
	if e.compensated {
		sum = kahanSum(n, h)
	} else {
		sum = naiveSum(n, h)
	}

	estimate := sum * h
	return tt.Result{
		N:           n,
		H:           h,
		Sum:         sum,
		Estimate:    estimate,
		AbsError:    math.Abs(estimate - math.Pi),
		Compensated: e.compensated,
	}, nil
}
