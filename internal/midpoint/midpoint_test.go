package midpoint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateSingleMidpoint(t *testing.T) {
	t.Parallel()
	res, err := New(WithSubintervals(1)).Estimate()
	require.NoError(t, err)

	// single midpoint at x=0.5: 4/(1+0.25) = 3.2
	assert.Equal(t, 4.0/1.25, res.Estimate)
	assert.Equal(t, 1.0, res.H)
	assert.Equal(t, int64(1), res.N)
}

func TestEstimateFourMidpoints(t *testing.T) {
	t.Parallel()
	res, err := New(WithSubintervals(4)).Estimate()
	require.NoError(t, err)

	// reference value computed with the same double arithmetic, same order
	want := 0.0
	for _, x := range []float64{0.125, 0.375, 0.625, 0.875} {
		want += 4.0 / (1.0 + x*x)
	}
	want *= 0.25

	assert.Equal(t, want, res.Estimate)
	assert.InDelta(t, 3.1468, res.Estimate, 1e-4)
}

func TestEstimateRejectsNonPositiveCount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		n    int64
	}{
		{"zero", 0},
		{"negative", -5},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := New().EstimateN(tc.n)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNonPositiveIntervals)

			// never NaN/Inf, the zero result is returned instead
			assert.False(t, math.IsNaN(res.Estimate))
			assert.False(t, math.IsInf(res.Estimate, 0))
		})
	}
}

func TestErrorShrinksWithResolution(t *testing.T) {
	t.Parallel()
	e := New()
	prev := math.Inf(1)
	for _, n := range []int64{10, 100, 1000, 10000} {
		res, err := e.EstimateN(n)
		require.NoError(t, err)
		assert.Less(t, res.AbsError, prev, "n=%d", n)
		prev = res.AbsError
	}
}

func TestQuadraticConvergenceRate(t *testing.T) {
	t.Parallel()
	e := New()

	coarse, err := e.EstimateN(100)
	require.NoError(t, err)
	fine, err := e.EstimateN(1000)
	require.NoError(t, err)

	// midpoint rule error is O(h^2): roughly 100x smaller per decade
	ratio := coarse.AbsError / fine.AbsError
	assert.InDelta(t, 100, ratio, 10)
}

func TestEstimateDeterministic(t *testing.T) {
	t.Parallel()
	a, err := New().EstimateN(100_000)
	require.NoError(t, err)
	b, err := New().EstimateN(100_000)
	require.NoError(t, err)

	assert.Equal(t, math.Float64bits(a.Estimate), math.Float64bits(b.Estimate))
	assert.Equal(t, math.Float64bits(a.Sum), math.Float64bits(b.Sum))
}

func TestCompensatedMatchesNaive(t *testing.T) {
	t.Parallel()
	naive, err := New().EstimateN(100_000)
	require.NoError(t, err)
	comp, err := New(WithCompensation(true)).EstimateN(100_000)
	require.NoError(t, err)

	assert.True(t, comp.Compensated)
	assert.False(t, naive.Compensated)
	assert.InDelta(t, naive.Estimate, comp.Estimate, 1e-12)
}

func TestDefaultResolutionAccuracy(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-resolution run in short mode")
	}
	t.Parallel()

	res, err := New().Estimate()
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultSubintervals), res.N)
	assert.Less(t, res.AbsError, 1e-7)
}

func BenchmarkEstimate(b *testing.B) {
	sizes := []struct {
		name string
		n    int64
	}{
		{"1e4", 10_000},
		{"1e6", 1_000_000},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			e := New(WithSubintervals(size.n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := e.Estimate(); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(size.name+"/kahan", func(b *testing.B) {
			e := New(WithSubintervals(size.n), WithCompensation(true))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := e.Estimate(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
