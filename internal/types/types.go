package types

// Result holds the outcome of a single midpoint-rule estimation run.
type Result struct {
	N           int64
	H           float64
	Sum         float64
	Estimate    float64
	AbsError    float64
	Compensated bool
}

// SeriesPoint is one step of a convergence sweep. Ratio relates the
// previous step's absolute error to this one (0 for the first step).
type SeriesPoint struct {
	Result
	Ratio float64
}
