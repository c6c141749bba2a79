package midpoint

// integrand is 4/(1+x^2), whose integral over [0,1] is pi.
func integrand(x float64) float64 {
	return 4.0 / (1.0 + x*x)
}

func naiveSum(n int64, h float64) float64 {
	s := 0.0
	for i := int64(0); i < n; i++ {
		x := h * (float64(i) + 0.5)
		s += integrand(x)
	}
	return s
}

// kahanSum carries a compensation term that cancels most of the rounding
// error a plain left-to-right sum picks up at large n.
func kahanSum(n int64, h float64) float64 {
	s, c := 0.0, 0.0
	for i := int64(0); i < n; i++ {
		x := h * (float64(i) + 0.5)
		y := integrand(x) - c
		t := s + y
		c = (t - s) - y
		s = t
	}
	return s
}
