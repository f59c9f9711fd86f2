package report

import "math"

// Share returns value as a percentage of basis. A zero basis yields 0 rather
// than NaN or Inf; every percentage shown anywhere in the system must come
// through here so screens never disagree on the zero case.
func Share(value, basis float64) float64 {
	if basis == 0 {
		return 0
	}
	return value / basis * 100
}

// Percent is Share rounded to the nearest whole number, for progress bars.
func Percent(value, basis float64) int {
	return int(math.Round(Share(value, basis)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
