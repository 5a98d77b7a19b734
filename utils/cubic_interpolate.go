// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates the Catmull-Rom spline through y0..y3 at x,
// the fractional position between y1 and y2 (0 <= x <= 1).
// At x == 0 the result is exactly y1.
func CubicInterpolate(y0, y1, y2, y3, x float64) float64 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}

// SampleAt reads s at a fractional index using cubic interpolation.
// Neighbours outside s repeat the edge sample; positions at or past len(s)
// and below zero read as silence.
func SampleAt(s []float64, pos float64) float64 {
	n := len(s)
	if n == 0 || pos < 0 || pos >= float64(n) {
		return 0
	}

	i := int(pos)
	frac := pos - float64(i)
	y1 := s[i]
	if frac == 0 {
		return y1
	}

	y0 := y1
	if i > 0 {
		y0 = s[i-1]
	}
	y2 := y1
	if i+1 < n {
		y2 = s[i+1]
	}
	y3 := y2
	if i+2 < n {
		y3 = s[i+2]
	}

	return CubicInterpolate(y0, y1, y2, y3, frac)
}
