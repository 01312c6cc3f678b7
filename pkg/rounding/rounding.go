// Package rounding implements round-half-to-even at a decimal scale.
//
// Every monetary figure produced by the schedule engine passes through
// HalfEven exactly once, at the moment it is computed. The epsilon
// thresholds are calibrated against the reference system's binary
// floating-point behavior and must not be "cleaned up": a value within
// 1e-10 of the half boundary counts as exactly half.
package rounding

import "math"

// HalfEven rounds value to the given number of decimal digits, sending
// exact halves to the nearest even digit. Non-finite input rounds to 0.
func HalfEven(value float64, digits int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	factor := math.Pow(10, float64(digits))
	n := value * factor

	// Relative epsilon absorbs binary representation error before the
	// floor; the absolute window below decides the half case.
	eps := 1e-12 * math.Max(1, math.Abs(n))
	sign := 1.0
	if n < 0 {
		sign = -1
	}
	abs := math.Abs(n)

	floor := math.Floor(abs + eps)
	frac := abs - floor

	if math.Abs(frac-0.5) <= 1e-10 {
		rounded := floor
		if math.Mod(floor, 2) != 0 {
			rounded = floor + 1
		}
		return sign * rounded / factor
	}
	return sign * math.Floor(abs+eps+0.5) / factor
}
