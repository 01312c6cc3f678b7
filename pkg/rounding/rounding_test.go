package rounding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalfEven(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		digits int
		want   float64
	}{
		// Half cases resolve to the even neighbor even though the
		// binary representation sits slightly off the boundary.
		{name: "half down to even", value: 2.345, digits: 2, want: 2.34},
		{name: "half up to even", value: 2.355, digits: 2, want: 2.36},
		{name: "half at integer scale even", value: 2.5, digits: 0, want: 2},
		{name: "half at integer scale odd", value: 3.5, digits: 0, want: 4},
		{name: "negative half to even", value: -2.5, digits: 0, want: -2},
		{name: "classic float trap 1.005", value: 1.005, digits: 2, want: 1.00},
		{name: "classic float trap 2.675", value: 2.675, digits: 2, want: 2.68},

		// Ordinary nearest rounding away from the half window.
		{name: "below half", value: 2.344, digits: 2, want: 2.34},
		{name: "above half", value: 2.346, digits: 2, want: 2.35},
		{name: "negative nearest", value: -1.234, digits: 2, want: -1.23},
		{name: "zero digits nearest", value: 17.3, digits: 0, want: 17},
		{name: "already exact", value: 10.20, digits: 2, want: 10.20},
		{name: "zero", value: 0, digits: 2, want: 0},

		// Non-finite input collapses to zero, as the reference does.
		{name: "NaN", value: math.NaN(), digits: 2, want: 0},
		{name: "positive infinity", value: math.Inf(1), digits: 2, want: 0},
		{name: "negative infinity", value: math.Inf(-1), digits: 2, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HalfEven(tt.value, tt.digits))
		})
	}
}

func TestHalfEvenStability(t *testing.T) {
	// Rounding an already-rounded value must be a no-op; the engine
	// relies on this when it re-rounds opening balances.
	for _, v := range []float64{142.67, 833.33, 0.01, 9999999.99, -5.55} {
		assert.Equal(t, v, HalfEven(v, 2))
	}
}
