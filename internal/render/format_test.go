package render

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tasatop/schedule-engine/internal/domain"
)

func TestNumber2(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "small", value: 7.5, want: "7.50"},
		{name: "hundreds", value: 968.87, want: "968.87"},
		{name: "thousands", value: 10000, want: "10,000.00"},
		{name: "millions", value: 1234567.891, want: "1,234,567.89"},
		{name: "negative", value: -8333.34, want: "-8,333.34"},
		{name: "zero", value: 0, want: "0.00"},
		{name: "NaN renders as zero", value: math.NaN(), want: "0.00"},
		{name: "infinity renders as zero", value: math.Inf(1), want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Number2(tt.value))
		})
	}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "S/ 10,000.00", Money(domain.CurrencySoles, 10000))
	assert.Equal(t, "$ 833.33", Money(domain.CurrencyDollars, 833.33))
}

func TestRatePercent(t *testing.T) {
	assert.Equal(t, "12.000%", RatePercent(0.12))
	assert.Equal(t, "9.500%", RatePercent(0.095))
	assert.Equal(t, "0.000%", RatePercent(0))
}

func TestRowDays(t *testing.T) {
	assert.Equal(t, "", RowDays(domain.ScheduleRow{Month: 0, Days: 0}))
	assert.Equal(t, "45", RowDays(domain.ScheduleRow{Month: 1, Days: 45}))
}

func TestGeneratedAt(t *testing.T) {
	at := time.Date(2025, 8, 30, 14, 5, 9, 0, time.UTC)
	assert.Equal(t, "30/08/2025 14:05:09", GeneratedAt(at))
}
