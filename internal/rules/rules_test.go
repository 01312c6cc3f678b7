package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trims and uppercases", input: "  mensual ", want: "MENSUAL"},
		{name: "folds accents", input: "mes de la inversión", want: "MES DE LA INVERSION"},
		{name: "folds enye", input: "año", want: "ANO"},
		{name: "collapses whitespace runs", input: "AL   FINALIZAR", want: "AL FINALIZAR"},
		{name: "mixed", input: "  Próximo   MES ", want: "PROXIMO MES"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.input))
		})
	}
}

func TestPayDayForProduct(t *testing.T) {
	tests := []struct {
		product string
		want    int
	}{
		{product: "IKB", want: 15},
		{product: "ali", want: 28},
		{product: " pet ", want: 10},
		{product: "M&L", want: 20},
		{product: "OTRO", want: 15},
		{product: "", want: 15},
	}

	for _, tt := range tests {
		t.Run(tt.product, func(t *testing.T) {
			assert.Equal(t, tt.want, PayDayForProduct(tt.product))
		})
	}
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		label string
		want  Frequency
	}{
		{label: "Mensual", want: Monthly},
		{label: "MONTHLY", want: Monthly},
		{label: "bimestral", want: Bimonthly},
		{label: "BIMONTHLY", want: Bimonthly},
		{label: "Trimestral", want: Quarterly},
		{label: "quarterly", want: Quarterly},
		{label: "SEMESTRAL", want: Semiannual},
		{label: "semiannual", want: Semiannual},
		{label: "Anual", want: Annual},
		{label: "ANNUAL", want: Annual},
		{label: "Al finalizar", want: AtMaturity},
		{label: "AT MATURITY", want: AtMaturity},
		{label: "AT-MATURITY", want: AtMaturity},
		{label: "cada luna llena", want: Monthly}, // unrecognized defaults to monthly
		{label: "", want: Monthly},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFrequency(tt.label))
		})
	}
}

func TestFrequencyMonths(t *testing.T) {
	term := 18
	assert.Equal(t, 1, Monthly.Months(term))
	assert.Equal(t, 2, Bimonthly.Months(term))
	assert.Equal(t, 3, Quarterly.Months(term))
	assert.Equal(t, 6, Semiannual.Months(term))
	assert.Equal(t, 12, Annual.Months(term))
	assert.Equal(t, term, AtMaturity.Months(term))
}

func TestIsPaymentMonth(t *testing.T) {
	assert.True(t, IsPaymentMonth(3, 3))
	assert.True(t, IsPaymentMonth(12, 3))
	assert.False(t, IsPaymentMonth(4, 3))
	assert.True(t, IsPaymentMonth(0, 3)) // month 0 aligns; the engine excludes it separately
	assert.False(t, IsPaymentMonth(5, 0))
	assert.False(t, IsPaymentMonth(5, -1))
}
