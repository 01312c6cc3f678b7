// Package render formats schedule figures for display: fixed
// two-decimal money with thousands separators, the headline rate as a
// three-decimal percentage, and the days column. Handlers and the PDF
// exporter share it so the two surfaces never disagree.
package render

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tasatop/schedule-engine/internal/domain"
)

// Number2 renders v as "#,##0.00". Non-finite input renders as "0.00",
// matching the reference UI.
func Number2(v float64) string {
	return group(v, 2)
}

// Money prefixes the amount with its currency symbol: "S/ 10,000.00".
func Money(currency string, v float64) string {
	return currency + " " + Number2(v)
}

// RatePercent renders an effective-rate fraction as a percentage with
// three decimals: 0.12 -> "12.000%".
func RatePercent(rate float64) string {
	return group(rate*100, 3) + "%"
}

// RowDays renders the days column: empty for the disbursement month,
// the plain count otherwise.
func RowDays(row domain.ScheduleRow) string {
	if row.Month == 0 {
		return ""
	}
	return strconv.Itoa(row.Days)
}

// GeneratedAt renders the report generation timestamp.
func GeneratedAt(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}

func group(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}

	s := strconv.FormatFloat(v, 'f', decimals, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
