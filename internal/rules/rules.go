// Package rules holds the business-rule lookups behind the schedule
// engine: free-text key normalization, the product to pay-day table and
// the payment-frequency vocabulary.
package rules

import "strings"

// DefaultPayDay is used for products outside the known table.
const DefaultPayDay = 15

var accentFolder = strings.NewReplacer(
	"Á", "A",
	"É", "E",
	"Í", "I",
	"Ó", "O",
	"Ú", "U",
	"Ü", "U",
	"Ñ", "N",
)

// NormalizeKey folds free text into the canonical lookup form: trimmed,
// upper-cased, accents and Ñ replaced by their plain Latin letters,
// whitespace runs collapsed to single spaces.
func NormalizeKey(s string) string {
	s = accentFolder.Replace(strings.ToUpper(strings.TrimSpace(s)))
	return strings.Join(strings.Fields(s), " ")
}

// PayDayForProduct maps a product code to its fixed pay day-of-month.
// Unrecognized codes fall back to DefaultPayDay.
func PayDayForProduct(product string) int {
	switch NormalizeKey(product) {
	case "IKB":
		return 15
	case "ALI":
		return 28
	case "PET":
		return 10
	case "M&L":
		return 20
	default:
		return DefaultPayDay
	}
}

// Frequency is the closed payment-frequency vocabulary.
type Frequency int

const (
	Monthly Frequency = iota
	Bimonthly
	Quarterly
	Semiannual
	Annual
	AtMaturity
)

// ParseFrequency maps a raw frequency label to the enum. The canonical
// labels are the legacy Spanish ones; the English synonyms are accepted
// as aliases. Anything unrecognized is treated as monthly.
func ParseFrequency(label string) Frequency {
	switch NormalizeKey(label) {
	case "MENSUAL", "MONTHLY":
		return Monthly
	case "BIMESTRAL", "BIMONTHLY":
		return Bimonthly
	case "TRIMESTRAL", "QUARTERLY":
		return Quarterly
	case "SEMESTRAL", "SEMIANNUAL":
		return Semiannual
	case "ANUAL", "ANNUAL":
		return Annual
	case "AL FINALIZAR", "AT MATURITY", "AT-MATURITY":
		return AtMaturity
	default:
		return Monthly
	}
}

// Months resolves the frequency to an interval in months. AtMaturity
// spans the whole term.
func (f Frequency) Months(termMonths int) int {
	switch f {
	case Monthly:
		return 1
	case Bimonthly:
		return 2
	case Quarterly:
		return 3
	case Semiannual:
		return 6
	case Annual:
		return 12
	case AtMaturity:
		return termMonths
	default:
		return 1
	}
}

// String returns the canonical label.
func (f Frequency) String() string {
	switch f {
	case Monthly:
		return "MENSUAL"
	case Bimonthly:
		return "BIMESTRAL"
	case Quarterly:
		return "TRIMESTRAL"
	case Semiannual:
		return "SEMESTRAL"
	case Annual:
		return "ANUAL"
	case AtMaturity:
		return "AL FINALIZAR"
	default:
		return "MENSUAL"
	}
}

// IsPaymentMonth reports whether the month index lands on the interval.
func IsPaymentMonth(monthIndex, intervalMonths int) bool {
	if intervalMonths <= 0 {
		return false
	}
	return monthIndex%intervalMonths == 0
}
