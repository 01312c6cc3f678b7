package domain

import (
	"github.com/tasatop/schedule-engine/pkg/dates"
)

// Supported currency symbols.
const (
	CurrencySoles   = "S/"
	CurrencyDollars = "$"
)

// DefaultFirstPaymentOption applies when the caller leaves the
// first-payment policy empty.
const DefaultFirstPaymentOption = "Próximo mes"

// ScheduleInput is the validated input record the engine consumes.
// Validation happens at the boundary (see handler); the engine itself
// assumes the fields are well-formed.
type ScheduleInput struct {
	StartDate           dates.Date `json:"start_date"`
	Principal           float64    `json:"principal"`
	Currency            string     `json:"currency"`
	AnnualEffectiveRate float64    `json:"annual_effective_rate"`
	TermMonths          int        `json:"term_months"`
	Product             string     `json:"product"`
	InterestFrequency   string     `json:"interest_frequency"`
	CapitalFrequency    string     `json:"capital_frequency"`
	FirstPaymentOption  string     `json:"first_payment_option"`
}

// ScheduleRow is one month of the schedule. Month 0 is the disbursement
// month: it carries no payment date and no movement.
type ScheduleRow struct {
	Month             int        `json:"month"`
	ScheduleDate      dates.Date `json:"schedule_date"`
	PaymentDate       dates.Date `json:"payment_date"`
	Days              int        `json:"days"`
	OpeningBalance    float64    `json:"opening_balance"`
	GrossInterest     float64    `json:"gross_interest"`
	Tax               float64    `json:"tax"`
	NetInterest       float64    `json:"net_interest"`
	PrincipalReturned float64    `json:"principal_returned"`
	ClosingBalance    float64    `json:"closing_balance"`
	TotalDeposit      float64    `json:"total_deposit"`
	PaysInterest      bool       `json:"pays_interest"`
	PaysCapital       bool       `json:"pays_capital"`
}

// ScheduleTotals are the column sums, each rounded after summing the
// already-rounded rows.
type ScheduleTotals struct {
	NetInterest       float64 `json:"net_interest"`
	PrincipalReturned float64 `json:"principal_returned"`
	TotalDeposit      float64 `json:"total_deposit"`
}

// ScheduleMeta records the business parameters the engine resolved from
// the raw product and frequency text.
type ScheduleMeta struct {
	PayDay                 int     `json:"pay_day"`
	InterestIntervalMonths int     `json:"interest_interval_months"`
	CapitalIntervalMonths  int     `json:"capital_interval_months"`
	CapitalInstallments    int     `json:"capital_installments"`
	BaseInstallment        float64 `json:"base_installment"`
}

// ScheduleResult is the full generated schedule. It is owned by the
// caller; the engine keeps no state between invocations.
type ScheduleResult struct {
	Rows   []ScheduleRow  `json:"rows"`
	Totals ScheduleTotals `json:"totals"`
	Meta   ScheduleMeta   `json:"meta"`
}
