package domain

import (
	"github.com/shopspring/decimal"
)

// DTOs for requests and responses

// GenerateScheduleRequest is the wire shape of a schedule request. The
// rate arrives in percent, exactly as the legacy input form took it;
// money fields are decimals at the boundary and become float64 before
// the engine runs.
type GenerateScheduleRequest struct {
	StartDate          string          `json:"start_date" validate:"required"`
	Amount             decimal.Decimal `json:"amount" validate:"required,decimal_gt0"`
	Currency           string          `json:"currency" validate:"required,oneof=S/ $"`
	AnnualRatePercent  decimal.Decimal `json:"annual_rate_percent" validate:"required"`
	TermMonths         int             `json:"term_months" validate:"required,gt=0"`
	Product            string          `json:"product" validate:"required"`
	InterestFrequency  string          `json:"interest_frequency" validate:"required"`
	CapitalFrequency   string          `json:"capital_frequency" validate:"required"`
	FirstPaymentOption string          `json:"first_payment_option"`
}

// ScheduleSummary carries the display header values: rate as "0.000%",
// amount with currency prefix and thousands separators.
type ScheduleSummary struct {
	Rate               string `json:"rate"`
	RateType           string `json:"rate_type"`
	Amount             string `json:"amount"`
	Product            string `json:"product"`
	TermMonths         int    `json:"term_months"`
	InterestFrequency  string `json:"interest_frequency"`
	CapitalFrequency   string `json:"capital_frequency"`
	FirstPaymentOption string `json:"first_payment_option"`
	PayDay             int    `json:"pay_day"`
}

type GenerateScheduleResponse struct {
	Summary  ScheduleSummary `json:"summary"`
	Schedule *ScheduleResult `json:"schedule"`
}
