// Package schedule generates investment payment schedules.
//
// Generate reproduces the legacy spreadsheet macro number-for-number:
// same banker's rounding at the same points, same UTC-safe date rolling,
// same accrual day-count convention. Changing the order of any rounding
// step here changes the output against the reference.
package schedule

import (
	"math"

	"github.com/tasatop/schedule-engine/internal/domain"
	"github.com/tasatop/schedule-engine/internal/rules"
	"github.com/tasatop/schedule-engine/pkg/dates"
	"github.com/tasatop/schedule-engine/pkg/rounding"
)

// TaxRateSecondCategory is the fixed second-category income tax applied
// to gross interest.
const TaxRateSecondCategory = 0.05

// accumulator is the loop state threaded through the month iterations.
// Row N is a pure function of the accumulator entering row N.
type accumulator struct {
	balance          float64
	interestPayments int
	capitalPayments  int
	prevPaymentDate  dates.Date
}

// Generate computes the full schedule for a validated input. It is a
// pure function: no clock, no I/O, safe for concurrent callers.
func Generate(input domain.ScheduleInput) *domain.ScheduleResult {
	payDay := rules.PayDayForProduct(input.Product)
	interestFreq := rules.ParseFrequency(input.InterestFrequency)
	capitalFreq := rules.ParseFrequency(input.CapitalFrequency)
	interestMonths := interestFreq.Months(input.TermMonths)
	capitalMonths := capitalFreq.Months(input.TermMonths)

	installments := capitalInstallments(capitalFreq, input.TermMonths, capitalMonths)
	// Sized once from the original principal, never from the shrinking
	// balance.
	baseInstallment := input.Principal / float64(installments)

	acc := accumulator{
		balance:         input.Principal,
		prevPaymentDate: FirstPaymentDate(input.StartDate, payDay, input.FirstPaymentOption),
	}

	rows := make([]domain.ScheduleRow, 0, input.TermMonths+1)

	for i := 0; i <= input.TermMonths; i++ {
		var paymentDate, scheduleDate dates.Date
		infoDays := 0

		if i == 0 {
			scheduleDate = input.StartDate
		} else {
			if i == 1 {
				paymentDate = acc.prevPaymentDate
			} else {
				paymentDate = PaymentDateAt(acc.prevPaymentDate, 1, payDay)
				acc.prevPaymentDate = paymentDate
			}
			// From month 1 on, the schedule date is the payment date.
			scheduleDate = paymentDate

			if i == 1 {
				infoDays = dates.DayCount(input.StartDate, paymentDate)
				if infoDays < 0 {
					infoDays = 0
				}
			} else {
				prev := PaymentDateAt(paymentDate, -1, payDay)
				infoDays = dates.DayCount(prev, paymentDate)
				if infoDays <= 0 {
					infoDays = 30
				}
			}
		}

		paysInterest := false
		if i > 0 {
			if interestMonths == 1 {
				paysInterest = true
			} else if rules.IsPaymentMonth(i, interestMonths) || i == input.TermMonths {
				// Interest always settles at maturity, aligned or not.
				paysInterest = true
			}
		}

		interestDays := 0
		var grossInterest, tax, netInterest float64
		if paysInterest {
			if acc.interestPayments == 0 {
				// First interest payment accrues over real elapsed days
				// since disbursement; after that the cycle runs on the
				// fixed 30-day-month convention.
				interestDays = dates.DayCount(input.StartDate, paymentDate)
				if interestDays < 0 {
					interestDays = 0
				}
			} else {
				interestDays = 30 * interestMonths
			}

			grossInterest = rounding.HalfEven(
				(math.Pow(1+input.AnnualEffectiveRate, float64(interestDays)/360)-1)*acc.balance, 2)
			tax = rounding.HalfEven(grossInterest*TaxRateSecondCategory, 2)
			netInterest = rounding.HalfEven(grossInterest-tax, 2)

			acc.interestPayments++
		}

		paysCapital := false
		if i > 0 {
			if capitalFreq == rules.AtMaturity {
				paysCapital = i == input.TermMonths
			} else {
				paysCapital = rules.IsPaymentMonth(i, capitalMonths) || i == input.TermMonths
			}
		}

		openingBalance := acc.balance
		capitalReturned := 0.0
		if paysCapital && acc.balance > 0 {
			acc.capitalPayments++

			if i == input.TermMonths || acc.capitalPayments == installments {
				// Last installment absorbs the rounding residue so the
				// balance lands on exactly zero.
				capitalReturned = acc.balance
			} else {
				capitalReturned = rounding.HalfEven(baseInstallment, 2)
				if capitalReturned > acc.balance {
					capitalReturned = acc.balance
				}
			}

			acc.balance = rounding.HalfEven(acc.balance-capitalReturned, 2)
			if acc.balance < 0 {
				acc.balance = 0
			}
		}

		days := infoDays
		if paysInterest {
			days = interestDays
		}
		if i == 0 {
			days = 0
		}

		rows = append(rows, domain.ScheduleRow{
			Month:             i,
			ScheduleDate:      scheduleDate,
			PaymentDate:       paymentDate,
			Days:              days,
			OpeningBalance:    rounding.HalfEven(openingBalance, 2),
			GrossInterest:     grossInterest,
			Tax:               tax,
			NetInterest:       netInterest,
			PrincipalReturned: capitalReturned,
			ClosingBalance:    acc.balance,
			TotalDeposit:      rounding.HalfEven(netInterest+capitalReturned, 2),
			PaysInterest:      paysInterest,
			PaysCapital:       paysCapital,
		})
	}

	var totalNet, totalCapital, totalDeposit float64
	for _, r := range rows {
		totalNet += r.NetInterest
		totalCapital += r.PrincipalReturned
		totalDeposit += r.TotalDeposit
	}

	return &domain.ScheduleResult{
		Rows: rows,
		Totals: domain.ScheduleTotals{
			NetInterest:       rounding.HalfEven(totalNet, 2),
			PrincipalReturned: rounding.HalfEven(totalCapital, 2),
			TotalDeposit:      rounding.HalfEven(totalDeposit, 2),
		},
		Meta: domain.ScheduleMeta{
			PayDay:                 payDay,
			InterestIntervalMonths: interestMonths,
			CapitalIntervalMonths:  capitalMonths,
			CapitalInstallments:    installments,
			BaseInstallment:        baseInstallment,
		},
	}
}

func capitalInstallments(freq rules.Frequency, termMonths, intervalMonths int) int {
	if freq == rules.AtMaturity {
		return 1
	}
	n := (termMonths + intervalMonths - 1) / intervalMonths
	if n < 1 {
		n = 1
	}
	return n
}
