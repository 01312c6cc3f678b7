package schedule

import (
	"strings"

	"github.com/tasatop/schedule-engine/internal/rules"
	"github.com/tasatop/schedule-engine/pkg/dates"
)

// PaymentDateAt shifts base by monthOffset whole months and anchors the
// result on the product pay-day, clamped to the target month's length.
// Negative offsets recover the previous period's anchor for day counts.
func PaymentDateAt(base dates.Date, monthOffset, payDay int) dates.Date {
	shifted := dates.AddMonths(base, monthOffset)
	day := payDay
	if last := dates.LastDayOfMonth(shifted.Year, shifted.Month); day > last {
		day = last
	}
	return dates.New(shifted.Year, shifted.Month, day)
}

// FirstPaymentDate resolves the Month-1 due date. A start day past the
// pay-day always pushes the first payment to the following month: the
// period has to accrue before it can pay. Otherwise the policy text
// decides; only a "same month as disbursement" policy (MES + INVERSION
// in the legacy vocabulary, MONTH + DISBURSEMENT in translation) keeps
// the payment in the disbursement month.
func FirstPaymentDate(start dates.Date, payDay int, firstPaymentOption string) dates.Date {
	if start.Day > payDay {
		return PaymentDateAt(start, 1, payDay)
	}

	key := rules.NormalizeKey(firstPaymentOption)
	monthToken := strings.Contains(key, "MES") || strings.Contains(key, "MONTH")
	disbursementToken := strings.Contains(key, "INVERSION") || strings.Contains(key, "DISBURSEMENT")
	if monthToken && disbursementToken {
		return PaymentDateAt(start, 0, payDay)
	}
	return PaymentDateAt(start, 1, payDay)
}
