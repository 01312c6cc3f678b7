// Package dates implements calendar arithmetic on civil dates.
//
// A Date carries only year, month and day. Keeping time-of-day and
// timezone out of the type removes the off-by-one-day drift that
// timestamp math is prone to; all conversions to time.Time happen
// internally at UTC midnight.
package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned by Parse for malformed or non-existent dates.
var ErrInvalidDate = errors.New("invalid date")

// Date is a civil date: year, month (1..12), day (1..31).
// The zero value means "no date" (see IsZero).
type Date struct {
	Year  int
	Month int
	Day   int
}

// New builds a Date without validation. Callers that need validation
// should go through Parse.
func New(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// Parse reads a strict "YYYY-MM-DD" token. A date that does not
// round-trip (e.g. 2026-02-31) is rejected rather than normalized,
// matching spreadsheet input validation.
func Parse(value string) (Date, error) {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	y, errY := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	d, errD := strconv.Atoi(parts[2])
	if errY != nil || errM != nil || errD != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	return Date{Year: y, Month: m, Day: d}, nil
}

// IsZero reports whether d is the empty "no date" value.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Equal reports whether two dates are the same civil day.
func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) utc() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// String returns the ISO "YYYY-MM-DD" form, or "" for the zero value.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalJSON encodes the date as "YYYY-MM-DD", or null for the zero value.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD" or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(strings.Trim(s, `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DayCount returns the number of whole calendar days from a to b,
// negative when a is after b.
func DayCount(a, b Date) int {
	return int(b.utc().Sub(a.utc()) / (24 * time.Hour))
}

// LastDayOfMonth returns the number of days in the given month.
func LastDayOfMonth(year, month int) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths shifts d by n whole months (n may be negative). When the
// original day-of-month does not exist in the target month, the result
// clamps to that month's last day.
func AddMonths(d Date, n int) Date {
	idx := (d.Month - 1) + n
	year := d.Year + floorDiv(idx, 12)
	month := ((idx%12)+12)%12 + 1

	day := d.Day
	if last := LastDayOfMonth(year, month); day > last {
		day = last
	}
	return Date{Year: year, Month: month, Day: day}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FormatDDMMYYYY renders the display form "DD/MM/YYYY", or "" for the
// zero value.
func FormatDDMMYYYY(d Date) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// Stamp renders a sortable "YYYYMMDD_HHMMSS" token for generated
// filenames.
func Stamp(t time.Time) string {
	return t.Format("20060102_150405")
}
