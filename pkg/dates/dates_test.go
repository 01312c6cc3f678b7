package dates

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "plain date", input: "2025-01-10", want: New(2025, 1, 10)},
		{name: "leap day", input: "2024-02-29", want: New(2024, 2, 29)},
		{name: "non-leap feb 29", input: "2023-02-29", wantErr: true},
		{name: "day overflow is rejected not normalized", input: "2026-02-31", wantErr: true},
		{name: "day 31 in a 30-day month", input: "2025-04-31", wantErr: true},
		{name: "non numeric part", input: "2025-ab-10", wantErr: true},
		{name: "missing part", input: "2025-01", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayCount(t *testing.T) {
	tests := []struct {
		name string
		a, b Date
		want int
	}{
		{name: "same day", a: New(2025, 1, 1), b: New(2025, 1, 1), want: 0},
		{name: "forward", a: New(2025, 1, 1), b: New(2025, 2, 15), want: 45},
		{name: "backward is negative", a: New(2025, 2, 15), b: New(2025, 1, 1), want: -45},
		{name: "across leap day", a: New(2024, 2, 1), b: New(2024, 3, 1), want: 29},
		{name: "across year boundary", a: New(2024, 12, 15), b: New(2025, 1, 15), want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayCount(tt.a, tt.b))
		})
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		d    Date
		n    int
		want Date
	}{
		{name: "leap year clamp", d: New(2024, 1, 31), n: 1, want: New(2024, 2, 29)},
		{name: "non-leap clamp", d: New(2023, 1, 31), n: 1, want: New(2023, 2, 28)},
		{name: "plain shift keeps day", d: New(2025, 3, 10), n: 2, want: New(2025, 5, 10)},
		{name: "across year boundary", d: New(2025, 11, 20), n: 3, want: New(2026, 2, 20)},
		{name: "negative shift", d: New(2025, 3, 15), n: -1, want: New(2025, 2, 15)},
		{name: "negative across year", d: New(2025, 1, 15), n: -2, want: New(2024, 11, 15)},
		{name: "negative with clamp", d: New(2025, 3, 31), n: -1, want: New(2025, 2, 28)},
		{name: "zero months", d: New(2025, 6, 30), n: 0, want: New(2025, 6, 30)},
		{name: "many months", d: New(2025, 1, 31), n: 13, want: New(2026, 2, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.d, tt.n))
		})
	}
}

func TestLastDayOfMonth(t *testing.T) {
	assert.Equal(t, 31, LastDayOfMonth(2025, 1))
	assert.Equal(t, 28, LastDayOfMonth(2025, 2))
	assert.Equal(t, 29, LastDayOfMonth(2024, 2))
	assert.Equal(t, 30, LastDayOfMonth(2025, 4))
	assert.Equal(t, 31, LastDayOfMonth(2025, 12))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "15/02/2025", FormatDDMMYYYY(New(2025, 2, 15)))
	assert.Equal(t, "01/01/2025", FormatDDMMYYYY(New(2025, 1, 1)))
	assert.Equal(t, "", FormatDDMMYYYY(Date{}))

	at := time.Date(2025, 8, 30, 14, 5, 9, 0, time.UTC)
	assert.Equal(t, "20250830_140509", Stamp(at))
}

func TestJSONRoundTrip(t *testing.T) {
	type wrapper struct {
		When Date `json:"when"`
		None Date `json:"none"`
	}

	in := wrapper{When: New(2025, 2, 15)}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"when":"2025-02-15","none":null}`, string(raw))

	var out wrapper
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}
