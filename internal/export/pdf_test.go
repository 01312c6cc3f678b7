package export

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasatop/schedule-engine/internal/domain"
	"github.com/tasatop/schedule-engine/internal/schedule"
	"github.com/tasatop/schedule-engine/pkg/dates"
)

func exportFixture() (domain.ScheduleInput, *domain.ScheduleResult) {
	input := domain.ScheduleInput{
		StartDate:           dates.New(2025, 1, 1),
		Principal:           10000,
		Currency:            domain.CurrencySoles,
		AnnualEffectiveRate: 0.12,
		TermMonths:          12,
		Product:             "IKB",
		InterestFrequency:   "MENSUAL",
		CapitalFrequency:    "MENSUAL",
		FirstPaymentOption:  domain.DefaultFirstPaymentOption,
	}
	return input, schedule.Generate(input)
}

func TestExportWithoutLetterhead(t *testing.T) {
	exporter := NewExporter(NewLetterheadFetcher("", time.Second, nil, nil), nil)
	input, result := exportFixture()
	generatedAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	data, filename, err := exporter.Export(context.Background(), input, result, generatedAt)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data[:5]), "%PDF-"))
	assert.Equal(t, "TASATOP_Cronograma_20250314_093000.pdf", filename)
}

func TestExportWithLetterhead(t *testing.T) {
	cache := &fakeAssetCache{data: tinyPNG}
	exporter := NewExporter(NewLetterheadFetcher("", time.Second, cache, nil), nil)
	input, result := exportFixture()

	data, _, err := exporter.Export(context.Background(), input, result, time.Now())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data[:5]), "%PDF-"))
}
