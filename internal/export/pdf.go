// Package export renders a generated schedule into a printable PDF:
// A4 landscape, branded letterhead, summary grid and the full schedule
// table with a totals row.
package export

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/tasatop/schedule-engine/internal/domain"
	"github.com/tasatop/schedule-engine/internal/metrics"
	"github.com/tasatop/schedule-engine/internal/render"
	"github.com/tasatop/schedule-engine/pkg/dates"
	customError "github.com/tasatop/schedule-engine/pkg/errors"
)

const (
	pageMargin = 10.0
	rowHeight  = 6.0
	logoSize   = 22.0
)

// Table palette, carried over from the legacy report.
var (
	headerFill    = [3]int{31, 95, 168}
	alternateFill = [3]int{245, 247, 251}
	totalsFill    = [3]int{235, 238, 245}
	gridLine      = [3]int{220, 224, 231}
)

// Exporter renders ScheduleResults into PDF documents.
type Exporter struct {
	letterhead *LetterheadFetcher
	logger     *zap.Logger
}

func NewExporter(letterhead *LetterheadFetcher, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{letterhead: letterhead, logger: logger}
}

// Export renders the schedule document and returns its bytes together
// with the generated filename.
func (e *Exporter) Export(ctx context.Context, input domain.ScheduleInput, result *domain.ScheduleResult, generatedAt time.Time) ([]byte, string, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	withLogo := e.drawLetterhead(ctx, pdf, tr, generatedAt)
	e.drawSummary(pdf, tr, input, result)
	e.drawSchedule(pdf, tr, result)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", customError.WrapExportError(err)
	}

	label := "text"
	if withLogo {
		label = "embedded"
	}
	metrics.ScheduleExports.WithLabelValues(label).Inc()

	filename := "TASATOP_Cronograma_" + dates.Stamp(generatedAt) + ".pdf"
	return buf.Bytes(), filename, nil
}

// drawLetterhead paints the logo (when available) and the title block,
// and reports whether the logo made it in.
func (e *Exporter) drawLetterhead(ctx context.Context, pdf *fpdf.Fpdf, tr func(string) string, generatedAt time.Time) bool {
	withLogo := false
	textX := pageMargin

	if e.letterhead != nil {
		if data, err := e.letterhead.Fetch(ctx); err == nil {
			if imageType := sniffImageType(data); imageType != "" {
				opts := fpdf.ImageOptions{ImageType: imageType}
				pdf.RegisterImageOptionsReader("letterhead", opts, bytes.NewReader(data))
				if pdf.Ok() {
					pdf.ImageOptions("letterhead", pageMargin, 8, logoSize, logoSize, false, opts, 0, "")
					withLogo = true
					textX = pageMargin + logoSize + 5
				}
			}
		} else {
			// Non-fatal: the document ships with a text letterhead.
			e.logger.Warn("letterhead unavailable, exporting text-only", zap.Error(err))
		}
	}

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(textX, 14, "TASATOP")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(textX, 21, tr("Cronograma de Inversión"))
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(textX, 27, "Generado: "+render.GeneratedAt(generatedAt))
	pdf.SetY(34)

	return withLogo
}

func (e *Exporter) drawSummary(pdf *fpdf.Fpdf, tr func(string) string, input domain.ScheduleInput, result *domain.ScheduleResult) {
	cells := [][2]string{
		{"TA", render.RatePercent(input.AnnualEffectiveRate)},
		{"Monto invertido", render.Money(input.Currency, input.Principal)},
		{"Producto", input.Product},
		{"Plazo", strconv.Itoa(input.TermMonths) + " Meses"},
		{"Frecuencia (interés)", input.InterestFrequency},
		{"Tipo tasa", "Tasa Efectiva Anual"},
		{"Devolución de capital", input.CapitalFrequency},
		{"Opción primer pago", input.FirstPaymentOption},
		{"Día de pago", strconv.Itoa(result.Meta.PayDay)},
	}

	pdf.SetDrawColor(gridLine[0], gridLine[1], gridLine[2])
	pdf.SetLineWidth(0.2)

	// Three label/value pairs per line.
	labelW, valueW := 42.0, 50.5
	for i := 0; i < len(cells); i += 3 {
		for j := i; j < i+3 && j < len(cells); j++ {
			pdf.SetFont("Helvetica", "B", 9)
			pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
			pdf.SetTextColor(255, 255, 255)
			pdf.CellFormat(labelW, rowHeight, tr(cells[j][0]), "1", 0, "L", true, 0, "")

			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(20, 20, 20)
			pdf.CellFormat(valueW, rowHeight, tr(cells[j][1]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(rowHeight)
	}
	pdf.Ln(4)
}

func (e *Exporter) drawSchedule(pdf *fpdf.Fpdf, tr func(string) string, result *domain.ScheduleResult) {
	headers := []string{
		"Mes", "Fecha cronograma", "Fecha pago", "Días",
		"Monto base", "Interés bruto", "Impuesto", "Interés a depositar",
		"Devolución capital", "Saldo capital", "Total a depositar",
	}
	widths := []float64{10, 26, 26, 12, 29, 29, 29, 29, 29, 29, 29}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], rowHeight, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(rowHeight)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(20, 20, 20)
	for idx, row := range result.Rows {
		fill := idx%2 == 1
		pdf.SetFillColor(alternateFill[0], alternateFill[1], alternateFill[2])

		cells := []string{
			strconv.Itoa(row.Month),
			dates.FormatDDMMYYYY(row.ScheduleDate),
			dates.FormatDDMMYYYY(row.PaymentDate),
			render.RowDays(row),
			render.Number2(row.OpeningBalance),
			render.Number2(row.GrossInterest),
			render.Number2(row.Tax),
			render.Number2(row.NetInterest),
			render.Number2(row.PrincipalReturned),
			render.Number2(row.ClosingBalance),
			render.Number2(row.TotalDeposit),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], rowHeight, c, "1", 0, "C", fill, 0, "")
		}
		pdf.Ln(rowHeight)
	}

	// TOTAL row: sums under net interest, capital returned and total
	// deposit, like the legacy report.
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(totalsFill[0], totalsFill[1], totalsFill[2])
	totals := []string{
		"TOTAL", "", "", "", "", "", "",
		render.Number2(result.Totals.NetInterest),
		render.Number2(result.Totals.PrincipalReturned),
		"",
		render.Number2(result.Totals.TotalDeposit),
	}
	for i, c := range totals {
		pdf.CellFormat(widths[i], rowHeight, c, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(rowHeight)
}

func sniffImageType(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/png":
		return "PNG"
	case "image/jpeg":
		return "JPG"
	case "image/gif":
		return "GIF"
	default:
		return ""
	}
}
