package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tasatop/schedule-engine/internal/domain"
	"github.com/tasatop/schedule-engine/internal/export"
	"github.com/tasatop/schedule-engine/internal/render"
	"github.com/tasatop/schedule-engine/internal/service"
	"github.com/tasatop/schedule-engine/pkg/dates"
	customError "github.com/tasatop/schedule-engine/pkg/errors"
	"github.com/tasatop/schedule-engine/pkg/response"
)

type ScheduleHandler struct {
	service   *service.ScheduleService
	exporter  *export.Exporter
	validator *validator.Validate
	logger    *zap.Logger
}

func NewScheduleHandler(service *service.ScheduleService, exporter *export.Exporter, logger *zap.Logger) *ScheduleHandler {
	if logger == nil {
		logger = zap.NewNop()
	}

	v := validator.New()
	// Report violations under the JSON field names the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("decimal_gt0", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.GreaterThan(decimal.Zero)
	})

	return &ScheduleHandler{
		service:   service,
		exporter:  exporter,
		validator: v,
		logger:    logger,
	}
}

// Generate computes a schedule for the posted request.
func (h *ScheduleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	input, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	result := h.service.Generate(r.Context(), input)

	response.Success(w, domain.GenerateScheduleResponse{
		Summary:  buildSummary(input, result),
		Schedule: result,
	})
}

// Export renders the schedule as a PDF attachment.
func (h *ScheduleHandler) Export(w http.ResponseWriter, r *http.Request) {
	input, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	result := h.service.Generate(r.Context(), input)

	data, filename, err := h.exporter.Export(r.Context(), input, result, time.Now())
	if err != nil {
		h.logger.Error("schedule export failed", zap.Error(err))
		response.InternalServerError(w, "could not render the schedule document", err)
		return
	}

	response.PDF(w, filename, data)
}

// parseRequest decodes, validates and converts the wire request.
// On failure it writes the error response and returns ok=false.
func (h *ScheduleHandler) parseRequest(w http.ResponseWriter, r *http.Request) (domain.ScheduleInput, bool) {
	var req domain.GenerateScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return domain.ScheduleInput{}, false
	}

	// Empty first-payment policy keeps the legacy default.
	if strings.TrimSpace(req.FirstPaymentOption) == "" {
		req.FirstPaymentOption = domain.DefaultFirstPaymentOption
	}

	if err := h.validator.Struct(req); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			fields := make([]string, 0, len(fieldErrors))
			for _, fe := range fieldErrors {
				fields = append(fields, fieldMessage(fe))
			}
			response.ValidationError(w, "request validation failed", fields)
		} else {
			response.BadRequest(w, "request validation failed", err)
		}
		return domain.ScheduleInput{}, false
	}

	startDate, err := dates.Parse(req.StartDate)
	if err != nil {
		berr := customError.WrapInvalidStartDate(req.StartDate)
		response.ValidationError(w, berr.Message, []string{"start_date: must be a valid YYYY-MM-DD date"})
		return domain.ScheduleInput{}, false
	}

	input := domain.ScheduleInput{
		StartDate: startDate,
		Principal: req.Amount.InexactFloat64(),
		Currency:  strings.TrimSpace(req.Currency),
		// The wire carries percent, the engine takes the fraction.
		AnnualEffectiveRate: req.AnnualRatePercent.InexactFloat64() / 100,
		TermMonths:          req.TermMonths,
		Product:             strings.TrimSpace(req.Product),
		InterestFrequency:   strings.TrimSpace(req.InterestFrequency),
		CapitalFrequency:    strings.TrimSpace(req.CapitalFrequency),
		FirstPaymentOption:  strings.TrimSpace(req.FirstPaymentOption),
	}
	return input, true
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", fe.Field())
	case "decimal_gt0":
		return fmt.Sprintf("%s: must be greater than 0", fe.Field())
	case "gt":
		return fmt.Sprintf("%s: must be greater than %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s: must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s: is invalid", fe.Field())
	}
}

func buildSummary(input domain.ScheduleInput, result *domain.ScheduleResult) domain.ScheduleSummary {
	return domain.ScheduleSummary{
		Rate:               render.RatePercent(input.AnnualEffectiveRate),
		RateType:           "Tasa Efectiva Anual",
		Amount:             render.Money(input.Currency, input.Principal),
		Product:            input.Product,
		TermMonths:         input.TermMonths,
		InterestFrequency:  input.InterestFrequency,
		CapitalFrequency:   input.CapitalFrequency,
		FirstPaymentOption: input.FirstPaymentOption,
		PayDay:             result.Meta.PayDay,
	}
}
