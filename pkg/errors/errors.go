package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrInvalidInput          = errors.New("invalid schedule input")
	ErrInvalidStartDate      = errors.New("start date is not a valid date")
	ErrUnsupportedCurrency   = errors.New("currency is not supported")
	ErrExportFailed          = errors.New("schedule export failed")
	ErrLetterheadUnavailable = errors.New("letterhead asset unavailable")
	ErrCacheUnavailable      = errors.New("cache unavailable")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeInvalidInput          = "INVALID_INPUT"
	ErrCodeInvalidStartDate      = "INVALID_START_DATE"
	ErrCodeUnsupportedCurrency   = "UNSUPPORTED_CURRENCY"
	ErrCodeExportFailed          = "EXPORT_FAILED"
	ErrCodeLetterheadUnavailable = "LETTERHEAD_UNAVAILABLE"
	ErrCodeCacheError            = "CACHE_ERROR"
)

// Wrap common errors with business context
func WrapInvalidInput(field, reason string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidInput,
		fmt.Sprintf("field %s: %s", field, reason),
		ErrInvalidInput,
	)
}

func WrapInvalidStartDate(value string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidStartDate,
		fmt.Sprintf("start date %q is not a valid YYYY-MM-DD date", value),
		ErrInvalidStartDate,
	)
}

func WrapUnsupportedCurrency(currency string) *BusinessError {
	return NewBusinessError(
		ErrCodeUnsupportedCurrency,
		fmt.Sprintf("currency %q is not supported, use S/ or $", currency),
		ErrUnsupportedCurrency,
	)
}

func WrapExportError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeExportFailed,
		"could not render the schedule document",
		err,
	)
}

func WrapLetterheadUnavailable(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeLetterheadUnavailable,
		"letterhead image could not be fetched, export degrades to text letterhead",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"cache operation failed",
		err,
	)
}
