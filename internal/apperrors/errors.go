package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidNumericInput indicates that the value to convert is not a finite number.
// Callers suppress output instead of surfacing this error.
var ErrInvalidNumericInput = errors.New("invalid numeric input")

// ErrUnknownUnit indicates that a unit code does not belong to the category's table.
var ErrUnknownUnit = errors.New("unknown unit")

// ErrUnknownCategory indicates that a category name is not one of the supported categories.
var ErrUnknownCategory = errors.New("unknown category")

// ErrRateFetchFailure indicates that the remote exchange-rate API could not provide rates.
var ErrRateFetchFailure = errors.New("exchange rate fetch failed")

// AppError carries an HTTP status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates a 400 AppError wrapping ErrValidation.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// StatusCode maps an error to the HTTP status the handlers respond with.
// ErrNotFound wins over the 400 sentinels it may wrap.
func StatusCode(err error) int {
	var appErr *AppError
	switch {
	case errors.As(err, &appErr):
		return appErr.Code
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnknownUnit), errors.Is(err, ErrUnknownCategory),
		errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidNumericInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrRateFetchFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
