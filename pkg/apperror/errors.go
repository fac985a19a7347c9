package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Security & Authentication (SEC/AUTH) ----

func ErrInvalidCallbackKey() *AppError {
	return New("SEC_001", "Invalid callback api key", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Reconciliation (REC) ----

func ErrMissingReference() *AppError {
	return New("REC_001", "Missing external reference", http.StatusBadRequest)
}

func ErrShopNotFound(shopID string) *AppError {
	return New("REC_002", fmt.Sprintf("Shop %s not found", shopID), http.StatusInternalServerError)
}

// ---- Channel Activation (CHN) ----

func ErrMissingActivationField(field string) *AppError {
	return New("CHN_001", fmt.Sprintf("Missing required field: %s", field), http.StatusBadRequest)
}

func ErrAggregatorNotConfigured() *AppError {
	return New("CHN_002", "Aggregator credentials not configured", http.StatusPreconditionFailed)
}

// ---- Upstream / Aggregator (UPS) ----

func ErrAggregatorFailure(message string, err error) *AppError {
	return Wrap("UPS_001", message, http.StatusInternalServerError, err)
}

func ErrMissingChannelID() *AppError {
	return New("UPS_002", "Aggregator response missing channel id", http.StatusInternalServerError)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a REC_001-style validation error.
func Validation(message string) *AppError {
	return New("REC_001", message, http.StatusBadRequest)
}
