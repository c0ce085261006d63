package failure

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Stable machine-readable reason codes surfaced in the "error" field of every
// failure response.
const (
	CodeMissingFields         = "MISSING_FIELDS"
	CodeInvalidDate           = "INVALID_DATE"
	CodeCheckoutBeforeCheckin = "CHECKOUT_BEFORE_CHECKIN"
	CodeCheckinInPast         = "CHECKIN_IN_PAST"
	CodeValidationFailed      = "VALIDATION_FAILED"
	CodeQueryFailed           = "DB_QUERY_FAILED"
	CodeInsertFailed          = "DB_INSERT_FAILED"
	CodeInternalError         = "INTERNAL_ERROR"
)

// Failure is a wrapper for error messages carrying a standard HTTP response
// status and a stable reason code for the caller to match on.
type Failure struct {
	Status  int    `json:"-"`
	Code    string `json:"error"`
	Message string `json:"message"`
}

// Error returns the human-readable message.
func (e *Failure) Error() string {
	return e.Message
}

// MissingFields returns a validation Failure naming the required fields that
// were absent, in a deterministic order.
func MissingFields(fields []string) error {
	return &Failure{
		Status:  http.StatusBadRequest,
		Code:    CodeMissingFields,
		Message: fmt.Sprintf("required fields are missing: %s", strings.Join(fields, ", ")),
	}
}

// InvalidDate returns a validation Failure for a field that does not parse as
// a YYYY-MM-DD calendar date.
func InvalidDate(field string) error {
	return &Failure{
		Status:  http.StatusBadRequest,
		Code:    CodeInvalidDate,
		Message: fmt.Sprintf("%s must be a calendar date in YYYY-MM-DD format", field),
	}
}

// CheckoutBeforeCheckin returns a validation Failure for an inverted date range.
func CheckoutBeforeCheckin() error {
	return &Failure{
		Status:  http.StatusBadRequest,
		Code:    CodeCheckoutBeforeCheckin,
		Message: "checkout must be strictly after checkin",
	}
}

// CheckinInPast returns a validation Failure for a check-in date before today.
func CheckinInPast() error {
	return &Failure{
		Status:  http.StatusBadRequest,
		Code:    CodeCheckinInPast,
		Message: "checkin must not be before today",
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Status:  http.StatusBadRequest,
			Code:    CodeValidationFailed,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Status:  http.StatusBadRequest,
		Code:    CodeValidationFailed,
		Message: msg,
	}
}

// QueryFailed translates a datastore read error into a persistence Failure,
// keeping only the human-readable message for diagnostics.
func QueryFailed(err error) error {
	if err != nil {
		return &Failure{
			Status:  http.StatusInternalServerError,
			Code:    CodeQueryFailed,
			Message: err.Error(),
		}
	}

	return nil
}

// InsertFailed translates a datastore write error into a persistence Failure.
func InsertFailed(err error) error {
	if err != nil {
		return &Failure{
			Status:  http.StatusInternalServerError,
			Code:    CodeInsertFailed,
			Message: err.Error(),
		}
	}

	return nil
}

// InsertFailedFromString returns a persistence write Failure with message set from string.
func InsertFailedFromString(msg string) error {
	return &Failure{
		Status:  http.StatusInternalServerError,
		Code:    CodeInsertFailed,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Status:  http.StatusInternalServerError,
			Code:    CodeInternalError,
			Message: err.Error(),
		}
	}

	return nil
}

// GetStatus returns the HTTP status of an error interface.
func GetStatus(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Status
	}

	return http.StatusInternalServerError
}

// GetCode returns the stable reason code of an error interface.
func GetCode(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return CodeInternalError
}
