package tellererror

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrAuthFailed        ErrorCode = "AUTH_FAILED"
	ErrNotFound          ErrorCode = "NOT_FOUND"
	ErrInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	ErrLimitExceeded     ErrorCode = "LIMIT_EXCEEDED"
	ErrInvalidAmount     ErrorCode = "INVALID_AMOUNT"
)

type TellerError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e TellerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewTellerError(code ErrorCode, message string, details interface{}) TellerError {
	return TellerError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// CodeOf extracts the error code carried by err, if any. Callers use it to
// dispatch on failure kind without matching message text.
func CodeOf(err error) (ErrorCode, bool) {
	var te TellerError
	if errors.As(err, &te) {
		return te.Code, true
	}
	return "", false
}

// MapErrorToMessage maps a failed core operation to the line shown at the
// terminal. Unrecognized errors get a generic message.
func MapErrorToMessage(err error) string {
	code, ok := CodeOf(err)
	if !ok {
		return "Something went wrong. Please try again."
	}
	switch code {
	case ErrAuthFailed:
		return "Authentication failed: check your username and PIN."
	case ErrNotFound:
		return "Invalid account number!"
	case ErrInsufficientFunds:
		return "Insufficient funds."
	case ErrLimitExceeded:
		return "Exceeds savings withdrawal limit."
	case ErrInvalidAmount:
		return "Amount must be a positive number."
	default:
		return "Something went wrong. Please try again."
	}
}
