package tellererror_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tellerhq/teller/internal/tellererror"
)

func TestNewTellerError(t *testing.T) {
	details := map[string]string{"account_id": "CHK123"}
	err := tellererror.NewTellerError(tellererror.ErrNotFound, "account not found", details)

	assert.Equal(t, tellererror.ErrNotFound, err.Code)
	assert.Equal(t, "account not found", err.Message)
	assert.Equal(t, details, err.Details)
	assert.Equal(t, "NOT_FOUND: account not found", err.Error())
}

func TestCodeOf(t *testing.T) {
	err := tellererror.NewTellerError(tellererror.ErrLimitExceeded, "over the cap", nil)

	code, ok := tellererror.CodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, tellererror.ErrLimitExceeded, code)

	_, ok = tellererror.CodeOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestMapErrorToMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "AuthFailed",
			err:      tellererror.NewTellerError(tellererror.ErrAuthFailed, "invalid username or PIN", nil),
			expected: "Authentication failed: check your username and PIN.",
		},
		{
			name:     "NotFound",
			err:      tellererror.NewTellerError(tellererror.ErrNotFound, "account not found", nil),
			expected: "Invalid account number!",
		},
		{
			name:     "InsufficientFunds",
			err:      tellererror.NewTellerError(tellererror.ErrInsufficientFunds, "insufficient funds", nil),
			expected: "Insufficient funds.",
		},
		{
			name:     "LimitExceeded",
			err:      tellererror.NewTellerError(tellererror.ErrLimitExceeded, "over the cap", nil),
			expected: "Exceeds savings withdrawal limit.",
		},
		{
			name:     "InvalidAmount",
			err:      tellererror.NewTellerError(tellererror.ErrInvalidAmount, "negative amount", nil),
			expected: "Amount must be a positive number.",
		},
		{
			name:     "Unknown Error",
			err:      errors.New("unknown error"),
			expected: "Something went wrong. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tellererror.MapErrorToMessage(tt.err))
		})
	}
}
