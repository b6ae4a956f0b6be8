package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidAmountIsValidation(t *testing.T) {
	err := fmt.Errorf("%w: payment must be positive", ErrInvalidAmount)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrConflict)
}

func TestAppErrorMatching(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		target  error
		matches bool
	}{
		{"not found", NewNotFoundError("debt d1 not found"), ErrNotFound, true},
		{"conflict", NewConflictError("window already closed"), ErrConflict, true},
		{"validation", NewValidationError("same currency"), ErrValidation, true},
		{"5xx is internal", NewAppError(http.StatusInternalServerError, "query failed", errors.New("boom")), ErrInternal, true},
		{"4xx is not internal", NewNotFoundError("missing"), ErrInternal, false},
		{"conflict is not not found", NewConflictError("dup"), ErrNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, errors.Is(tt.err, tt.target))
		})
	}
}

func TestAppErrorMessage(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewAppError(http.StatusInternalServerError, "failed to commit transaction", cause)
	assert.Equal(t, "failed to commit transaction: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, "bare", (&AppError{Code: http.StatusBadRequest, Message: "bare"}).Error())
}
