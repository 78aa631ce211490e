package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/hiring-assistant/internal/interview"
	"github.com/jonathan/hiring-assistant/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "index", Message: "must be a number"}
	assert.Equal(t, "validation error: index - must be a number", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil",
			err:      nil,
			expected: http.StatusOK,
		},
		{
			name:     "no questions",
			err:      interview.ErrNoQuestions,
			expected: http.StatusOK,
		},
		{
			name:     "malformed request",
			err:      &ErrValidation{Field: "body", Message: "invalid JSON"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "answer index",
			err:      fmt.Errorf("%w: 7", session.ErrAnswerIndex),
			expected: http.StatusBadRequest,
		},
		{
			name:     "incomplete profile",
			err:      &interview.ValidationError{Field: "name", Message: "required"},
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "model failure",
			err:      &interview.APICallError{Message: "failed", Cause: errors.New("boom")},
			expected: http.StatusBadGateway,
		},
		{
			name:     "model timeout",
			err:      &interview.APICallError{Message: "failed", Cause: context.DeadlineExceeded},
			expected: http.StatusGatewayTimeout,
		},
		{
			name:     "unknown",
			err:      errors.New("unexpected"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
