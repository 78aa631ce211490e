// Package server provides the HTTP page and JSON API for the hiring assistant.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/hiring-assistant/internal/interview"
	"github.com/jonathan/hiring-assistant/internal/session"
)

// ErrValidation indicates a malformed request
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var reqErr *ErrValidation
	var inputErr *interview.ValidationError
	var apiErr *interview.APICallError

	switch {
	case err == nil, errors.Is(err, interview.ErrNoQuestions):
		return http.StatusOK
	case errors.As(err, &reqErr), errors.Is(err, session.ErrAnswerIndex):
		return http.StatusBadRequest
	case errors.As(err, &inputErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
