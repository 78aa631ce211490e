package interview

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoQuestions is returned when the model response held no numbered line.
// The caller still receives an empty QuestionSet.
var ErrNoQuestions = errors.New("no questions generated")

// APICallError represents a failed call to the model
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ValidationError is returned when an action is requested with input that cannot
// be sent to the model. Nothing is changed when it is returned.
type ValidationError struct {
	Field   string
	Message string
	// Fields lists every offending field when more than one failed.
	Fields []string
}

func (e *ValidationError) Error() string {
	switch {
	case len(e.Fields) > 1:
		return fmt.Sprintf("validation error in %s: %s", strings.Join(e.Fields, ", "), e.Message)
	case e.Field != "":
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	default:
		return fmt.Sprintf("validation error: %s", e.Message)
	}
}

// IsWarning reports whether err is recoverable and should be shown to the user as a
// warning instead of a failure.
func IsWarning(err error) bool {
	if err == nil {
		return false
	}
	var verr *ValidationError
	return errors.As(err, &verr) || errors.Is(err, ErrNoQuestions)
}
