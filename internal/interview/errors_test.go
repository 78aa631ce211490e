package interview

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPICallError(t *testing.T) {
	cause := errors.New("boom")
	err := &APICallError{Message: "failed to evaluate answers", Cause: cause}

	assert.Equal(t, "API call failed: failed to evaluate answers: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "API call failed: no key", (&APICallError{Message: "no key"}).Error())
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{"message only", &ValidationError{Message: "bad"}, "validation error: bad"},
		{"single field", &ValidationError{Field: "email", Message: "required"}, "validation error in email: required"},
		{"many fields", &ValidationError{Field: "name", Fields: []string{"name", "phone"}, Message: "required"}, "validation error in name, phone: required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsWarning(t *testing.T) {
	assert.False(t, IsWarning(nil))
	assert.True(t, IsWarning(ErrNoQuestions))
	assert.True(t, IsWarning(fmt.Errorf("wrapped: %w", ErrNoQuestions)))
	assert.True(t, IsWarning(&ValidationError{Message: "x"}))
	assert.False(t, IsWarning(&APICallError{Message: "x"}))
	assert.False(t, IsWarning(errors.New("other")))
}
