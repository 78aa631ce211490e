// Package types provides the data model shared by the collector, the generator,
// the evaluator, and the HTTP and CLI surfaces.
package types

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxQuestions bounds the length of a QuestionSet.
	MaxQuestions = 5
	// AnswerSlots is the fixed length of an AnswerSet.
	AnswerSlots = 5
)

// CandidateProfile is the form input collected from the candidate.
type CandidateProfile struct {
	Name            string `json:"name" yaml:"name" validate:"notblank"`
	Email           string `json:"email" yaml:"email" validate:"notblank"`
	Phone           string `json:"phone" yaml:"phone" validate:"notblank"`
	ExperienceYears int    `json:"experience_years" yaml:"experience_years" validate:"gte=0"`
	DesiredPosition string `json:"desired_position" yaml:"desired_position" validate:"notblank"`
	Location        string `json:"location" yaml:"location" validate:"notblank"`
	SkillStack      string `json:"skill_stack" yaml:"skill_stack" validate:"notblank"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so messages match the form and the API.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}
	return v
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Validate checks that every field is non-empty after trimming. Email and phone
// formats are not checked.
func (p CandidateProfile) Validate() error {
	return validate.Struct(p)
}

// IsComplete reports whether generation may be requested for this profile.
func (p CandidateProfile) IsComplete() bool {
	return p.Validate() == nil
}

// MissingFields returns the JSON names of the fields that fail validation.
func (p CandidateProfile) MissingFields() []string {
	err := p.Validate()
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}

// Experience returns the years of experience in decimal form, as substituted into prompts.
func (p CandidateProfile) Experience() string {
	return strconv.Itoa(p.ExperienceYears)
}

// QuestionSet is the ordered list of generated questions, at most MaxQuestions long.
type QuestionSet []string

// AnswerSet holds one answer per question slot, index-aligned with QuestionSet.
type AnswerSet [AnswerSlots]string

// IsBlank reports whether every slot is empty after trimming.
func (a AnswerSet) IsBlank() bool {
	for _, answer := range a {
		if strings.TrimSpace(answer) != "" {
			return false
		}
	}
	return true
}
