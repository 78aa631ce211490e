// Package interview generates interview questions for a candidate profile and
// evaluates the candidate's answers using a remote model.
package interview

import (
	"context"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/hiring-assistant/internal/llm"
	"github.com/jonathan/hiring-assistant/internal/prompts"
	"github.com/jonathan/hiring-assistant/internal/types"
)

const promptFile = "interview.json"

// Generator asks the model for interview questions.
type Generator struct {
	client llm.Client
	logger *slog.Logger
}

// NewGenerator creates a Generator backed by client.
func NewGenerator(client llm.Client, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{client: client, logger: logger}
}

// Generate returns up to five questions tailored to profile. An incomplete profile
// yields a *ValidationError without contacting the model. A response with no
// numbered line yields an empty set together with ErrNoQuestions.
func (g *Generator) Generate(ctx context.Context, profile types.CandidateProfile) (types.QuestionSet, error) {
	if missing := profile.MissingFields(); len(missing) > 0 {
		return nil, IncompleteProfileError(missing)
	}

	instructions := BuildQuestionPrompt(profile)
	text, err := g.client.Complete(ctx, instructions)
	if err != nil {
		return nil, &APICallError{Message: "failed to generate questions", Cause: err}
	}

	questions := ParseQuestions(text)
	if len(questions) == 0 {
		g.logger.Warn("model returned no numbered questions",
			slog.String("position", profile.DesiredPosition),
			slog.Int("response_bytes", len(text)))
		return questions, ErrNoQuestions
	}

	g.logger.Info("questions generated",
		slog.String("position", profile.DesiredPosition),
		slog.Int("count", len(questions)))
	return questions, nil
}

// BuildQuestionPrompt renders the question-generation instructions for profile.
func BuildQuestionPrompt(profile types.CandidateProfile) []llm.Instruction {
	tmpl := prompts.MustGet(promptFile, "generate-questions")
	return tmpl.Render(map[string]string{
		"Position":   profile.DesiredPosition,
		"Skill":      profile.SkillStack,
		"Experience": profile.Experience(),
	})
}

// ParseQuestions keeps the trimmed lines of text that start with a decimal digit,
// in order, up to MaxQuestions. Bulleted or lettered lines are dropped.
func ParseQuestions(text string) types.QuestionSet {
	questions := types.QuestionSet{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(line)
		if !unicode.IsDigit(first) {
			continue
		}
		questions = append(questions, line)
		if len(questions) == types.MaxQuestions {
			break
		}
	}
	return questions
}

// IncompleteProfileError reports the profile fields that still need a value.
func IncompleteProfileError(missing []string) *ValidationError {
	return &ValidationError{
		Field:   missing[0],
		Fields:  missing,
		Message: "please fill in all fields before generating questions",
	}
}
