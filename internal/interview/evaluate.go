package interview

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonathan/hiring-assistant/internal/llm"
	"github.com/jonathan/hiring-assistant/internal/prompts"
	"github.com/jonathan/hiring-assistant/internal/types"
)

// Evaluator asks the model to assess a set of answers.
type Evaluator struct {
	client llm.Client
	logger *slog.Logger
}

// NewEvaluator creates an Evaluator backed by client.
func NewEvaluator(client llm.Client, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{client: client, logger: logger}
}

// Evaluate returns the model's assessment of answers verbatim. When every slot is
// blank it returns a *ValidationError and the model is not called.
func (e *Evaluator) Evaluate(ctx context.Context, answers types.AnswerSet) (string, error) {
	if answers.IsBlank() {
		return "", &ValidationError{
			Field:   "answers",
			Message: "please answer at least one question before evaluation",
		}
	}

	text, err := e.client.Complete(ctx, BuildEvaluationPrompt(answers))
	if err != nil {
		return "", &APICallError{Message: "failed to evaluate answers", Cause: err}
	}

	e.logger.Info("answers evaluated", slog.Int("response_bytes", len(text)))
	return text, nil
}

// BuildEvaluationPrompt renders the evaluation instructions with the answer block
// as the human turn.
func BuildEvaluationPrompt(answers types.AnswerSet) []llm.Instruction {
	tmpl := prompts.MustGet(promptFile, "evaluate-answers")
	return tmpl.Render(map[string]string{"Answers": FormatAnswers(answers)})
}

// FormatAnswers writes one "Q{n}: answer" line per non-empty slot, numbered by slot.
// Empty slots are skipped without a placeholder.
func FormatAnswers(answers types.AnswerSet) string {
	lines := make([]string, 0, len(answers))
	for i, answer := range answers {
		if answer == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("Q%d: %s", i+1, answer))
	}
	return strings.Join(lines, "\n")
}
