package interview

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jonathan/hiring-assistant/internal/llm"
	"github.com/jonathan/hiring-assistant/internal/session"
	"github.com/jonathan/hiring-assistant/internal/types"
)

// Assistant runs the two user actions against a session.
type Assistant struct {
	generator *Generator
	evaluator *Evaluator
	logger    *slog.Logger
}

// NewAssistant creates an Assistant whose generator and evaluator share client.
func NewAssistant(client llm.Client, logger *slog.Logger) *Assistant {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "interview"))
	return &Assistant{
		generator: NewGenerator(client, logger),
		evaluator: NewEvaluator(client, logger),
		logger:    logger,
	}
}

// GenerateQuestions generates questions for profile and stores them in sess.
//
// An incomplete profile or a failed model call leaves sess untouched. An empty
// result still replaces the stored questions and is reported with ErrNoQuestions.
func (a *Assistant) GenerateQuestions(ctx context.Context, sess *session.Session, profile types.CandidateProfile) (types.QuestionSet, error) {
	questions, err := a.generator.Generate(ctx, profile)
	if err != nil && !errors.Is(err, ErrNoQuestions) {
		a.logFailure("question generation", sess, err)
		return nil, err
	}

	sess.SetProfile(profile)
	sess.SetQuestions(questions)
	return questions, err
}

// EvaluateAnswers evaluates the answers currently stored in sess.
func (a *Assistant) EvaluateAnswers(ctx context.Context, sess *session.Session) (string, error) {
	evaluation, err := a.evaluator.Evaluate(ctx, sess.Answers())
	if err != nil {
		a.logFailure("evaluation", sess, err)
		return "", err
	}
	return evaluation, nil
}

// Evaluate evaluates answers without a session, for scripted use.
func (a *Assistant) Evaluate(ctx context.Context, answers types.AnswerSet) (string, error) {
	return a.evaluator.Evaluate(ctx, answers)
}

// Generate generates questions without a session, for scripted use.
func (a *Assistant) Generate(ctx context.Context, profile types.CandidateProfile) (types.QuestionSet, error) {
	return a.generator.Generate(ctx, profile)
}

func (a *Assistant) logFailure(action string, sess *session.Session, err error) {
	attrs := []any{slog.String("action", action), slog.String("session_id", sess.ID()), slog.Any("error", err)}
	if IsWarning(err) {
		a.logger.Warn("action rejected", attrs...)
		return
	}
	a.logger.Error("action failed", attrs...)
}
