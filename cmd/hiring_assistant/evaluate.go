package main

import (
	"fmt"

	"github.com/jonathan/hiring-assistant/internal/interview"
	"github.com/jonathan/hiring-assistant/internal/observability"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a candidate's answers",
	Long:  "Evaluate up to five answers, read from a JSON array file in question order, and print the assessment.",
	RunE:  runEvaluate,
}

var (
	evaluateAnswersFile string
	evaluateOutputFile  string
)

// evaluationOutput is the JSON written by --out.
type evaluationOutput struct {
	Evaluation string `json:"evaluation"`
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateAnswersFile, "answers", "a", "", "Path to JSON array of answers (required)")
	evaluateCmd.Flags().StringVarP(&evaluateOutputFile, "out", "o", "", "Path to output JSON file")
	_ = evaluateCmd.MarkFlagRequired("answers")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	answers, err := readAnswers(evaluateAnswersFile)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if answers.IsBlank() {
		printer.PrintWarning("Please answer at least one question before evaluation.")
		return nil
	}

	ctx := cmd.Context()
	client, err := newClient(ctx, settings)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	assistant := interview.NewAssistant(client, logger)
	evaluation, err := assistant.Evaluate(ctx, answers)
	if err != nil {
		return fmt.Errorf("failed to evaluate answers: %w", err)
	}

	printer.PrintEvaluation(evaluation)
	return writeJSON(evaluateOutputFile, evaluationOutput{Evaluation: evaluation})
}
