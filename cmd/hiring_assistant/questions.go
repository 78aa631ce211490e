package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/hiring-assistant/internal/interview"
	"github.com/jonathan/hiring-assistant/internal/observability"
	"github.com/jonathan/hiring-assistant/internal/types"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate interview questions for a candidate profile",
	Long:  "Generate 3 to 5 interview questions for the candidate described in a profile JSON file.",
	RunE:  runQuestions,
}

var (
	questionsProfileFile string
	questionsOutputFile  string
)

// questionsOutput is the JSON written by --out.
type questionsOutput struct {
	Profile   types.CandidateProfile `json:"profile"`
	Questions types.QuestionSet      `json:"questions"`
	Warning   string                 `json:"warning,omitempty"`
}

func init() {
	questionsCmd.Flags().StringVarP(&questionsProfileFile, "profile", "p", "", "Path to candidate profile JSON file (required)")
	questionsCmd.Flags().StringVarP(&questionsOutputFile, "out", "o", "", "Path to output JSON file")
	_ = questionsCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	profile, err := readProfile(questionsProfileFile)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintProfile(profile)

	if missing := profile.MissingFields(); len(missing) > 0 {
		printer.PrintWarning(interview.IncompleteProfileError(missing).Error())
		return nil
	}

	ctx := cmd.Context()
	client, err := newClient(ctx, settings)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	assistant := interview.NewAssistant(client, logger)
	questions, err := assistant.Generate(ctx, profile)

	out := questionsOutput{Profile: profile, Questions: questions}
	switch {
	case err == nil:
		printer.PrintQuestions(questions)
	case errors.Is(err, interview.ErrNoQuestions):
		out.Questions = types.QuestionSet{}
		out.Warning = err.Error()
		printer.PrintWarning("No questions were generated. Try again or adjust the profile.")
	case interview.IsWarning(err):
		printer.PrintWarning(err.Error())
		return nil
	default:
		return fmt.Errorf("failed to generate questions: %w", err)
	}

	return writeJSON(questionsOutputFile, out)
}
