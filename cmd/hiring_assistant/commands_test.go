package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/hiring-assistant/internal/llm/llmtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestQuestionsCommand(t *testing.T) {
	resetGlobals(t)
	stub := llmtest.NewStub("1. What is a window function?\n2. Explain ETL idempotency")
	useStubClient(t, stub)

	profile := writeTemp(t, "profile.json", profileFixture)
	outPath := filepath.Join(t.TempDir(), "questions.json")

	output, err := execute(t, "questions", "--api-key", "k", "--log-level", "error", "--profile", profile, "--out", outPath)
	require.NoError(t, err)

	assert.Contains(t, output, "INTERVIEW QUESTIONS")
	assert.Contains(t, output, "Q1: 1. What is a window function?")
	assert.Equal(t, 1, stub.CallCount())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var written questionsOutput
	require.NoError(t, json.Unmarshal(data, &written))
	assert.Len(t, written.Questions, 2)
	assert.Equal(t, "Data Engineer", written.Profile.DesiredPosition)
}

func TestQuestionsCommand_NoQuestions(t *testing.T) {
	resetGlobals(t)
	useStubClient(t, llmtest.NewStub("Sorry."))

	profile := writeTemp(t, "profile.json", profileFixture)
	outPath := filepath.Join(t.TempDir(), "questions.json")

	output, err := execute(t, "questions", "--api-key", "k", "--log-level", "error", "--profile", profile, "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, output, "WARNING")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var written questionsOutput
	require.NoError(t, json.Unmarshal(data, &written))
	assert.Empty(t, written.Questions)
	assert.Equal(t, "no questions generated", written.Warning)
}

func TestQuestionsCommand_BlankField(t *testing.T) {
	resetGlobals(t)
	stub := llmtest.NewStub("1. unused")
	useStubClient(t, stub)

	profile := writeTemp(t, "profile.json", `{
		"name": "Ada", "email": "a@b.c", "phone": "1", "experience_years": 1,
		"desired_position": "  ", "location": "x", "skill_stack": "y"
	}`)

	output, err := execute(t, "questions", "--api-key", "k", "--log-level", "error", "--profile", profile)
	require.NoError(t, err)
	assert.Contains(t, output, "desired_position")
	assert.Equal(t, 0, stub.CallCount())
}

func TestQuestionsCommand_EmptyOrMissingField(t *testing.T) {
	profiles := map[string]string{
		"empty name": `{
			"name": "", "email": "a@b.c", "phone": "1", "experience_years": 1,
			"desired_position": "SRE", "location": "x", "skill_stack": "y"
		}`,
		"missing skill stack": `{
			"name": "Ada", "email": "a@b.c", "phone": "1", "experience_years": 1,
			"desired_position": "SRE", "location": "x"
		}`,
	}

	for name, doc := range profiles {
		t.Run(name, func(t *testing.T) {
			resetGlobals(t)
			stub := llmtest.NewStub("1. unused")
			useStubClient(t, stub)

			profile := writeTemp(t, "profile.json", doc)

			output, err := execute(t, "questions", "--api-key", "k", "--log-level", "error", "--profile", profile)
			require.NoError(t, err)
			assert.Contains(t, output, "WARNING")
			assert.Equal(t, 0, stub.CallCount())
		})
	}
}

func TestQuestionsCommand_IncompleteWithoutAPIKey(t *testing.T) {
	resetGlobals(t)
	t.Setenv("GEMINI_API_KEY", "")
	stub := llmtest.NewStub("1. unused")
	useStubClient(t, stub)

	profile := writeTemp(t, "profile.json", `{
		"name": "", "email": "a@b.c", "phone": "1", "experience_years": 1,
		"desired_position": "SRE", "location": "x", "skill_stack": "y"
	}`)

	output, err := execute(t, "questions", "--log-level", "error", "--profile", profile)
	require.NoError(t, err)
	assert.Contains(t, output, "name")
	assert.Equal(t, 0, stub.CallCount())
}

func TestQuestionsCommand_ModelFailure(t *testing.T) {
	resetGlobals(t)
	useStubClient(t, &llmtest.Stub{Err: errors.New("unavailable")})

	profile := writeTemp(t, "profile.json", profileFixture)

	_, err := execute(t, "questions", "--api-key", "k", "--log-level", "error", "--profile", profile)
	assert.ErrorContains(t, err, "unavailable")
}

func TestEvaluateCommand(t *testing.T) {
	resetGlobals(t)
	stub := llmtest.NewStub("Strong fundamentals.")
	useStubClient(t, stub)

	answers := writeTemp(t, "answers.json", `["A1", "", "A3"]`)
	outPath := filepath.Join(t.TempDir(), "evaluation.json")

	output, err := execute(t, "evaluate", "--api-key", "k", "--log-level", "error", "--answers", answers, "--out", outPath)
	require.NoError(t, err)

	assert.Contains(t, output, "EVALUATION")
	assert.Contains(t, output, "Strong fundamentals.")
	assert.Equal(t, "Q1: A1\nQ3: A3", stub.LastCall()[1].Content)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Strong fundamentals.")
}

func TestEvaluateCommand_BlankAnswers(t *testing.T) {
	resetGlobals(t)
	stub := llmtest.NewStub("unused")
	useStubClient(t, stub)

	answers := writeTemp(t, "answers.json", `["", "  "]`)

	output, err := execute(t, "evaluate", "--log-level", "error", "--answers", answers)
	require.NoError(t, err)
	assert.Contains(t, output, "WARNING")
	assert.Equal(t, 0, stub.CallCount())
}
