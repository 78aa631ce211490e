package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/hiring-assistant/internal/config"
	"github.com/jonathan/hiring-assistant/internal/llm"
	"github.com/jonathan/hiring-assistant/internal/schemas"
	"github.com/jonathan/hiring-assistant/internal/types"
)

// newLLMClient is swapped in tests.
var newLLMClient = func(ctx context.Context, cfg *llm.Config, apiKey string) (llm.Client, error) {
	return llm.NewClient(ctx, cfg, apiKey)
}

// loadSettings merges the config file, built-in defaults, and flags. Flags win.
func loadSettings() (config.Config, error) {
	fileCfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = loaded
	}

	if apiKeyFile != "" {
		fileCfg.APIKeyFile = apiKeyFile
	}
	if modelFlag != "" {
		fileCfg.Model = modelFlag
	}
	if logLevel != "" {
		fileCfg.LogLevel = logLevel
	}
	if logFormat != "" {
		fileCfg.LogFormat = logFormat
	}

	if err := fileCfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return fileCfg.MergeWithDefaults(config.Defaults()), nil
}

// newClient builds the model client from the merged settings.
func newClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	apiKey, err := config.ResolveAPIKey(apiKeyFlag, cfg.APIKeyFile)
	if err != nil {
		return nil, err
	}

	llmCfg := llm.DefaultConfig().WithModel(cfg.Model).WithTemperature(cfg.Temperature)
	llmCfg.Timeout = cfg.ModelTimeout.Std()

	client, err := newLLMClient(ctx, llmCfg, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}

// readProfile loads a candidate profile file after checking it against the profile schema.
func readProfile(path string) (types.CandidateProfile, error) {
	if err := schemas.ValidateFile(schemas.CandidateProfile, path); err != nil {
		return types.CandidateProfile{}, fmt.Errorf("invalid profile file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.CandidateProfile{}, fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return types.CandidateProfile{}, fmt.Errorf("failed to parse profile file: %w", err)
	}
	return profile, nil
}

// readAnswers loads a JSON array of at most five answers into the fixed slots.
func readAnswers(path string) (types.AnswerSet, error) {
	var answers types.AnswerSet
	if err := schemas.ValidateFile(schemas.Answers, path); err != nil {
		return answers, fmt.Errorf("invalid answers file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return answers, fmt.Errorf("failed to read answers file: %w", err)
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return answers, fmt.Errorf("failed to parse answers file: %w", err)
	}
	copy(answers[:], list)
	return answers, nil
}

// writeJSON writes v as indented JSON to path. An empty path is a no-op.
func writeJSON(path string, v any) error {
	if path == "" {
		return nil
	}
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
