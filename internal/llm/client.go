package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Role tags an instruction as behavioral framing or as the user turn.
type Role string

// Instruction roles understood by every Client.
const (
	RoleSystem Role = "system"
	RoleHuman  Role = "human"
)

// Instruction is one role-tagged unit of prompt content.
type Instruction struct {
	Role    Role
	Content string
}

// System returns a system-role instruction.
func System(content string) Instruction {
	return Instruction{Role: RoleSystem, Content: content}
}

// Human returns a human-role instruction.
func Human(content string) Instruction {
	return Instruction{Role: RoleHuman, Content: content}
}

// ErrNoHumanInstruction is returned when a request carries no user turn.
var ErrNoHumanInstruction = errors.New("at least one human instruction is required")

// Client is an abstraction over LLM providers
type Client interface {
	// Complete submits the ordered instructions and returns the text completion.
	Complete(ctx context.Context, instructions []Instruction) (string, error)
	// Model returns the provider model name used for completions
	Model() string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported provider %q", config.Provider)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
	logger *slog.Logger
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
		logger: slog.Default().With(slog.String("component", "llm")),
	}, nil
}

// Complete maps system instructions onto the model's system instruction and sends
// the human instructions, in order, as the user content.
func (c *GeminiClient) Complete(ctx context.Context, instructions []Instruction) (string, error) {
	system, parts := splitInstructions(instructions)
	if len(parts) == 0 {
		return "", ErrNoHumanInstruction
	}

	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(c.config.Temperature)
	if system != nil {
		model.SystemInstruction = system
	}

	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		c.logger.Error("model call failed",
			slog.String("model", c.config.Model),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err))
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	c.logger.Debug("model call completed",
		slog.String("model", c.config.Model),
		slog.Int("instructions", len(instructions)),
		slog.Duration("elapsed", time.Since(start)))

	return extractTextFromResponse(resp)
}

// Model returns the configured model name
func (c *GeminiClient) Model() string {
	return c.config.Model
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// splitInstructions folds system instructions into one system Content and turns
// human instructions into ordered text parts.
func splitInstructions(instructions []Instruction) (*genai.Content, []genai.Part) {
	var systemParts []genai.Part
	var parts []genai.Part
	for _, ins := range instructions {
		switch ins.Role {
		case RoleSystem:
			systemParts = append(systemParts, genai.Text(ins.Content))
		default:
			parts = append(parts, genai.Text(ins.Content))
		}
	}

	if len(systemParts) == 0 {
		return nil, parts
	}
	return &genai.Content{Parts: systemParts}, parts
}

// extractTextFromResponse extracts text from Gemini API response.
// A candidate without text parts yields an empty string rather than an error.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", nil
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	return strings.Join(parts, ""), nil
}
