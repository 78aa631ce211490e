// Package llm provides the model configuration and the client abstraction used to
// talk to the hosted language model.
package llm

import "time"

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds the model configuration for the application
type Config struct {
	Provider    Provider
	Model       string
	Temperature float32
	// Timeout bounds a single model call. Zero means the caller's context decides.
	Timeout time.Duration
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       DefaultModel,
		Temperature: 0.7,
		Timeout:     2 * time.Minute,
	}
}

// WithModel returns a copy of the Config using model. An empty model keeps the current one.
func (c *Config) WithModel(model string) *Config {
	newConfig := *c
	if model != "" {
		newConfig.Model = model
	}
	return &newConfig
}

// WithTemperature returns a copy of the Config using temperature.
func (c *Config) WithTemperature(temperature float32) *Config {
	newConfig := *c
	newConfig.Temperature = temperature
	return &newConfig
}
