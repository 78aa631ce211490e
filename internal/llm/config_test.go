package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, DefaultModel, config.Model)
	assert.InDelta(t, 0.7, config.Temperature, 0.0001)
	assert.Equal(t, 2*time.Minute, config.Timeout)
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	newConfig := config.WithModel("gemini-2.5-pro")

	// Original should be unchanged
	assert.Equal(t, DefaultModel, config.Model)
	assert.Equal(t, "gemini-2.5-pro", newConfig.Model)
	assert.Equal(t, config.Temperature, newConfig.Temperature)
}

func TestWithModel_EmptyKeepsCurrent(t *testing.T) {
	config := DefaultConfig().WithModel("")
	assert.Equal(t, DefaultModel, config.Model)
}

func TestWithTemperature(t *testing.T) {
	config := DefaultConfig()
	newConfig := config.WithTemperature(0.2)

	assert.InDelta(t, 0.7, config.Temperature, 0.0001)
	assert.InDelta(t, 0.2, newConfig.Temperature, 0.0001)
}

func TestProviderConstants(t *testing.T) {
	assert.Equal(t, Provider("gemini"), ProviderGemini)
}
