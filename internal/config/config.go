// Package config provides configuration loading and validation for the service and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values applied by MergeWithDefaults.
const (
	DefaultPort         = 8501
	DefaultModel        = "gemini-2.5-flash"
	DefaultTemperature  = 0.7
	DefaultModelTimeout = 2 * time.Minute
	DefaultSessionTTL   = 24 * time.Hour
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"

	// APIKeyEnv is the environment variable holding the Gemini API key.
	APIKeyEnv = "GEMINI_API_KEY"
)

// Duration is a time.Duration that reads and writes as a string such as "90s".
type Duration time.Duration

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText formats the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config represents the settings that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Port         int      `json:"port,omitempty" yaml:"port,omitempty"`
	Model        string   `json:"model,omitempty" yaml:"model,omitempty"`
	Temperature  float32  `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	ModelTimeout Duration `json:"model_timeout,omitempty" yaml:"model_timeout,omitempty"`
	SessionTTL   Duration `json:"session_ttl,omitempty" yaml:"session_ttl,omitempty"`
	APIKeyFile   string   `json:"api_key_file,omitempty" yaml:"api_key_file,omitempty"`
	LogLevel     string   `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	LogFormat    string   `json:"log_format,omitempty" yaml:"log_format,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:         DefaultPort,
		Model:        DefaultModel,
		Temperature:  DefaultTemperature,
		ModelTimeout: Duration(DefaultModelTimeout),
		SessionTTL:   Duration(DefaultSessionTTL),
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
	}
}

// LoadConfig loads configuration from a file. Files ending in .yaml or .yml are
// read as YAML, everything else as JSON.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Zero values are accepted since MergeWithDefaults fills them.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("config error: 'temperature' must be between 0 and 2")
	}
	if c.ModelTimeout < 0 {
		return fmt.Errorf("config error: 'model_timeout' must be non-negative")
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("config error: 'session_ttl' must be non-negative")
	}

	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("config error: 'log_format' must be text or json")
	}

	if c.APIKeyFile != "" {
		if _, err := os.Stat(c.APIKeyFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: api key file not found: %s", c.APIKeyFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Temperature == 0 {
		result.Temperature = defaults.Temperature
	}
	if result.ModelTimeout == 0 {
		result.ModelTimeout = defaults.ModelTimeout
	}
	if result.SessionTTL == 0 {
		result.SessionTTL = defaults.SessionTTL
	}
	if result.APIKeyFile == "" {
		result.APIKeyFile = defaults.APIKeyFile
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	return result
}

// ResolveAPIKey returns the API key from, in order of precedence, the flag value,
// the contents of keyFile (trimmed), and the GEMINI_API_KEY environment variable.
func ResolveAPIKey(flagValue, keyFile string) (string, error) {
	if key := strings.TrimSpace(flagValue); key != "" {
		return key, nil
	}

	if keyFile != "" {
		data, err := os.ReadFile(keyFile)
		if err != nil {
			return "", fmt.Errorf("failed to read API key file %s: %w", keyFile, err)
		}
		if key := strings.TrimSpace(string(data)); key != "" {
			return key, nil
		}
	}

	if key := strings.TrimSpace(os.Getenv(APIKeyEnv)); key != "" {
		return key, nil
	}

	return "", fmt.Errorf("API key is required (use --api-key, --api-key-file, or %s)", APIKeyEnv)
}
