package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"port": 9000,
		"model": "gemini-2.5-pro",
		"temperature": 0.2,
		"model_timeout": "45s",
		"session_ttl": "2h",
		"log_level": "debug",
		"log_format": "json"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.InDelta(t, 0.2, cfg.Temperature, 1e-6)
	assert.Equal(t, 45*time.Second, cfg.ModelTimeout.Std())
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL.Std())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "port: 8600\nmodel: gemini-2.5-flash\nsession_ttl: 30m\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8600, cfg.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL.Std())
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{ invalid json }`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeFile(t, "config.yml", "port: [not a number")

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	path := writeFile(t, "config.json", `{"session_ttl": "forever"}`)

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "invalid duration")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "zero config", cfg: Config{}},
		{name: "defaults", cfg: Defaults()},
		{name: "negative port", cfg: Config{Port: -1}, wantErr: "'port'"},
		{name: "port too large", cfg: Config{Port: 70000}, wantErr: "'port'"},
		{name: "temperature too high", cfg: Config{Temperature: 3}, wantErr: "'temperature'"},
		{name: "negative timeout", cfg: Config{ModelTimeout: Duration(-time.Second)}, wantErr: "'model_timeout'"},
		{name: "negative ttl", cfg: Config{SessionTTL: Duration(-time.Second)}, wantErr: "'session_ttl'"},
		{name: "bad log format", cfg: Config{LogFormat: "xml"}, wantErr: "'log_format'"},
		{name: "missing key file", cfg: Config{APIKeyFile: "/nonexistent/key"}, wantErr: "api key file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9000, LogFormat: "json"}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "json", merged.LogFormat)
	assert.Equal(t, DefaultModel, merged.Model)
	assert.InDelta(t, DefaultTemperature, merged.Temperature, 1e-6)
	assert.Equal(t, DefaultModelTimeout, merged.ModelTimeout.Std())
	assert.Equal(t, DefaultSessionTTL, merged.SessionTTL.Std())
	assert.Equal(t, DefaultLogLevel, merged.LogLevel)

	// original untouched
	assert.Empty(t, cfg.Model)
}

func TestDuration_MarshalText(t *testing.T) {
	text, err := Duration(90 * time.Second).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(text))
}

func TestResolveAPIKey(t *testing.T) {
	keyFile := writeFile(t, "key.txt", "  file-key\n")
	emptyFile := writeFile(t, "empty.txt", "\n")

	tests := []struct {
		name    string
		flag    string
		file    string
		env     string
		want    string
		wantErr bool
	}{
		{name: "flag wins", flag: "flag-key", file: keyFile, env: "env-key", want: "flag-key"},
		{name: "file over env", file: keyFile, env: "env-key", want: "file-key"},
		{name: "env fallback", env: "env-key", want: "env-key"},
		{name: "empty file falls back to env", file: emptyFile, env: "env-key", want: "env-key"},
		{name: "nothing set", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(APIKeyEnv, tt.env)

			got, err := ResolveAPIKey(tt.flag, tt.file)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAPIKey_UnreadableFile(t *testing.T) {
	t.Setenv(APIKeyEnv, "env-key")

	_, err := ResolveAPIKey("", "/nonexistent/key.txt")
	assert.ErrorContains(t, err, "failed to read API key file")
}
