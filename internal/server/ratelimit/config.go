package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)

	// ModelCall marks endpoints that call the model; RATE_LIMIT_MODEL_LIMIT overrides their Limit.
	ModelCall bool
}

// LoadConfig loads rate limiting configuration from RATE_LIMIT_* environment variables.
func LoadConfig() *Config {
	if !envValue("RATE_LIMIT_ENABLED", true, strconv.ParseBool) {
		return &Config{Enabled: false}
	}

	cfg := &Config{
		Enabled:         true,
		DefaultLimit:    envValue("RATE_LIMIT_DEFAULT_LIMIT", 1000, strconv.Atoi),
		DefaultWindow:   envValue("RATE_LIMIT_DEFAULT_WINDOW", time.Minute, time.ParseDuration),
		CleanupInterval: envValue("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute, time.ParseDuration),
		Whitelist:       parseIPList(envValue("RATE_LIMIT_WHITELIST", "", parseString)),
		Blacklist:       parseIPList(envValue("RATE_LIMIT_BLACKLIST", "", parseString)),
		EndpointConfigs: DefaultEndpointConfigs(),
	}

	if modelLimit := envValue("RATE_LIMIT_MODEL_LIMIT", 0, strconv.Atoi); modelLimit > 0 {
		for i := range cfg.EndpointConfigs {
			if cfg.EndpointConfigs[i].ModelCall {
				cfg.EndpointConfigs[i].Limit = modelLimit
			}
		}
	}

	return cfg
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: model calls (strictest limits)
		{Path: "/questions", Method: "POST", Limit: 60, Window: time.Hour, Burst: 5, ModelCall: true},
		{Path: "/evaluation", Method: "POST", Limit: 60, Window: time.Hour, Burst: 5, ModelCall: true},
		{Path: "/api/v1/questions", Method: "POST", Limit: 60, Window: time.Hour, Burst: 5, ModelCall: true},
		{Path: "/api/v1/evaluation", Method: "POST", Limit: 60, Window: time.Hour, Burst: 5, ModelCall: true},

		// Tier 2: session writes (moderate limits)
		{Path: "/api/v1/answers/", Method: "PUT", Limit: 300, Window: time.Minute, Burst: 20},
		{Path: "/api/v1/session", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/reset", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},

		// Reads fall through to DefaultLimit; see exempt for unlimited requests.
	}
}

// envValue reads key through parse, falling back to def when the variable is
// unset or does not parse.
func envValue[T any](key string, def T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		return def
	}
	return v
}

func parseString(s string) (string, error) { return s, nil }

// parseIPList turns "a, b,,c" into a set of addresses.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
