package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited is returned for requests that never consume a token.
var unlimited = EndpointConfig{}

// exempt reports whether a request is free of rate limiting: the health check,
// the page itself and CORS preflights.
func exempt(path, method string) bool {
	switch {
	case method == http.MethodOptions:
		return true
	case method == http.MethodGet && (path == "/health" || path == "/"):
		return true
	}
	return false
}

// MatchEndpoint matches a request path and method to an endpoint configuration.
// An exact rule wins over a prefix rule ("/api/v1/answers/" matches "/api/v1/answers/3"),
// and among prefix rules the longest one wins. HEAD requests use GET rules.
// Returns nil when no rule applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if method == http.MethodHead {
		method = http.MethodGet
	}
	if exempt(path, method) {
		u := unlimited
		u.Path, u.Method = path, method
		return &u
	}

	var best *EndpointConfig
	for i := range configs {
		config := &configs[i]
		if config.Method != method {
			continue
		}
		if config.Path == path {
			return config
		}
		if strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			if best == nil || len(config.Path) > len(best.Path) {
				best = config
			}
		}
	}
	return best
}
