package ratelimit

import (
	"strings"
)

// MatchEndpoint finds the endpoint configuration for a path and method.
// Paths ending in "/" match as prefixes. Returns nil when no configuration
// applies, which leaves the request on the default limit.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// The health check is never limited.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{Limit: 0, Window: 0, Burst: 0}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
