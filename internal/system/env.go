// Package system holds environment and host helpers shared by the
// window-titles packages.
package system

import (
	"os"
	"strings"
	"time"
)

// Environment variable names read by window-titles.
const (
	EnvDebug     = "WINDOWTITLES_DEBUG"
	EnvOsascript = "WINDOWTITLES_OSASCRIPT"
	EnvTimeout   = "WINDOWTITLES_TIMEOUT"

	// Logging
	EnvLogJSON = "WINDOWTITLES_LOG_JSON"
	EnvLogDest = "WINDOWTITLES_LOG_DEST"
	EnvLogTime = "WINDOWTITLES_LOG_TIME"

	// Testing and development
	EnvTestIntegration = "WINDOWTITLES_TEST_INTEGRATION"
)

// GetBool returns the boolean value of an environment variable.
// Returns true if the variable is set to "1", "true", "yes", or "on" (case-insensitive).
// Returns false otherwise.
func GetBool(key string) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

// GetString returns the string value of an environment variable.
// Returns the defaultValue if the variable is not set or empty.
func GetString(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

// GetDuration parses an environment variable with time.ParseDuration.
// Negative or unparsable values yield defaultValue.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return defaultValue
	}
	return d
}

// IsDebugEnabled checks if debug mode is enabled via environment variable.
func IsDebugEnabled() bool {
	return GetBool(EnvDebug)
}

// IsIntegrationEnabled reports whether tests that run the real scripting
// tool should execute.
func IsIntegrationEnabled() bool {
	return GetBool(EnvTestIntegration)
}

// AllEnvVars returns a list of all known window-titles environment variables.
func AllEnvVars() []string {
	return []string{
		EnvDebug,
		EnvOsascript,
		EnvTimeout,
		EnvLogJSON,
		EnvLogDest,
		EnvLogTime,
		EnvTestIntegration,
	}
}
