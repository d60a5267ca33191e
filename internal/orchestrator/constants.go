package orchestrator

import (
	"os"
	"strings"
	"time"
)

// Timeout constants for different operations
var (
	// DefaultWorkflowTimeout bounds a whole tagging workflow
	DefaultWorkflowTimeout = getTimeoutOrDefault("GITHELPER_WORKFLOW_TIMEOUT", 30*time.Minute, 5*time.Second)
	// RollbackTimeout is the timeout for rollback operations
	RollbackTimeout = getTimeoutOrDefault("GITHELPER_ROLLBACK_TIMEOUT", 5*time.Minute, 100*time.Millisecond)
	// DefaultRetryDelay is the initial delay for exponential backoff
	DefaultRetryDelay = getTimeoutOrDefault("GITHELPER_RETRY_DELAY", 1*time.Second, 10*time.Millisecond)
	// UpdateCheckTimeout bounds the best-effort release lookup behind the update notice
	UpdateCheckTimeout = getTimeoutOrDefault("GITHELPER_UPDATE_CHECK_TIMEOUT", 3*time.Second, 100*time.Millisecond)
)

// isTestEnvironment detects if we're running in a test environment
func isTestEnvironment() bool {
	for _, arg := range os.Args {
		if strings.HasSuffix(arg, ".test") || strings.HasPrefix(arg, "-test.") {
			return true
		}
	}
	return os.Getenv("GO_TEST") == "true"
}

// getTimeoutOrDefault returns production timeout or test timeout based on environment
func getTimeoutOrDefault(envVar string, prodDefault, testDefault time.Duration) time.Duration {
	if env := os.Getenv(envVar); env != "" {
		if duration, err := time.ParseDuration(env); err == nil {
			return duration
		}
	}
	if isTestEnvironment() {
		return testDefault
	}
	return prodDefault
}
