package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the value of key, skipping the test when it is unset
// or empty. Integration tests use it for credentials and bucket names.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		t.Skipf("%s is not set", key)
	}
	return value
}
