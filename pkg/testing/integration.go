package testing

import "os"

// IntegrationEnabled reports whether container backed tests should run.
func IntegrationEnabled() bool {
	return os.Getenv("INTEGRATION_TESTS") == "true"
}
