package confstore

import "fmt"

// Environment labels the deployment environment a store belongs to. It has
// no effect on store behavior; it exists for display and for callers that
// want to tell their stores apart.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ParseEnvironment converts a flag or config value into an Environment.
func ParseEnvironment(s string) (Environment, error) {
	switch Environment(s) {
	case Development, Staging, Production:
		return Environment(s), nil
	default:
		return "", fmt.Errorf("unknown environment %q (valid: development, staging, production)", s)
	}
}

// Describe returns the display line for the environment.
func (e Environment) Describe() string {
	return fmt.Sprintf("%s environment configuration", e)
}

// String returns the environment name.
func (e Environment) String() string {
	return string(e)
}
