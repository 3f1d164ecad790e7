package cli

import (
	"fmt"
	"os"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("PUZZLESOLVER_SERVER", "http://localhost:8080"),
		Output:    getEnvOrDefault("PUZZLESOLVER_OUTPUT", "text"),
		Verbose:   false,
	}
}

// Validate checks flag values
func (c *Config) Validate() error {
	switch c.Output {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid --output %q: must be text or json", c.Output)
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
