package config

import (
	"fmt"
	"strings"
	"time"
)

// ShutdownConfig bounds how long graceful shutdown may take before the
// servers are stopped forcefully.
type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

// String returns a string representation of the shutdown configuration.
func (c *ShutdownConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Shutdown ---\n")
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	return b.String()
}

// Validate checks that a positive shutdown timeout is configured.
func (c *ShutdownConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("shutdown timeout must be greater than zero, got %s", c.Timeout)
	}
	return nil
}
