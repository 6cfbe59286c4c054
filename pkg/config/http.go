package config

import (
	"fmt"
	"time"
)

// HTTPConfig holds the listener port and per-request timeouts of the HTTP server.
type HTTPConfig struct {
	Port           int `koanf:"port"`
	MaxHeaderBytes int `koanf:"maxheaderbytes"`
	Timeout        struct {
		Read       time.Duration `koanf:"read"`
		Write      time.Duration `koanf:"write"`
		Idle       time.Duration `koanf:"idle"`
		ReadHeader time.Duration `koanf:"readheader"`
	} `koanf:"timeout"`
}

// Validate checks that the port is usable and every timeout is positive.
func (c *HTTPConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid HTTP server port: %d", c.Port)
	}
	for _, t := range []struct {
		name string
		d    time.Duration
	}{
		{"read", c.Timeout.Read},
		{"write", c.Timeout.Write},
		{"idle", c.Timeout.Idle},
		{"read header", c.Timeout.ReadHeader},
	} {
		if t.d <= 0 {
			return fmt.Errorf("invalid HTTP server %s timeout: %v", t.name, t.d)
		}
	}
	return nil
}
