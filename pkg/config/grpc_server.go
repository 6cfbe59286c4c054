package config

import (
	"fmt"
	"strconv"
)

// GrpcServerConfig holds the gRPC listener settings. Reflection is meant for
// development environments and stays off unless enabled explicitly.
type GrpcServerConfig struct {
	Port              string `koanf:"port"`
	ReflectionEnabled bool   `koanf:"reflection"`
}

// Validate checks that the port is present and within the valid range.
func (c *GrpcServerConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("gRPC port is not configured")
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid gRPC port: %s", c.Port)
	}
	return nil
}
