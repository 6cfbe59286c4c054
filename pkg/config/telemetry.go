package config

import (
	"fmt"
	"strings"
	"time"
)

// TelemetryConfig groups the tracing export settings.
type TelemetryConfig struct {
	Traces TracesConfig `koanf:"traces"`
}

// TracesConfig holds the configuration of the trace exporter.
type TracesConfig struct {
	OtlpHttp OtlpHttpConfig `koanf:"otlphttp"`
}

// OtlpHttpConfig describes the OTLP/HTTP collector the spans are shipped to.
// Endpoint is a host:port pair without a scheme.
type OtlpHttpConfig struct {
	Endpoint string        `koanf:"endpoint"`
	Insecure bool          `koanf:"insecure"`
	Timeout  time.Duration `koanf:"timeout"`
}

// String returns a string representation of the telemetry configuration.
func (c *TelemetryConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Telemetry ---\n")
	b.WriteString(fmt.Sprintf("  traces.otlphttp.endpoint: %s\n", c.Traces.OtlpHttp.Endpoint))
	b.WriteString(fmt.Sprintf("  traces.otlphttp.insecure: %t\n", c.Traces.OtlpHttp.Insecure))
	b.WriteString(fmt.Sprintf("  traces.otlphttp.timeout: %s\n", c.Traces.OtlpHttp.Timeout))
	return b.String()
}

// Validate checks that the exporter endpoint and timeout are configured.
func (c *TelemetryConfig) Validate() error {
	if c.Traces.OtlpHttp.Endpoint == "" {
		return fmt.Errorf("telemetry endpoint is not configured")
	}
	if c.Traces.OtlpHttp.Timeout <= 0 {
		return fmt.Errorf("telemetry timeout must be greater than zero, got %s", c.Traces.OtlpHttp.Timeout)
	}
	return nil
}
