// Package config defines the collector endpoint configuration and
// helpers to construct and open network targets from it.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/opd-ai/netlog/target"
)

// Collector describes one remote collector endpoint.
type Collector struct {
	// Destination is the hostname or literal address of the
	// collector. Required.
	Destination string `yaml:"destination"`
	// Port is a numeric port or service name. Defaults to "514".
	Port string `yaml:"port"`
	// Transport is "tcp" or "udp". Defaults to "tcp".
	Transport string `yaml:"transport"`
	// Family is "ipv4" or "ipv6". Defaults to "ipv4".
	Family string `yaml:"family"`
}

// Default returns the configuration defaults: syslog port over TCP on
// IPv4, with no destination.
func Default() Collector {
	return Collector{
		Port:      "514",
		Transport: "tcp",
		Family:    "ipv4",
	}
}

// Load reads and parses a collector configuration file.
func Load(path string) (Collector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Collector{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML collector configuration, applies defaults, and
// validates the result.
func Parse(data []byte) (Collector, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Collector{}, fmt.Errorf("parse config: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return Collector{}, err
	}
	return c, nil
}

// applyDefaults fills zero-value fields with the defaults.
func (c *Collector) applyDefaults() {
	def := Default()
	if c.Port == "" {
		c.Port = def.Port
	}
	if c.Transport == "" {
		c.Transport = def.Transport
	}
	if c.Family == "" {
		c.Family = def.Family
	}
}

// Validate checks the configuration for use. A port must be a service
// name or a number in 1-65535; transport and family must be one of the
// known values.
func (c Collector) Validate() error {
	if c.Destination == "" {
		return fmt.Errorf("config: destination is required")
	}

	if n, err := strconv.Atoi(c.Port); err == nil && (n < 1 || n > 65535) {
		return fmt.Errorf("config: port %d out of range", n)
	}
	if c.Port == "" {
		return fmt.Errorf("config: port is required")
	}

	switch c.Transport {
	case "tcp", "udp":
	default:
		return fmt.Errorf("config: unknown transport %q", c.Transport)
	}

	switch c.Family {
	case "ipv4", "ipv6":
	default:
		return fmt.Errorf("config: unknown family %q", c.Family)
	}

	return nil
}

// NewTarget constructs the unopened network target for this endpoint.
func (c Collector) NewTarget() *target.NetworkTarget {
	return target.New(c.Destination, c.Port)
}

// Open dispatches to the open variant matching the configured
// transport and family.
func (c Collector) Open(t *target.NetworkTarget) error {
	switch {
	case c.Transport == "tcp" && c.Family == "ipv4":
		return t.OpenTCP4()
	case c.Transport == "tcp" && c.Family == "ipv6":
		return t.OpenTCP6()
	case c.Transport == "udp" && c.Family == "ipv4":
		return t.OpenUDP4()
	case c.Transport == "udp" && c.Family == "ipv6":
		return t.OpenUDP6()
	}
	return fmt.Errorf("config: no open variant for %s/%s", c.Transport, c.Family)
}

// Reopen dispatches to the reopen variant matching the configured
// transport and family. Like the target's reopen operations it returns
// the target unconditionally; check IsOpen for the outcome.
func (c Collector) Reopen(t *target.NetworkTarget) *target.NetworkTarget {
	switch {
	case c.Transport == "tcp" && c.Family == "ipv6":
		return t.ReopenTCP6()
	case c.Transport == "udp" && c.Family == "ipv4":
		return t.ReopenUDP4()
	case c.Transport == "udp" && c.Family == "ipv6":
		return t.ReopenUDP6()
	}
	return t.ReopenTCP4()
}
