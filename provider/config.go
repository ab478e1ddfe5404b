// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package provider

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration for the nutrient reference providers.
type Config struct {
	// FDCHost is the base URL for the USDA FoodData Central API.
	// Example: "https://api.nal.usda.gov/fdc"
	FDCHost string

	// FDCAPIKey is the access credential for FoodData Central.
	// "DEMO_KEY" works for low-volume use.
	FDCAPIKey string

	// OFFHost is the base URL for the Open Food Facts API.
	// Example: "https://world.openfoodfacts.org"
	OFFHost string

	// Timeout bounds each provider call so a slow or unreachable provider
	// does not block the fallback chain.
	// Default: 5 seconds.
	Timeout time.Duration

	// PageSize is the number of candidates requested from each provider.
	// Default: 25
	PageSize int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithFDCHost sets the FoodData Central base URL.
func WithFDCHost(host string) ConfigOption {
	return func(c *Config) {
		c.FDCHost = host
	}
}

// WithFDCAPIKey sets the FoodData Central access credential.
func WithFDCAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.FDCAPIKey = key
	}
}

// WithOFFHost sets the Open Food Facts base URL.
func WithOFFHost(host string) ConfigOption {
	return func(c *Config) {
		c.OFFHost = host
	}
}

// WithTimeout sets the per-provider call timeout.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithPageSize sets the number of candidates requested per provider call.
func WithPageSize(size int) ConfigOption {
	return func(c *Config) {
		c.PageSize = size
	}
}

// DefaultConfig returns a Config with sensible defaults for the public
// FoodData Central and Open Food Facts endpoints.
func DefaultConfig() *Config {
	return &Config{
		FDCHost:   "https://api.nal.usda.gov/fdc",
		FDCAPIKey: "DEMO_KEY",
		OFFHost:   "https://world.openfoodfacts.org",
		Timeout:   5 * time.Second,
		PageSize:  25,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
// This is the recommended way to create a Config with custom settings.
//
// Example:
//
//	cfg := NewConfig(
//	    WithFDCAPIKey("my-api-key"),
//	    WithTimeout(3*time.Second),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// Trailing slashes are stripped from hosts so path joining stays uniform.
func (c *Config) Normalize() {
	c.FDCHost = strings.TrimSuffix(c.FDCHost, "/")
	c.OFFHost = strings.TrimSuffix(c.OFFHost, "/")
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.FDCHost == "" {
		return errors.New("provider config: FDCHost is required")
	}
	if c.FDCAPIKey == "" {
		return errors.New("provider config: FDCAPIKey is required")
	}
	if c.OFFHost == "" {
		return errors.New("provider config: OFFHost is required")
	}
	if c.Timeout <= 0 {
		return errors.New("provider config: Timeout must be positive")
	}
	if c.PageSize < 1 {
		return errors.New("provider config: PageSize must be at least 1")
	}
	return nil
}
