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


package main

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/macrofind/provider"
)

// fileConfig mirrors the optional YAML configuration file.
type fileConfig struct {
	FDCHost   string        `yaml:"fdc_host"`
	FDCAPIKey string        `yaml:"fdc_api_key"`
	OFFHost   string        `yaml:"off_host"`
	Timeout   time.Duration `yaml:"timeout"`
	PageSize  int           `yaml:"page_size"`
}

// loadFileConfig reads and parses a YAML configuration file.
func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &fc, nil
}

// buildProviderConfig layers configuration sources: defaults, then the YAML
// file if given, then any explicitly set command-line flags.
func buildProviderConfig(c *cli.Context) (*provider.Config, error) {
	cfg := provider.DefaultConfig()

	if path := c.String("config"); path != "" {
		fc, err := loadFileConfig(path)
		if err != nil {
			return nil, err
		}
		if fc.FDCHost != "" {
			cfg.FDCHost = fc.FDCHost
		}
		if fc.FDCAPIKey != "" {
			cfg.FDCAPIKey = fc.FDCAPIKey
		}
		if fc.OFFHost != "" {
			cfg.OFFHost = fc.OFFHost
		}
		if fc.Timeout > 0 {
			cfg.Timeout = fc.Timeout
		}
		if fc.PageSize > 0 {
			cfg.PageSize = fc.PageSize
		}
	}

	if c.IsSet("fdc-host") {
		cfg.FDCHost = c.String("fdc-host")
	}
	if c.IsSet("fdc-api-key") {
		cfg.FDCAPIKey = c.String("fdc-api-key")
	}
	if c.IsSet("off-host") {
		cfg.OFFHost = c.String("off-host")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}
	if c.IsSet("page-size") {
		cfg.PageSize = c.Int("page-size")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid provider configuration: %w", err)
	}
	return cfg, nil
}
