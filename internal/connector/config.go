// Copyright 2026 Spatial Networks, Inc.
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

// Package connector loads and validates the declarative connector
// configuration that drives cleaning and packaging.
package connector

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fulcrumapp/certkit/internal/jq"
)

// ErrInvalidConfig is returned when configuration validation fails.
var ErrInvalidConfig = errors.New("connector: invalid configuration")

// Config is the connector-config.yaml document.
type Config struct {
	Publisher        string         `yaml:"publisher"`
	DisplayName      string         `yaml:"displayName"`
	Description      string         `yaml:"description"`
	IconBrandColor   string         `yaml:"iconBrandColor"`
	SupportEmail     string         `yaml:"supportEmail"`
	Authentication   Authentication `yaml:"authentication"`
	Prerequisites    []string       `yaml:"prerequisites"`
	KnownLimitations []string       `yaml:"knownLimitations"`

	// GettingStarted is an optional free-form README section.
	GettingStarted string `yaml:"gettingStarted,omitempty"`

	// Endpoints overrides the built-in cleaning allow-list.
	Endpoints []string `yaml:"endpoints,omitempty"`

	// Transforms holds jq expressions run after the built-in cleaning
	// passes.
	Transforms []string `yaml:"transforms,omitempty"`
}

// Authentication describes the connection parameter the connector asks
// the user for.
type Authentication struct {
	Type          string `yaml:"type"`
	DisplayName   string `yaml:"displayName"`
	Description   string `yaml:"description"`
	ParameterName string `yaml:"parameterName,omitempty"`
	Tooltip       string `yaml:"tooltip,omitempty"`
}

// Load reads and validates a connector config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates config bytes. Unknown fields are rejected
// so typos surface as errors instead of silently dropped sections.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every required field is present, reporting all
// missing fields at once.
func (c *Config) Validate() error {
	var missing []string

	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	check("publisher", c.Publisher)
	check("displayName", c.DisplayName)
	check("description", c.Description)
	check("iconBrandColor", c.IconBrandColor)
	check("supportEmail", c.SupportEmail)
	if len(c.Prerequisites) == 0 {
		missing = append(missing, "prerequisites")
	}
	if len(c.KnownLimitations) == 0 {
		missing = append(missing, "knownLimitations")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}

	var authMissing []string
	authCheck := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			authMissing = append(authMissing, name)
		}
	}
	authCheck("type", c.Authentication.Type)
	authCheck("displayName", c.Authentication.DisplayName)
	authCheck("description", c.Authentication.Description)

	if len(authMissing) > 0 {
		return fmt.Errorf("%w: missing required authentication fields: %s", ErrInvalidConfig, strings.Join(authMissing, ", "))
	}

	// Bad jq surfaces at config load instead of mid-pipeline.
	executor := jq.NewExecutor(0, 0)
	for _, transform := range c.Transforms {
		if err := executor.Validate(transform); err != nil {
			return fmt.Errorf("%w: transform %q: %v", ErrInvalidConfig, transform, err)
		}
	}

	return nil
}

// GetParameterName returns the connection parameter name, defaulting to
// api_key for apiKey authentication.
func (a Authentication) GetParameterName() string {
	if a.ParameterName != "" {
		return a.ParameterName
	}
	return "api_key"
}

// GetTooltip returns the tooltip, falling back to the description.
func (a Authentication) GetTooltip() string {
	if a.Tooltip != "" {
		return a.Tooltip
	}
	return a.Description
}
