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

// Package packager assembles the three files Microsoft requires for
// certified connector submission: apiDefinition.swagger.json,
// apiProperties.json, and README.md.
package packager

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fulcrumapp/certkit/internal/connector"
	"github.com/fulcrumapp/certkit/internal/document"
	"github.com/fulcrumapp/certkit/internal/log"
)

// Artifact file names fixed by the certification submission layout.
const (
	APIDefinitionFile = "apiDefinition.swagger.json"
	APIPropertiesFile = "apiProperties.json"
	ReadmeFile        = "README.md"
)

// Packager writes certification packages.
type Packager struct {
	logger *slog.Logger
}

// New creates a Packager. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Packager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Packager{logger: log.WithComponent(logger, "packager")}
}

// Build writes the three certification artifacts into outDir, creating
// the directory if needed, and returns the written paths in submission
// order.
func (p *Packager) Build(doc map[string]any, cfg *connector.Config, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	definitionPath := filepath.Join(outDir, APIDefinitionFile)
	definition, err := document.Marshal(doc, document.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize API definition: %w", err)
	}
	if err := os.WriteFile(definitionPath, append(definition, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", APIDefinitionFile, err)
	}
	p.logger.Debug("wrote artifact", slog.String("path", definitionPath))

	propertiesPath := filepath.Join(outDir, APIPropertiesFile)
	properties, err := json.MarshalIndent(apiProperties(cfg), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize API properties: %w", err)
	}
	if err := os.WriteFile(propertiesPath, append(properties, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", APIPropertiesFile, err)
	}
	p.logger.Debug("wrote artifact", slog.String("path", propertiesPath))

	readmePath := filepath.Join(outDir, ReadmeFile)
	readme, err := RenderReadme(cfg, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render README: %w", err)
	}
	if err := os.WriteFile(readmePath, readme, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", ReadmeFile, err)
	}
	p.logger.Debug("wrote artifact", slog.String("path", readmePath))

	return []string{definitionPath, propertiesPath, readmePath}, nil
}

// apiProperties builds the apiProperties.json document from the
// connector config. Only apiKey authentication produces a connection
// parameter; other types yield an empty set, matching the submission
// template for connectors without credentials.
func apiProperties(cfg *connector.Config) map[string]any {
	connectionParameters := map[string]any{}

	if cfg.Authentication.Type == "apiKey" {
		connectionParameters[cfg.Authentication.GetParameterName()] = map[string]any{
			"type": "securestring",
			"uiDefinition": map[string]any{
				"displayName": cfg.Authentication.DisplayName,
				"description": cfg.Authentication.Description,
				"tooltip":     cfg.Authentication.GetTooltip(),
				"constraints": map[string]any{
					"required": "true",
				},
			},
		}
	}

	return map[string]any{
		"properties": map[string]any{
			"connectionParameters":    connectionParameters,
			"iconBrandColor":          cfg.IconBrandColor,
			"capabilities":            []any{},
			"policyTemplateInstances": []any{},
		},
	}
}
