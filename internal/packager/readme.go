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

package packager

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/fulcrumapp/certkit/internal/connector"
	"github.com/fulcrumapp/certkit/internal/swagger"
)

// readmeTemplate follows the Microsoft certified connector README
// layout: description, publisher, prerequisites, credentials, optional
// getting started, supported operations, known limitations.
const readmeTemplate = `# {{ .Config.DisplayName }}

{{ trim .Config.Description }}

## Publisher

{{ .Config.Publisher }}

## Prerequisites

{{ range .Config.Prerequisites -}}
- {{ . }}
{{ end }}
## Obtaining Credentials

{{ .Config.Authentication.Description }}
{{ with .Config.Authentication.Tooltip }}
{{ . }}
{{ end }}
{{- with .Config.GettingStarted }}
## Getting Started

{{ trim . }}
{{ end }}
{{- if .Operations }}
## Supported Operations

{{ range .Operations -}}
### {{ .Title }}

{{ .Description }}

{{ end }}
{{- end }}
## Known Issues and Limitations

{{ range .Config.KnownLimitations -}}
- {{ . }}
{{ end -}}
`

// Operation is one row of the Supported Operations section.
type Operation struct {
	Title       string
	Description string
}

type readmeData struct {
	Config     *connector.Config
	Operations []Operation
}

// RenderReadme generates the README from the connector config and the
// cleaned Swagger document.
func RenderReadme(cfg *connector.Config, doc map[string]any) ([]byte, error) {
	tmpl, err := template.New("readme").Funcs(sprig.FuncMap()).Parse(readmeTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse README template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, readmeData{
		Config:     cfg,
		Operations: extractOperations(doc),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render README: %w", err)
	}

	return buf.Bytes(), nil
}

// extractOperations lists user-visible operations from the Swagger
// paths, sorted by title. Internal operations (webhook cleanup) are
// skipped.
func extractOperations(doc map[string]any) []Operation {
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return nil
	}

	var operations []Operation
	for path, item := range paths {
		methods, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for method, operation := range methods {
			if !swagger.IsHTTPMethod(method) {
				continue
			}
			op, ok := operation.(map[string]any)
			if !ok {
				continue
			}
			if visibility, _ := op["x-ms-visibility"].(string); visibility == "internal" {
				continue
			}

			title, _ := op["summary"].(string)
			if title == "" {
				title, _ = op["operationId"].(string)
			}
			if title == "" {
				title = strings.ToUpper(method) + " " + path
			}

			description, _ := op["description"].(string)
			if description == "" {
				description = title
			}

			operations = append(operations, Operation{Title: title, Description: description})
		}
	}

	sort.Slice(operations, func(i, j int) bool { return operations[i].Title < operations[j].Title })
	return operations
}
