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

package swagger

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// versionSegmentRe matches leading path segments that are version
// identifiers rather than resource names (v2, api, version1, ...).
var versionSegmentRe = regexp.MustCompile(`(?i)^(v\d+|api|version\d+)$`)

// EnhanceEndpoints fills in the operation and parameter metadata the
// certification checker requires:
//
//   - a description per operation, defaulting to "<Endpoint name> <METHOD>"
//   - operationId with the first letter capitalized
//   - x-ms-summary on every parameter (Title Case of the parameter name)
//   - a description on every parameter
//   - x-ms-url-encoding: single on path parameters
func EnhanceEndpoints(doc map[string]any) map[string]any {
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return doc
	}

	for path, item := range paths {
		methods, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name := EndpointName(path)

		for method, operation := range methods {
			if !IsHTTPMethod(method) {
				continue
			}
			op, ok := operation.(map[string]any)
			if !ok {
				continue
			}

			if description, ok := op["description"].(string); !ok || description == "" {
				op["description"] = Capitalize(name) + " " + strings.ToUpper(method)
			}

			if operationID, ok := op["operationId"].(string); ok && operationID != "" {
				op["operationId"] = Capitalize(operationID)
			}

			parameters, ok := op["parameters"].([]any)
			if !ok {
				continue
			}
			for _, parameter := range parameters {
				param, ok := parameter.(map[string]any)
				if !ok {
					continue
				}
				enhanceParameter(param)
			}
		}
	}

	return doc
}

func enhanceParameter(param map[string]any) {
	if _, ok := param["x-ms-summary"]; !ok {
		name, _ := param["name"].(string)
		if name == "" {
			name = "Parameter"
		}
		param["x-ms-summary"] = titleCase(name)
	}

	if _, ok := param["description"]; !ok {
		description, _ := param["x-ms-summary"].(string)
		if description == "" {
			description, _ = param["name"].(string)
		}
		if description == "" {
			description = "Parameter"
		}
		param["description"] = description
	}

	if in, _ := param["in"].(string); in == "path" {
		if _, ok := param["x-ms-url-encoding"]; !ok {
			param["x-ms-url-encoding"] = "single"
		}
	}
}

// EndpointName extracts the resource name from a path, skipping API
// version prefixes and stripping file extensions like .json.
func EndpointName(path string) string {
	var parts []string
	for _, part := range strings.Split(strings.TrimPrefix(path, "/"), "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}

	if len(parts) == 0 {
		return "Root"
	}

	if versionSegmentRe.MatchString(parts[0]) {
		if len(parts) == 1 {
			// Just the version with no endpoint
			return "API"
		}
		return strings.SplitN(parts[1], ".", 2)[0]
	}
	return strings.SplitN(parts[0], ".", 2)[0]
}

// Capitalize upper-cases the first rune of a string.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// titleCase turns snake_case or kebab-case parameter names into a
// human-readable Title Case summary.
func titleCase(name string) string {
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	words := strings.Fields(name)
	for i, word := range words {
		words[i] = Capitalize(strings.ToLower(word))
	}
	return strings.Join(words, " ")
}
