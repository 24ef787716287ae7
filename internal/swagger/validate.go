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
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi2"

	"github.com/fulcrumapp/certkit/internal/document"
)

// Issue severity levels reported by Validate.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue is a single finding from certification validation.
type Issue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// Validate checks a document against the certification submission rules.
// It returns the findings sorted by path; an empty slice means the
// document is ready to package.
func Validate(doc map[string]any) ([]Issue, error) {
	var issues []Issue

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize spec: %w", err)
	}
	var parsed openapi2.T
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("spec does not parse as Swagger 2.0: %w", err)
	}

	if parsed.Swagger != "2.0" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "swagger",
			Message:  fmt.Sprintf("version must be \"2.0\", got %q", parsed.Swagger),
		})
	}

	issues = append(issues, validateInfo(doc)...)
	issues = append(issues, validateRefs(doc)...)
	issues = append(issues, validateOperations(doc)...)
	issues = append(issues, validatePolymorphism(doc)...)

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Path < issues[j].Path
	})
	return issues, nil
}

// HasErrors reports whether any issue is severity error.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

func validateInfo(doc map[string]any) []Issue {
	var issues []Issue

	info, _ := doc["info"].(map[string]any)
	if info == nil {
		return []Issue{{Severity: SeverityError, Path: "info", Message: "info block is missing"}}
	}

	title, _ := info["title"].(string)
	if title == "" {
		issues = append(issues, Issue{Severity: SeverityError, Path: "info.title", Message: "title is required"})
	} else {
		for i, re := range restrictedWordRes {
			if re.MatchString(title) {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Path:     "info.title",
					Message:  fmt.Sprintf("title must not contain the word %q", restrictedTitleWords[i]),
				})
			}
		}
	}

	description, _ := info["description"].(string)
	length := utf8.RuneCountInString(description)
	switch {
	case length < 30:
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "info.description",
			Message:  fmt.Sprintf("description must be at least 30 characters, got %d", length),
		})
	case length > 500:
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "info.description",
			Message:  fmt.Sprintf("description must be at most 500 characters, got %d", length),
		})
	}

	contact, _ := info["contact"].(map[string]any)
	if contact == nil {
		issues = append(issues, Issue{Severity: SeverityError, Path: "info.contact", Message: "contact block is required"})
	} else {
		for _, field := range []string{"name", "url", "email"} {
			if value, _ := contact[field].(string); value == "" {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Path:     "info.contact." + field,
					Message:  field + " is required",
				})
			}
		}
	}

	return issues
}

func validateRefs(doc map[string]any) []Issue {
	definitions, _ := doc["definitions"].(map[string]any)

	refs := document.CollectRefs(doc, definitionsPrefix)

	var issues []Issue
	for name := range refs {
		if _, ok := definitions[name]; !ok {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "definitions." + name,
				Message:  fmt.Sprintf("referenced definition %q does not exist", name),
			})
		}
	}
	return issues
}

func validateOperations(doc map[string]any) []Issue {
	paths, _ := doc["paths"].(map[string]any)

	var issues []Issue
	seen := map[string]string{}
	triggers := 0

	for path, node := range paths {
		methods, ok := node.(map[string]any)
		if !ok {
			continue
		}
		for method, opNode := range methods {
			if !IsHTTPMethod(method) {
				continue
			}
			op, ok := opNode.(map[string]any)
			if !ok {
				continue
			}
			location := fmt.Sprintf("paths.%s.%s", path, method)

			id, _ := op["operationId"].(string)
			if id == "" {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Path:     location,
					Message:  "operationId is required",
				})
			} else if prior, dup := seen[id]; dup {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Path:     location,
					Message:  fmt.Sprintf("operationId %q already used by %s", id, prior),
				})
			} else {
				seen[id] = location
			}

			if summary, _ := op["summary"].(string); summary == "" {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Path:     location,
					Message:  "summary is missing",
				})
			}

			if responses, _ := op["responses"].(map[string]any); responses != nil {
				for status := range responses {
					if status != "default" && !strings.HasPrefix(status, "2") {
						issues = append(issues, Issue{
							Severity: SeverityWarning,
							Path:     location + ".responses." + status,
							Message:  "non-success responses should be removed before submission",
						})
					}
				}
			}

			if _, ok := op["x-ms-trigger"]; ok {
				triggers++
			}
		}
	}

	if triggers == 0 {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "paths",
			Message:  "no x-ms-trigger operation found; run augment to add the webhook trigger",
		})
	}

	return issues
}

// validatePolymorphism flags anyOf/oneOf, which the Power Platform
// swagger dialect rejects.
func validatePolymorphism(doc map[string]any) []Issue {
	var issues []Issue
	var walk func(node any, path string)
	walk = func(node any, path string) {
		switch typed := node.(type) {
		case map[string]any:
			for key, value := range typed {
				if key == "anyOf" || key == "oneOf" {
					issues = append(issues, Issue{
						Severity: SeverityError,
						Path:     strings.TrimPrefix(path+"."+key, "."),
						Message:  key + " is not supported by the Power Platform",
					})
					continue
				}
				walk(value, path+"."+key)
			}
		case []any:
			for i, value := range typed {
				walk(value, fmt.Sprintf("%s[%d]", path, i))
			}
		}
	}
	walk(doc, "")
	return issues
}

