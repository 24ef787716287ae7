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

package clean

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sigs.k8s.io/yaml"

	"github.com/fulcrumapp/certkit/internal/commands/shared"
)

const rawSpec = `swagger: "2.0"
info:
  title: Fulcrum API
  version: "2.0"
paths:
  /v2/records.json:
    get:
      operationId: getRecords
      responses:
        "200":
          description: OK
        "401":
          description: Unauthorized
  /v2/forms.json:
    get:
      operationId: getForms
      responses:
        "200":
          description: OK
          schema:
            $ref: "#/definitions/FormList"
definitions:
  FormList:
    type: object
  Unused:
    type: object
`

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()

	if cmd.Use != "clean <input> [output]" {
		t.Errorf("expected use 'clean <input> [output]', got %q", cmd.Use)
	}
	for _, flag := range []string{"config", "keep", "query"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("--%s flag not defined", flag)
		}
	}
}

func TestCleanWithKeepList(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "swagger.yaml")
	output := filepath.Join(dir, "cleaned.yaml")
	if err := os.WriteFile(input, []byte(rawSpec), 0644); err != nil {
		t.Fatalf("failed to write spec: %v", err)
	}

	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{input, output, "--keep", "/v2/forms.json/get"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("clean failed: %v\noutput: %s", err, out.String())
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read cleaned spec: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("cleaned spec is not valid YAML: %v", err)
	}

	paths := doc["paths"].(map[string]any)
	if _, kept := paths["/v2/forms.json"]; !kept {
		t.Error("/v2/forms.json should have been kept")
	}
	if _, dropped := paths["/v2/records.json"]; dropped {
		t.Error("/v2/records.json should have been removed")
	}

	definitions := doc["definitions"].(map[string]any)
	if _, pruned := definitions["Unused"]; pruned {
		t.Error("Unused definition should have been pruned")
	}

	title := doc["info"].(map[string]any)["title"].(string)
	if strings.Contains(strings.ToLower(title), "api") {
		t.Errorf("restricted word left in title: %q", title)
	}
}

func TestCleanDefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "swagger.yaml")
	if err := os.WriteFile(input, []byte(rawSpec), 0644); err != nil {
		t.Fatalf("failed to write spec: %v", err)
	}

	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{input, "--keep", "/v2/forms.json/get"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("clean failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "swagger-cleaned.yaml")); err != nil {
		t.Errorf("expected swagger-cleaned.yaml next to the input: %v", err)
	}
}

func TestCleanWithJqQuery(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "swagger.yaml")
	output := filepath.Join(dir, "cleaned.yaml")
	if err := os.WriteFile(input, []byte(rawSpec), 0644); err != nil {
		t.Fatalf("failed to write spec: %v", err)
	}

	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{input, output,
		"--keep", "/v2/forms.json/get",
		"--query", `.host = "api.fulcrumapp.com"`})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("clean failed: %v", err)
	}

	data, _ := os.ReadFile(output)
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("cleaned spec is not valid YAML: %v", err)
	}
	if doc["host"] != "api.fulcrumapp.com" {
		t.Errorf("jq transform not applied, host = %v", doc["host"])
	}
}

func TestCleanMissingInput(t *testing.T) {
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.yaml")})

	err := cmd.Execute()
	var exitErr *shared.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %T", err)
	}
	if exitErr.Code != shared.ExitBadInput {
		t.Errorf("expected exit code %d, got %d", shared.ExitBadInput, exitErr.Code)
	}
}

func TestCleanInvalidConfigExitCode(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "swagger.yaml")
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(input, []byte(rawSpec), 0644); err != nil {
		t.Fatalf("failed to write spec: %v", err)
	}
	if err := os.WriteFile(configPath, []byte("publisher: Spatial Networks\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{input, "--config", configPath})

	err := cmd.Execute()
	var exitErr *shared.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %T", err)
	}
	if exitErr.Code != shared.ExitBadInput {
		t.Errorf("expected exit code %d, got %d", shared.ExitBadInput, exitErr.Code)
	}
}
