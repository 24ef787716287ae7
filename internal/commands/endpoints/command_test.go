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

package endpoints

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListEndpoints(t *testing.T) {
	spec := `swagger: "2.0"
paths:
  /v2/records.json:
    get:
      operationId: getRecords
    post:
      operationId: createRecord
  /v2/forms.json:
    get:
      operationId: getForms
`
	path := filepath.Join(t.TempDir(), "swagger.yaml")
	if err := os.WriteFile(path, []byte(spec), 0644); err != nil {
		t.Fatalf("failed to write spec: %v", err)
	}

	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("endpoints failed: %v", err)
	}

	listing := out.String()
	for _, want := range []string{`"/v2/forms.json/get"`, `"/v2/records.json/get"`, `"/v2/records.json/post"`} {
		if !strings.Contains(listing, want) {
			t.Errorf("listing missing %s\ngot: %s", want, listing)
		}
	}

	// Sorted output: forms before records
	if strings.Index(listing, "forms") > strings.Index(listing, "records") {
		t.Error("expected endpoints sorted by path")
	}
}

func TestEndpointsMissingFile(t *testing.T) {
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.yaml")})

	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for a missing file")
	}
}
