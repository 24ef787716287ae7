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

package output

import (
	"bytes"
	"encoding/json"
	"testing"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := Stdout
	Stdout = &buf
	t.Cleanup(func() { Stdout = orig })
	return &buf
}

func TestEmitJSONEnvelope(t *testing.T) {
	buf := captureStdout(t)

	type response struct {
		JSONResponse
		Output string `json:"output"`
	}
	err := EmitJSON(response{
		JSONResponse: JSONResponse{Version: "1.0", Command: "clean", Success: true},
		Output:       "cleaned.yaml",
	})
	if err != nil {
		t.Fatalf("EmitJSON failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["@version"] != "1.0" {
		t.Errorf("expected @version 1.0, got %v", decoded["@version"])
	}
	if decoded["command"] != "clean" {
		t.Errorf("expected command clean, got %v", decoded["command"])
	}
	if decoded["success"] != true {
		t.Errorf("expected success true, got %v", decoded["success"])
	}
	if decoded["output"] != "cleaned.yaml" {
		t.Errorf("expected output cleaned.yaml, got %v", decoded["output"])
	}
}

func TestEmitJSONError(t *testing.T) {
	buf := captureStdout(t)

	err := EmitJSONError("augment", []JSONError{
		{Code: "TRANSFORM_FAILED", Message: "no webhook endpoint", Suggestion: "run clean first"},
	})
	if err != nil {
		t.Fatalf("EmitJSONError failed: %v", err)
	}

	var decoded struct {
		Success bool        `json:"success"`
		Errors  []JSONError `json:"errors"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Success {
		t.Error("error responses must have success false")
	}
	if len(decoded.Errors) != 1 || decoded.Errors[0].Code != "TRANSFORM_FAILED" {
		t.Errorf("unexpected errors: %+v", decoded.Errors)
	}
}

func TestJSONErrorOmitsEmptySuggestion(t *testing.T) {
	data, err := json.Marshal(JSONError{Code: "FILE_NOT_FOUND", Message: "missing"})
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(data, []byte("suggestion")) {
		t.Errorf("empty suggestion should be omitted: %s", data)
	}
}
