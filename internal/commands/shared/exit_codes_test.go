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

package shared

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestExitErrorMessage(t *testing.T) {
	err := &ExitError{Code: ExitProcessingFailed, Message: "clean failed"}
	if err.Error() != "clean failed" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	cause := errors.New("bad yaml")
	err = &ExitError{Code: ExitBadInput, Message: "failed to load spec", Cause: cause}
	if err.Error() != "failed to load spec: bad yaml" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewProcessingError("wrapper", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}

	var exitErr *ExitError
	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.As(wrapped, &exitErr) {
		t.Fatal("expected errors.As to find the ExitError")
	}
	if exitErr.Code != ExitProcessingFailed {
		t.Errorf("expected code %d, got %d", ExitProcessingFailed, exitErr.Code)
	}
}

func TestLoadErrorCode(t *testing.T) {
	notExist := fmt.Errorf("failed to read spec.yaml: %w", fs.ErrNotExist)
	if code := LoadErrorCode("spec.yaml", notExist); code != ErrorCodeFileNotFound {
		t.Errorf("missing file: expected %s, got %s", ErrorCodeFileNotFound, code)
	}

	parseErr := errors.New("failed to parse")
	if code := LoadErrorCode("spec.json", parseErr); code != ErrorCodeInvalidJSON {
		t.Errorf("json file: expected %s, got %s", ErrorCodeInvalidJSON, code)
	}
	if code := LoadErrorCode("spec.yaml", parseErr); code != ErrorCodeInvalidYAML {
		t.Errorf("yaml file: expected %s, got %s", ErrorCodeInvalidYAML, code)
	}
}

func TestErrorConstructors(t *testing.T) {
	if NewProcessingError("x", nil).Code != ExitProcessingFailed {
		t.Error("NewProcessingError should use the processing exit code")
	}
	if NewBadInputError("x", nil).Code != ExitBadInput {
		t.Error("NewBadInputError should use the bad input exit code")
	}
}
