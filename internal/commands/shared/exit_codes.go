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
	"os"
	"strings"
)

// Exit codes shared by all certkit commands
const (
	ExitSuccess          = 0
	ExitProcessingFailed = 1
	ExitBadInput         = 2
)

// Error codes for --json output
const (
	ErrorCodeFileNotFound    = "FILE_NOT_FOUND"
	ErrorCodeInvalidYAML     = "INVALID_YAML"
	ErrorCodeInvalidJSON     = "INVALID_JSON"
	ErrorCodeInvalidConfig   = "INVALID_CONFIG"
	ErrorCodeTransformFailed = "TRANSFORM_FAILED"
	ErrorCodeValidation      = "VALIDATION_FAILED"
	ErrorCodeWriteFailed     = "WRITE_FAILED"
)

// LoadErrorCode picks the JSON error code for a failed document load:
// FILE_NOT_FOUND for missing files, otherwise a parse code matching the
// file's format.
func LoadErrorCode(path string, err error) string {
	if errors.Is(err, fs.ErrNotExist) {
		return ErrorCodeFileNotFound
	}
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return ErrorCodeInvalidJSON
	}
	return ErrorCodeInvalidYAML
}

// ExitError is an error that carries an exit code
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewProcessingError creates an error for transformation or packaging failures
func NewProcessingError(msg string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitProcessingFailed,
		Message: msg,
		Cause:   cause,
	}
}

// NewBadInputError creates an error for unreadable or malformed input files
func NewBadInputError(msg string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitBadInput,
		Message: msg,
		Cause:   cause,
	}
}

// HandleExitError checks if an error is an ExitError and exits with the appropriate code
func HandleExitError(err error) {
	if err == nil {
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, "Error:", msg)
		}
		os.Exit(exitErr.Code)
	}

	// Default to processing failed
	fmt.Fprintln(os.Stderr, "Error:", err.Error())
	os.Exit(ExitProcessingFailed)
}
