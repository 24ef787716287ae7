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

package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fulcrumapp/certkit/internal/commands/shared"
	"github.com/fulcrumapp/certkit/internal/document"
	"github.com/fulcrumapp/certkit/internal/output"
	"github.com/fulcrumapp/certkit/internal/swagger"
)

// NewCommand creates the validate command
func NewCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate <swagger>",
		Short: "Check a spec against the certification submission rules",
		Long: `Validate checks a Swagger 2.0 document against the Power Platform
certification checklist: swagger version, restricted words in the title,
description length, contact details, resolvable $refs, unique operation
IDs, no anyOf/oneOf, and the presence of a webhook trigger.

Errors fail validation. Warnings are advisory unless --strict is set.`,
		Example: `  certkit validate build/connector.yaml

  # Treat warnings as failures
  certkit validate build/connector.yaml --strict`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as validation failures")

	return cmd
}

func runValidate(cmd *cobra.Command, inputPath string, strict bool) error {
	doc, _, err := document.Load(inputPath)
	if err != nil {
		if shared.GetJSON() {
			output.EmitJSONError("validate", []output.JSONError{
				{
					Code:       shared.LoadErrorCode(inputPath, err),
					Message:    err.Error(),
					Suggestion: "Check that the input file exists and is valid YAML or JSON",
				},
			})
			return &shared.ExitError{Code: shared.ExitBadInput, Message: ""}
		}
		return shared.NewBadInputError("failed to load spec", err)
	}

	issues, err := swagger.Validate(doc)
	if err != nil {
		if shared.GetJSON() {
			output.EmitJSONError("validate", []output.JSONError{
				{Code: shared.ErrorCodeValidation, Message: err.Error()},
			})
			return &shared.ExitError{Code: shared.ExitProcessingFailed, Message: ""}
		}
		return shared.NewProcessingError("validate failed", err)
	}

	failed := swagger.HasErrors(issues) || (strict && len(issues) > 0)

	if shared.GetJSON() {
		type validateResponse struct {
			output.JSONResponse
			Input  string          `json:"input"`
			Valid  bool            `json:"valid"`
			Issues []swagger.Issue `json:"issues,omitempty"`
		}
		if err := output.EmitJSON(validateResponse{
			JSONResponse: output.JSONResponse{
				Version: "1.0",
				Command: "validate",
				Success: !failed,
			},
			Input:  inputPath,
			Valid:  !failed,
			Issues: issues,
		}); err != nil {
			return err
		}
		if failed {
			return &shared.ExitError{Code: shared.ExitProcessingFailed, Message: ""}
		}
		return nil
	}

	for _, issue := range issues {
		if issue.Severity == swagger.SeverityError {
			cmd.Println(shared.RenderError(issue.String()))
		} else {
			cmd.Println(shared.RenderWarn(issue.String()))
		}
	}

	if failed {
		return shared.NewProcessingError("validate failed",
			fmt.Errorf("%d issue(s) found in %s", len(issues), inputPath))
	}

	if !shared.GetQuiet() {
		if len(issues) > 0 {
			cmd.Println(shared.RenderOK(fmt.Sprintf("%s is valid (%d warning(s))", inputPath, len(issues))))
		} else {
			cmd.Println(shared.RenderOK(inputPath + " is valid"))
		}
	}

	return nil
}
