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

package augment

import (
	"github.com/spf13/cobra"

	"github.com/fulcrumapp/certkit/internal/commands/shared"
	"github.com/fulcrumapp/certkit/internal/document"
	"github.com/fulcrumapp/certkit/internal/output"
	"github.com/fulcrumapp/certkit/internal/trigger"
)

// NewCommand creates the augment command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "augment <input> [output]",
		Short: "Add Power Automate webhook trigger extensions",
		Long: `Augment injects the Power Automate trigger extensions into a cleaned
Swagger 2.0 document: marks the webhook registration POST as a trigger,
annotates the callback URL, defines the webhook payload schema, and
configures the webhook DELETE endpoint as an internal cleanup action.

When no output path is given, the input file is updated in place.`,
		Example: `  # Update in place
  certkit augment build/cleaned.yaml

  # Write to a new file
  certkit augment build/cleaned.yaml build/connector.yaml`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAugment,
	}

	return cmd
}

func runAugment(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath := inputPath
	if len(args) == 2 {
		outputPath = args[1]
	}

	doc, format, err := document.Load(inputPath)
	if err != nil {
		if shared.GetJSON() {
			output.EmitJSONError("augment", []output.JSONError{
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

	report, err := trigger.Augment(doc)
	if err != nil {
		if shared.GetJSON() {
			output.EmitJSONError("augment", []output.JSONError{
				{
					Code:       shared.ErrorCodeTransformFailed,
					Message:    err.Error(),
					Suggestion: "Run 'certkit clean' first so the webhook endpoints are present",
				},
			})
			return &shared.ExitError{Code: shared.ExitProcessingFailed, Message: ""}
		}
		return shared.NewProcessingError("augment failed", err)
	}

	if err := document.Save(outputPath, doc, format); err != nil {
		return shared.NewProcessingError("augment failed", err)
	}

	if shared.GetJSON() {
		type augmentResponse struct {
			output.JSONResponse
			Output   string   `json:"output"`
			Messages []string `json:"messages,omitempty"`
			Warnings []string `json:"warnings,omitempty"`
		}
		return output.EmitJSON(augmentResponse{
			JSONResponse: output.JSONResponse{
				Version: "1.0",
				Command: "augment",
				Success: true,
			},
			Output:   outputPath,
			Messages: report.Messages,
			Warnings: report.Warnings,
		})
	}

	if !shared.GetQuiet() {
		for _, message := range report.Messages {
			cmd.Println(shared.RenderOK(message))
		}
	}
	for _, warning := range report.Warnings {
		cmd.Println(shared.RenderWarn(warning))
	}
	if !shared.GetQuiet() {
		if outputPath == inputPath {
			cmd.Printf("Updated %s in place\n", inputPath)
		} else {
			cmd.Printf("Augmented %s -> %s\n", inputPath, outputPath)
		}
	}

	return nil
}
