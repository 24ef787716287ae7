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

package pack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fulcrumapp/certkit/internal/commands/shared"
	"github.com/fulcrumapp/certkit/internal/connector"
	"github.com/fulcrumapp/certkit/internal/document"
	"github.com/fulcrumapp/certkit/internal/output"
	"github.com/fulcrumapp/certkit/internal/packager"
)

// NewCommand creates the package command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "package <swagger> <config> <outdir>",
		Aliases: []string{"pack"},
		Short:   "Assemble the certification submission package",
		Long: `Package assembles the three artifacts that a Power Platform connector
certification submission requires: apiDefinition.swagger.json,
apiProperties.json, and README.md.

The swagger file should already be cleaned and augmented. The connector
config supplies publisher details, authentication settings, and the
README prose sections.`,
		Example: `  certkit package build/connector.yaml connector-config.yaml build/package`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPackage,
	}

	return cmd
}

func runPackage(cmd *cobra.Command, args []string) error {
	swaggerPath, configPath, outDir := args[0], args[1], args[2]

	cfg, err := connector.Load(configPath)
	if err != nil {
		return emitError("package", shared.ErrorCodeInvalidConfig, err,
			"Check the connector config for missing fields or YAML errors")
	}

	doc, _, err := document.Load(swaggerPath)
	if err != nil {
		return emitError("package", shared.LoadErrorCode(swaggerPath, err), err,
			"Check that the swagger file exists and is valid YAML or JSON")
	}

	written, err := packager.New(nil).Build(doc, cfg, outDir)
	if err != nil {
		return emitError("package", shared.ErrorCodeWriteFailed, err, "")
	}

	if shared.GetJSON() {
		type packageResponse struct {
			output.JSONResponse
			OutputDir string   `json:"output_dir"`
			Artifacts []string `json:"artifacts"`
		}
		return output.EmitJSON(packageResponse{
			JSONResponse: output.JSONResponse{
				Version: "1.0",
				Command: "package",
				Success: true,
			},
			OutputDir: outDir,
			Artifacts: written,
		})
	}

	if !shared.GetQuiet() {
		cmd.Println(shared.RenderOK(fmt.Sprintf("Package written to %s", outDir)))
		for _, path := range written {
			cmd.Printf("  %s\n", path)
		}
	}

	return nil
}

func emitError(command, code string, err error, suggestion string) error {
	if shared.GetJSON() {
		output.EmitJSONError(command, []output.JSONError{
			{Code: code, Message: err.Error(), Suggestion: suggestion},
		})
		return &shared.ExitError{Code: shared.ExitProcessingFailed, Message: ""}
	}
	return shared.NewProcessingError(command+" failed", err)
}
