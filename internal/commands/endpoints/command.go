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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fulcrumapp/certkit/internal/commands/shared"
	"github.com/fulcrumapp/certkit/internal/document"
	"github.com/fulcrumapp/certkit/internal/output"
	"github.com/fulcrumapp/certkit/internal/swagger"
)

// NewCommand creates the endpoints command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "endpoints <input>",
		Short: "List the endpoints available in a Swagger spec",
		Long: `Endpoints prints every path/method operation in the document, sorted,
in the quoted form the clean allow-list uses, so entries can be copied
straight into a connector config.`,
		Example: `  certkit endpoints swagger.yaml
  certkit endpoints swagger.yaml --json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runEndpoints,
	}

	return cmd
}

func runEndpoints(cmd *cobra.Command, args []string) error {
	doc, _, err := document.Load(args[0])
	if err != nil {
		if shared.GetJSON() {
			output.EmitJSONError("endpoints", []output.JSONError{
				{
					Code:       shared.LoadErrorCode(args[0], err),
					Message:    err.Error(),
					Suggestion: "Check that the input file exists and is valid YAML or JSON",
				},
			})
			return &shared.ExitError{Code: shared.ExitBadInput, Message: ""}
		}
		return shared.NewBadInputError("failed to load spec", err)
	}

	endpoints := swagger.ListEndpoints(doc)

	if shared.GetJSON() {
		type endpointsResponse struct {
			output.JSONResponse
			Endpoints []string `json:"endpoints"`
		}
		return output.EmitJSON(endpointsResponse{
			JSONResponse: output.JSONResponse{
				Version: "1.0",
				Command: "endpoints",
				Success: true,
			},
			Endpoints: endpoints,
		})
	}

	cmd.Println(shared.Header.Render("Available endpoints:"))
	for _, endpoint := range endpoints {
		cmd.Println(fmt.Sprintf("  %q,", endpoint))
	}

	return nil
}
