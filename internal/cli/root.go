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

// Package cli builds the certkit root command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/fulcrumapp/certkit/internal/commands/shared"
)

// SetVersion sets the version information (called from main)
func SetVersion(v, c, b string) {
	shared.SetVersion(v, c, b)
}

// NewRootCommand creates the root Cobra command for certkit
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "certkit",
		Short: "certkit - Power Platform connector certification toolkit",
		Long: `certkit converts a Fulcrum Swagger 2.0 export and a declarative
connector configuration into the artifacts Microsoft requires for
certified connector submission.

Typical flow:

  certkit clean swagger.yaml cleaned.yaml
  certkit augment cleaned.yaml
  certkit package cleaned.yaml connector-config.yaml out/Fulcrum`,
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves for proper exit codes
	}

	// Get flag pointers from shared package
	verbose, quiet, json := shared.RegisterFlagPointers()

	// Add global flags
	cmd.PersistentFlags().BoolVarP(verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(quiet, "quiet", "q", false, "Suppress non-error output")
	cmd.PersistentFlags().BoolVar(json, "json", false, "Output in JSON format")

	return cmd
}

// HandleExitError handles exit errors with proper exit codes
func HandleExitError(err error) {
	shared.HandleExitError(err)
}
