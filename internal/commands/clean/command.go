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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fulcrumapp/certkit/internal/commands/shared"
	"github.com/fulcrumapp/certkit/internal/connector"
	"github.com/fulcrumapp/certkit/internal/document"
	"github.com/fulcrumapp/certkit/internal/output"
	"github.com/fulcrumapp/certkit/internal/swagger"
)

// NewCommand creates the clean command
func NewCommand() *cobra.Command {
	var (
		configPath string
		keep       []string
		queries    []string
	)

	cmd := &cobra.Command{
		Use:   "clean <input> [output]",
		Short: "Clean a Swagger spec for certification",
		Long: `Clean runs the certification cleaning pipeline over a Swagger 2.0
document: filters operations to the allow-list, keeps only success
responses, prunes unused definitions, normalizes the info section,
annotates parameters, and strips anyOf/oneOf and $ref siblings.

The allow-list comes from --keep, else from the endpoints list in the
connector config (--config), else from the built-in Fulcrum defaults.
Entries containing '*' are glob patterns.

When no output path is given the result is written next to the input
with a '-cleaned' suffix.`,
		Example: `  # Example 1: Clean with the built-in allow-list
  certkit clean swagger.yaml

  # Example 2: Clean into an explicit output file
  certkit clean swagger.yaml build/cleaned.yaml

  # Example 3: Allow-list from the connector config, plus a jq transform
  certkit clean swagger.yaml --config connector-config.yaml --query 'del(.basePath)'`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, args, configPath, keep, queries)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Connector config providing endpoints and transforms")
	cmd.Flags().StringSliceVar(&keep, "keep", nil, "Endpoint allow-list entries (/path/method), overrides config and defaults")
	cmd.Flags().StringArrayVar(&queries, "query", nil, "Extra jq transform applied after the built-in passes (repeatable)")

	return cmd
}

func runClean(cmd *cobra.Command, args []string, configPath string, keep, queries []string) error {
	inputPath := args[0]
	outputPath := ""
	if len(args) == 2 {
		outputPath = args[1]
	} else {
		ext := filepath.Ext(inputPath)
		outputPath = strings.TrimSuffix(inputPath, ext) + "-cleaned" + ext
	}

	useJSON := shared.GetJSON()

	endpoints := swagger.DefaultEndpoints
	var transforms []string
	if configPath != "" {
		cfg, err := connector.Load(configPath)
		if err != nil {
			return emitError(cmd, "clean", shared.ExitBadInput, shared.ErrorCodeInvalidConfig, err,
				"Check the connector config for missing fields or YAML errors")
		}
		if len(cfg.Endpoints) > 0 {
			endpoints = cfg.Endpoints
		}
		transforms = cfg.Transforms
	}
	if len(keep) > 0 {
		endpoints = keep
	}
	transforms = append(transforms, queries...)

	doc, format, err := document.Load(inputPath)
	if err != nil {
		return emitError(cmd, "clean", shared.ExitBadInput, shared.LoadErrorCode(inputPath, err), err,
			"Check that the input file exists and is valid YAML or JSON")
	}

	cleaner := swagger.NewCleaner(endpoints, transforms, nil)
	cleaned, report, err := cleaner.Clean(cmd.Context(), doc)
	if err != nil {
		return emitError(cmd, "clean", shared.ExitProcessingFailed, shared.ErrorCodeTransformFailed, err, "")
	}

	if err := document.Save(outputPath, cleaned, format); err != nil {
		return emitError(cmd, "clean", shared.ExitProcessingFailed, shared.ErrorCodeWriteFailed, err, "")
	}

	if useJSON {
		type cleanResponse struct {
			output.JSONResponse
			Input             string   `json:"input"`
			Output            string   `json:"output"`
			Requested         int      `json:"requested_endpoints"`
			Kept              int      `json:"kept_endpoints"`
			PrunedDefinitions []string `json:"pruned_definitions,omitempty"`
			Warnings          []string `json:"warnings,omitempty"`
		}
		return output.EmitJSON(cleanResponse{
			JSONResponse: output.JSONResponse{
				Version: "1.0",
				Command: "clean",
				Success: true,
			},
			Input:             inputPath,
			Output:            outputPath,
			Requested:         report.Requested,
			Kept:              report.Kept,
			PrunedDefinitions: report.PrunedDefinitions,
			Warnings:          report.Warnings,
		})
	}

	if !shared.GetQuiet() {
		cmd.Println(shared.RenderOK(fmt.Sprintf("Cleaned %s -> %s", inputPath, outputPath)))
		if report.Requested > 0 {
			cmd.Printf("  Endpoints: %d of %d requested\n", report.Kept, report.Requested)
		} else {
			cmd.Printf("  Endpoints: %d (all kept)\n", report.Kept)
		}
		if len(report.PrunedDefinitions) > 0 {
			cmd.Printf("  Removed %d unused definition(s): %s\n",
				len(report.PrunedDefinitions), strings.Join(report.PrunedDefinitions, ", "))
		}
	}
	for _, warning := range report.Warnings {
		cmd.Println(shared.RenderWarn(warning))
	}

	return nil
}

// emitError prints a structured error in --json mode and wraps it in an
// ExitError carrying the given exit code either way.
func emitError(cmd *cobra.Command, command string, exitCode int, code string, err error, suggestion string) error {
	if shared.GetJSON() {
		output.EmitJSONError(command, []output.JSONError{
			{Code: code, Message: err.Error(), Suggestion: suggestion},
		})
		return &shared.ExitError{Code: exitCode, Message: ""}
	}
	return &shared.ExitError{Code: exitCode, Message: command + " failed", Cause: err}
}
