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

package version

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/fulcrumapp/certkit/internal/commands/shared"
	"github.com/fulcrumapp/certkit/internal/output"
)

// NewCommand creates the version command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "version",
		Short:         "Print version information",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runVersion,
	}

	return cmd
}

func runVersion(cmd *cobra.Command, args []string) error {
	v, commit, date := shared.GetVersion()

	if shared.GetJSON() {
		type versionResponse struct {
			output.JSONResponse
			BuildVersion string `json:"build_version"`
			Commit       string `json:"commit"`
			BuildDate    string `json:"build_date"`
			GoVersion    string `json:"go_version"`
			Platform     string `json:"platform"`
		}
		return output.EmitJSON(versionResponse{
			JSONResponse: output.JSONResponse{
				Version: "1.0",
				Command: "version",
				Success: true,
			},
			BuildVersion: v,
			Commit:       commit,
			BuildDate:    date,
			GoVersion:    runtime.Version(),
			Platform:     runtime.GOOS + "/" + runtime.GOARCH,
		})
	}

	cmd.Printf("certkit %s\n", v)
	if !shared.GetQuiet() {
		cmd.Printf("  commit:     %s\n", commit)
		cmd.Printf("  built:      %s\n", date)
		cmd.Printf("  go version: %s\n", runtime.Version())
		cmd.Printf("  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}

	return nil
}
