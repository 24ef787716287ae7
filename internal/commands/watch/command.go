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

package watch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/fulcrumapp/certkit/internal/commands/shared"
	"github.com/fulcrumapp/certkit/internal/connector"
	"github.com/fulcrumapp/certkit/internal/document"
	"github.com/fulcrumapp/certkit/internal/log"
	"github.com/fulcrumapp/certkit/internal/packager"
	"github.com/fulcrumapp/certkit/internal/swagger"
	"github.com/fulcrumapp/certkit/internal/trigger"
	"github.com/fulcrumapp/certkit/internal/watch"
)

// NewCommand creates the watch command
func NewCommand() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch <swagger> <config> <outdir>",
		Short: "Rebuild the certification package when inputs change",
		Long: `Watch runs the full clean, augment, and package pipeline whenever the
swagger spec or the connector config changes, writing the artifacts to
the output directory. It runs an initial build on startup and keeps
running until interrupted.`,
		Example: `  certkit watch swagger.yaml connector-config.yaml build/package`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0], args[1], args[2], debounce)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce,
		"Quiet period after a change before rebuilding")

	return cmd
}

func runWatch(cmd *cobra.Command, swaggerPath, configPath, outDir string, debounce time.Duration) error {
	cfg := log.FromEnv()
	if shared.GetVerbose() {
		cfg.Level = "debug"
	}
	logger := log.New(cfg)

	build := func(ctx context.Context, runID string) error {
		return buildPackage(ctx, swaggerPath, configPath, outDir, log.WithRunID(logger, runID))
	}

	watcher, err := watch.NewWatcher([]string{swaggerPath, configPath}, build, logger)
	if err != nil {
		return shared.NewProcessingError("watch failed", err)
	}
	defer watcher.Close()
	watcher.SetDebounce(debounce)

	if !shared.GetQuiet() {
		cmd.Println(shared.RenderOK(fmt.Sprintf("Watching %s and %s", swaggerPath, configPath)))
		cmd.Println(shared.Muted.Render("Press Ctrl+C to stop"))
	}

	if err := watcher.Run(cmd.Context()); err != nil && cmd.Context().Err() == nil {
		return shared.NewProcessingError("watch failed", err)
	}
	return nil
}

// buildPackage runs the clean, augment, package pipeline once.
func buildPackage(ctx context.Context, swaggerPath, configPath, outDir string, logger *slog.Logger) error {
	cfg, err := connector.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load connector config: %w", err)
	}

	doc, _, err := document.Load(swaggerPath)
	if err != nil {
		return fmt.Errorf("failed to load spec: %w", err)
	}

	endpoints := swagger.DefaultEndpoints
	if len(cfg.Endpoints) > 0 {
		endpoints = cfg.Endpoints
	}

	cleaner := swagger.NewCleaner(endpoints, cfg.Transforms, logger)
	cleaned, report, err := cleaner.Clean(ctx, doc)
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}
	for _, warning := range report.Warnings {
		logger.Warn(warning)
	}

	augmentReport, err := trigger.Augment(cleaned)
	if err != nil {
		return fmt.Errorf("augment failed: %w", err)
	}
	for _, warning := range augmentReport.Warnings {
		logger.Warn(warning)
	}

	if _, err := packager.New(logger).Build(cleaned, cfg, outDir); err != nil {
		return fmt.Errorf("package failed: %w", err)
	}

	logger.Info("package rebuilt",
		log.String(log.InputKey, swaggerPath),
		log.String(log.OutputKey, outDir),
		log.Int("endpoints", report.Kept))
	return nil
}
