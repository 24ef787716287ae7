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

// Package swagger implements the cleaning pipeline that turns a raw
// Fulcrum Swagger 2.0 export into a document the Power Platform
// certification checker accepts.
package swagger

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/fulcrumapp/certkit/internal/document"
	"github.com/fulcrumapp/certkit/internal/jq"
	"github.com/fulcrumapp/certkit/internal/log"
)

// Cleaner runs the ordered transformation passes over a Swagger document.
type Cleaner struct {
	// Endpoints is the "/path/method" allow-list. Empty keeps everything.
	Endpoints []string

	// Transforms holds optional jq expressions applied after the
	// built-in passes. Each must produce a single object.
	Transforms []string

	logger *slog.Logger
	jq     *jq.Executor
}

// Report summarizes what a Clean run did.
type Report struct {
	// Requested is the size of the allow-list (0 when keeping everything).
	Requested int
	// Kept is the number of operations present after cleaning.
	Kept int
	// PrunedDefinitions lists removed unused definitions, sorted.
	PrunedDefinitions []string
	// Warnings holds non-fatal findings, e.g. allow-list entries that
	// matched nothing.
	Warnings []string
}

// NewCleaner creates a Cleaner. A nil logger falls back to slog.Default.
func NewCleaner(endpoints, transforms []string, logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{
		Endpoints:  endpoints,
		Transforms: transforms,
		logger:     log.WithComponent(logger, "cleaner"),
		jq:         jq.NewExecutor(0, 0),
	}
}

// Clean runs every pass in order and returns the rewritten document.
// The input document is not modified.
//
// Pass order matters: error responses go before definition pruning so
// orphaned error models get pruned too, and ref-sibling stripping runs
// after enhancement so it sees the injected extensions.
func (c *Cleaner) Clean(ctx context.Context, doc map[string]any) (map[string]any, *Report, error) {
	report := &Report{Requested: len(c.Endpoints)}

	out := document.Clone(doc).(map[string]any)

	out = FilterEndpoints(out, c.Endpoints)
	c.logger.Debug("filtered endpoints",
		slog.String(log.PassKey, "filter"),
		slog.Int("kept", CountEndpoints(out)))

	out = KeepSuccessResponses(out)

	var pruned []string
	out, pruned = PruneDefinitions(out)
	report.PrunedDefinitions = pruned
	if len(pruned) > 0 {
		c.logger.Debug("pruned unused definitions",
			slog.String(log.PassKey, "prune"),
			slog.Int("count", len(pruned)))
	}

	out = NormalizeInfo(out)
	out = RequireWebhookURL(out)
	out = EnhanceEndpoints(out)
	out = document.StripRefSiblings(out).(map[string]any)
	out = document.StripKeys(out, "anyOf", "oneOf").(map[string]any)

	for _, expression := range c.Transforms {
		result, err := c.jq.Execute(ctx, expression, any(out))
		if err != nil {
			return nil, nil, fmt.Errorf("transform %q failed: %w", expression, err)
		}
		transformed, ok := result.(map[string]any)
		if !ok {
			return nil, nil, fmt.Errorf("transform %q must produce a single object, got %T", expression, result)
		}
		out = transformed
	}

	report.Kept = CountEndpoints(out)
	if report.Requested > 0 && report.Kept < report.Requested {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("only %d of %d requested endpoints were found in the input; run 'certkit endpoints' to list what is available",
				report.Kept, report.Requested))
	}

	return out, report, nil
}

// ListEndpoints returns every "/path/method" operation key in the
// document, sorted, in the quoted allow-list format.
func ListEndpoints(doc map[string]any) []string {
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return nil
	}

	var endpoints []string
	for path, item := range paths {
		methods, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for method := range methods {
			if IsHTTPMethod(method) {
				endpoints = append(endpoints, path+"/"+strings.ToLower(method))
			}
		}
	}

	sort.Strings(endpoints)
	return endpoints
}
