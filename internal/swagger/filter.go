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

package swagger

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FilterEndpoints keeps only the operations whose "/path/method" key is in
// the allow-list. Path-level properties that are not HTTP verbs (shared
// parameters, $ref, extensions) are preserved, and a path carrying them
// survives even when all of its operations are filtered out; only paths
// left completely empty are dropped. An empty allow-list keeps the whole
// document.
//
// Allow-list entries containing a '*' are treated as doublestar glob
// patterns. Entries without wildcards compare literally, because Swagger
// path templates contain braces that glob syntax would otherwise
// interpret as alternations.
func FilterEndpoints(doc map[string]any, keep []string) map[string]any {
	if len(keep) == 0 {
		return doc
	}

	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return doc
	}

	filtered := map[string]any{}
	for path, item := range paths {
		methods, ok := item.(map[string]any)
		if !ok {
			continue
		}

		kept := map[string]any{}
		for method, operation := range methods {
			if !IsHTTPMethod(method) {
				// Keep non-HTTP method properties (like parameters)
				kept[method] = operation
				continue
			}
			if matchEndpoint(keep, path, method) {
				kept[method] = operation
			}
		}

		if len(kept) > 0 {
			filtered[path] = kept
		}
	}

	doc["paths"] = filtered
	return doc
}

// matchEndpoint checks both the verbatim method casing and its lowercase
// form, matching the allow-list format "/path/method".
func matchEndpoint(keep []string, path, method string) bool {
	keys := []string{path + "/" + method, path + "/" + strings.ToLower(method)}
	for _, pattern := range keep {
		for _, key := range keys {
			if pattern == key {
				return true
			}
			if strings.Contains(pattern, "*") {
				if ok, err := doublestar.Match(pattern, key); err == nil && ok {
					return true
				}
			}
		}
	}
	return false
}

// CountEndpoints returns the number of operations in the document.
func CountEndpoints(doc map[string]any) int {
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return 0
	}

	count := 0
	for _, item := range paths {
		methods, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for method := range methods {
			if IsHTTPMethod(method) {
				count++
			}
		}
	}
	return count
}
