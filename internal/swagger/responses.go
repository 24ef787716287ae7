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

import "strings"

// KeepSuccessResponses drops every non-2xx response from every operation.
// The certification checker warns about multiple response schemas, and the
// connector runtime only surfaces the success shape anyway. Runs before
// definition pruning so orphaned error models get cleaned up with it.
func KeepSuccessResponses(doc map[string]any) map[string]any {
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return doc
	}

	for _, item := range paths {
		methods, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for method, operation := range methods {
			if !IsHTTPMethod(method) {
				continue
			}
			op, ok := operation.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				continue
			}

			filtered := map[string]any{}
			for status, response := range responses {
				if strings.HasPrefix(status, "2") {
					filtered[status] = response
				}
			}
			op["responses"] = filtered
		}
	}

	return doc
}
