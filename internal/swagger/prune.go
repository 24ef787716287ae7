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
	"sort"

	"github.com/fulcrumapp/certkit/internal/document"
)

// definitionsPrefix is the Swagger 2.0 local reference prefix.
const definitionsPrefix = "#/definitions/"

// PruneDefinitions removes definitions that no $ref in the document points
// at, returning the sorted names of what was removed.
//
// A definition referenced only by another pruned definition survives one
// call; the original tooling behaves the same way, and in practice the
// endpoint filter runs first so chains of orphans do not occur.
func PruneDefinitions(doc map[string]any) (map[string]any, []string) {
	definitions, ok := doc["definitions"].(map[string]any)
	if !ok {
		return doc, nil
	}

	used := document.CollectRefs(doc, definitionsPrefix)

	kept := map[string]any{}
	var removed []string
	for name, definition := range definitions {
		if used[name] {
			kept[name] = definition
		} else {
			removed = append(removed, name)
		}
	}

	doc["definitions"] = kept
	sort.Strings(removed)
	return doc, removed
}
