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

// Package document provides generic JSON-tree helpers for Swagger documents.
//
// Documents are held as map[string]any / []any trees regardless of whether
// they arrived as YAML or JSON, so transformation passes can rewrite nodes
// without knowing the full Swagger schema and without losing vendor
// extensions. YAML input is routed through sigs.k8s.io/yaml so keys and
// numbers carry JSON semantics.
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sigsyaml "sigs.k8s.io/yaml"
)

// Format identifies the serialization format of a document file.
type Format string

const (
	// FormatYAML is used for .yaml and .yml files.
	FormatYAML Format = "yaml"
	// FormatJSON is the default for everything else.
	FormatJSON Format = "json"
)

// DetectFormat picks the format from a file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes raw bytes into a document tree.
func Parse(data []byte, format Format) (map[string]any, error) {
	doc := map[string]any{}
	switch format {
	case FormatYAML:
		if err := sigsyaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}
	return doc, nil
}

// Marshal encodes a document tree in the given format.
// JSON output is indented with two spaces to match the certification
// artifacts the original tooling produced.
func Marshal(doc map[string]any, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return sigsyaml.Marshal(doc)
	default:
		return json.MarshalIndent(doc, "", "  ")
	}
}

// Load reads a document file, detecting the format from its extension.
func Load(path string) (map[string]any, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	format := DetectFormat(path)
	doc, err := Parse(data, format)
	if err != nil {
		return nil, format, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, format, nil
}

// Save writes a document file in the given format.
func Save(path string, doc map[string]any, format Format) error {
	data, err := Marshal(doc, format)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	if format == FormatJSON {
		data = append(data, '\n')
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Clone returns a deep copy of a document node. Map and slice nodes are
// copied; primitives are returned as-is.
func Clone(node any) any {
	switch v := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			out[key] = Clone(value)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Clone(item)
		}
		return out
	default:
		return node
	}
}

// StripKeys returns a copy of the tree with the named keys removed from
// every map node.
func StripKeys(node any, keys ...string) any {
	drop := make(map[string]bool, len(keys))
	for _, key := range keys {
		drop[key] = true
	}
	return stripKeys(node, drop)
}

func stripKeys(node any, drop map[string]bool) any {
	switch v := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			if drop[key] {
				continue
			}
			out[key] = stripKeys(value, drop)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = stripKeys(item, drop)
		}
		return out
	default:
		return node
	}
}

// StripRefSiblings returns a copy of the tree where objects carrying a
// $ref keep only the $ref and x-* extension keys. The Swagger spec makes
// sibling properties next to $ref undefined behavior, and the
// certification validator rejects them.
func StripRefSiblings(node any) any {
	switch v := node.(type) {
	case map[string]any:
		if _, ok := v["$ref"]; ok {
			out := map[string]any{"$ref": v["$ref"]}
			for key, value := range v {
				if strings.HasPrefix(key, "x-") {
					out[key] = value
				}
			}
			return out
		}
		out := make(map[string]any, len(v))
		for key, value := range v {
			out[key] = StripRefSiblings(value)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = StripRefSiblings(item)
		}
		return out
	default:
		return node
	}
}

// CollectRefs gathers the names of every $ref target under the given
// prefix (for Swagger 2.0, "#/definitions/").
func CollectRefs(node any, prefix string) map[string]bool {
	used := map[string]bool{}
	collectRefs(node, prefix, used)
	return used
}

func collectRefs(node any, prefix string, used map[string]bool) {
	switch v := node.(type) {
	case map[string]any:
		if ref, ok := v["$ref"].(string); ok && strings.HasPrefix(ref, prefix) {
			used[strings.TrimPrefix(ref, prefix)] = true
		}
		for _, value := range v {
			collectRefs(value, prefix, used)
		}
	case []any:
		for _, item := range v {
			collectRefs(item, prefix, used)
		}
	}
}
