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
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	whitespaceRe      = regexp.MustCompile(`\s+`)
	trailingNonAlnum  = regexp.MustCompile(`[^a-zA-Z0-9]+$`)
	restrictedWordRes = compileRestrictedWords()
)

func compileRestrictedWords() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(restrictedTitleWords))
	for _, word := range restrictedTitleWords {
		res = append(res, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(word)+`\b`))
	}
	return res
}

// NormalizeInfo rewrites the info section to meet the certification
// checklist:
//
//   - restricted words removed from the title, whitespace collapsed, and
//     the title trimmed to end on an alphanumeric character
//   - a description of at least 30 characters (Fulcrum default when the
//     spec has none)
//   - a contact block
//   - x-ms-connector-metadata moved out of info and ensured at the
//     document root
func NormalizeInfo(doc map[string]any) map[string]any {
	info, ok := doc["info"].(map[string]any)
	if !ok {
		return doc
	}

	if title, ok := info["title"].(string); ok {
		info["title"] = CleanTitle(title)
	}

	if description, ok := info["description"].(string); !ok || utf8.RuneCountInString(description) < 30 {
		info["description"] = defaultInfoDescription
	}

	if _, ok := info["contact"]; !ok {
		info["contact"] = defaultContact()
	}

	// x-ms-connector-metadata belongs at the root, not inside info
	delete(info, "x-ms-connector-metadata")
	if _, ok := doc["x-ms-connector-metadata"]; !ok {
		doc["x-ms-connector-metadata"] = defaultConnectorMetadata()
	}

	return doc
}

// CleanTitle strips the restricted words from a connector title and trims
// it to end with an alphanumeric character.
func CleanTitle(title string) string {
	for _, re := range restrictedWordRes {
		title = re.ReplaceAllString(title, "")
	}
	title = strings.TrimSpace(whitespaceRe.ReplaceAllString(title, " "))
	return trailingNonAlnum.ReplaceAllString(title, "")
}
