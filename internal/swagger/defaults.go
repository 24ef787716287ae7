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

// DefaultEndpoints is the Fulcrum connector allow-list applied when the
// config does not provide one. Format: "/path/method".
var DefaultEndpoints = []string{
	"/v2/attachments/{attachment_id}/get",
	"/v2/attachments/get",
	"/v2/audio.json/get",
	"/v2/audio/{audio_id}.mp4/get",
	"/v2/photos.json/get",
	"/v2/photos/{photo_id}.jpg/get",
	"/v2/photos/{photo_id}.json/get",
	"/v2/query/post",
	"/v2/records.json/get",
	"/v2/records.json/post",
	"/v2/records/{record_id}.json/delete",
	"/v2/records/{record_id}.json/get",
	"/v2/records/{record_id}.json/patch",
	"/v2/records/{record_id}.json/put",
	"/v2/records/{record_id}/history.json/get",
	"/v2/reports.json/post",
	"/v2/reports/{report_id}.pdf/get",
	"/v2/signatures.json/get",
	"/v2/signatures/{signature_id}.json/get",
	"/v2/signatures/{signature_id}.png/get",
	"/v2/videos.json/get",
	"/v2/videos/{video_id}.mp4/get",
	"/v2/webhooks.json/post",
	"/v2/webhooks/{webhook_id}.json/delete",
}

// restrictedTitleWords may not appear in the info title per the
// certification checklist.
var restrictedTitleWords = []string{"api", "connector"}

// defaultInfoDescription is used when the spec has no description or one
// shorter than the 30-character certification minimum.
const defaultInfoDescription = "Fulcrum is a mobile data collection platform for field teams. " +
	"This connector enables integration with Fulcrum's API for managing field data, photos, videos, and more."

// defaultContact fills in the required info.contact block.
func defaultContact() map[string]any {
	return map[string]any{
		"name":  "Fulcrum Support",
		"url":   "https://www.fulcrumapp.com/support",
		"email": "support@fulcrumapp.com",
	}
}

// defaultConnectorMetadata is the root-level x-ms-connector-metadata block.
func defaultConnectorMetadata() []any {
	return []any{
		map[string]any{
			"propertyName":  "Website",
			"propertyValue": "https://www.fulcrumapp.com",
		},
		map[string]any{
			"propertyName":  "Privacy policy",
			"propertyValue": "https://www.fulcrumapp.com/privacy",
		},
		map[string]any{
			"propertyName":  "Categories",
			"propertyValue": "Productivity;Data",
		},
	}
}

// httpMethods is the fixed verb set that distinguishes operations from
// path-level properties like "parameters".
var httpMethods = map[string]bool{
	"get":     true,
	"post":    true,
	"put":     true,
	"delete":  true,
	"patch":   true,
	"options": true,
	"head":    true,
}

// IsHTTPMethod reports whether a path-item key is an HTTP verb.
func IsHTTPMethod(key string) bool {
	return httpMethods[strings.ToLower(key)]
}
