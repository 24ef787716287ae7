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

// RequireWebhookURL marks the callback URL required inside the
// WebhookRequest definition and drops the minProperties keyword the
// certification validator does not support. The field path is specific to
// the Fulcrum API's webhook registration body.
func RequireWebhookURL(doc map[string]any) map[string]any {
	definitions, ok := doc["definitions"].(map[string]any)
	if !ok {
		return doc
	}

	webhookDef, ok := definitions["WebhookRequest"].(map[string]any)
	if !ok {
		return doc
	}
	properties, ok := webhookDef["properties"].(map[string]any)
	if !ok {
		return doc
	}
	webhook, ok := properties["webhook"].(map[string]any)
	if !ok {
		return doc
	}

	if webhookProps, ok := webhook["properties"].(map[string]any); ok {
		if _, ok := webhookProps["url"]; ok {
			required, _ := webhook["required"].([]any)
			if !containsString(required, "url") {
				webhook["required"] = append(required, "url")
			}
		}
	}

	delete(webhook, "minProperties")
	return doc
}

func containsString(list []any, want string) bool {
	for _, item := range list {
		if s, ok := item.(string); ok && s == want {
			return true
		}
	}
	return false
}
