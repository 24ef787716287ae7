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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validDoc returns a document that passes validation without errors.
func validDoc() map[string]any {
	return map[string]any{
		"swagger": "2.0",
		"info": map[string]any{
			"title":       "Fulcrum",
			"description": "Create, find, and update Fulcrum records from your flows.",
			"contact": map[string]any{
				"name":  "Fulcrum Support",
				"url":   "https://www.fulcrumapp.com/support",
				"email": "support@fulcrumapp.com",
			},
		},
		"paths": map[string]any{
			"/v2/records.json": map[string]any{
				"get": map[string]any{
					"operationId": "getRecords",
					"summary":     "Get records",
					"responses": map[string]any{
						"200": map[string]any{
							"description": "OK",
							"schema":      map[string]any{"$ref": "#/definitions/RecordList"},
						},
					},
				},
			},
			"/v2/webhooks.json": map[string]any{
				"post": map[string]any{
					"operationId":  "OnFulcrumEvent",
					"summary":      "When an event occurs",
					"x-ms-trigger": "single",
					"responses": map[string]any{
						"200": map[string]any{"description": "OK"},
					},
				},
			},
		},
		"definitions": map[string]any{
			"RecordList": map[string]any{"type": "object"},
		},
	}
}

func TestValidateCleanDocument(t *testing.T) {
	issues, err := Validate(validDoc())
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.False(t, HasErrors(issues))
}

func TestValidateWrongSwaggerVersion(t *testing.T) {
	doc := validDoc()
	doc["swagger"] = "3.0"

	issues, err := Validate(doc)
	require.NoError(t, err)
	assert.True(t, HasErrors(issues))
	assert.Contains(t, issues[len(issues)-1].Path, "swagger")
}

func TestValidateRestrictedTitleWord(t *testing.T) {
	doc := validDoc()
	doc["info"].(map[string]any)["title"] = "Fulcrum API"

	issues, err := Validate(doc)
	require.NoError(t, err)
	require.True(t, HasErrors(issues))

	found := false
	for _, issue := range issues {
		if issue.Path == "info.title" && strings.Contains(issue.Message, `"api"`) {
			found = true
		}
	}
	assert.True(t, found, "expected a restricted word finding for info.title")
}

func TestValidateDescriptionLength(t *testing.T) {
	doc := validDoc()
	doc["info"].(map[string]any)["description"] = "Too short."

	issues, err := Validate(doc)
	require.NoError(t, err)
	assert.True(t, HasErrors(issues))

	doc = validDoc()
	doc["info"].(map[string]any)["description"] = strings.Repeat("x", 501)
	issues, err = Validate(doc)
	require.NoError(t, err)
	assert.True(t, HasErrors(issues))
}

func TestValidateDescriptionCountsRunes(t *testing.T) {
	// 30 runes but well over 30 bytes
	doc := validDoc()
	doc["info"].(map[string]any)["description"] = strings.Repeat("ü", 30)
	issues, err := Validate(doc)
	require.NoError(t, err)
	assert.False(t, HasErrors(issues))

	// 500 runes, over 500 bytes: still within the upper bound
	doc = validDoc()
	doc["info"].(map[string]any)["description"] = strings.Repeat("ü", 500)
	issues, err = Validate(doc)
	require.NoError(t, err)
	assert.False(t, HasErrors(issues))
}

func TestValidateMissingContactField(t *testing.T) {
	doc := validDoc()
	delete(doc["info"].(map[string]any)["contact"].(map[string]any), "email")

	issues, err := Validate(doc)
	require.NoError(t, err)
	require.True(t, HasErrors(issues))
	assert.Equal(t, "info.contact.email", issues[0].Path)
}

func TestValidateDanglingRef(t *testing.T) {
	doc := validDoc()
	delete(doc["definitions"].(map[string]any), "RecordList")

	issues, err := Validate(doc)
	require.NoError(t, err)
	require.True(t, HasErrors(issues))
	assert.Equal(t, "definitions.RecordList", issues[0].Path)
}

func TestValidateDuplicateOperationID(t *testing.T) {
	doc := validDoc()
	paths := doc["paths"].(map[string]any)
	paths["/v2/forms.json"] = map[string]any{
		"get": map[string]any{
			"operationId": "getRecords",
			"summary":     "Get forms",
			"responses": map[string]any{
				"200": map[string]any{"description": "OK"},
			},
		},
	}

	issues, err := Validate(doc)
	require.NoError(t, err)
	assert.True(t, HasErrors(issues))
}

func TestValidateMissingOperationID(t *testing.T) {
	doc := validDoc()
	op := doc["paths"].(map[string]any)["/v2/records.json"].(map[string]any)["get"].(map[string]any)
	delete(op, "operationId")

	issues, err := Validate(doc)
	require.NoError(t, err)
	assert.True(t, HasErrors(issues))
}

func TestValidateNonSuccessResponseIsWarning(t *testing.T) {
	doc := validDoc()
	op := doc["paths"].(map[string]any)["/v2/records.json"].(map[string]any)["get"].(map[string]any)
	op["responses"].(map[string]any)["404"] = map[string]any{"description": "Not Found"}

	issues, err := Validate(doc)
	require.NoError(t, err)
	assert.False(t, HasErrors(issues))
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
}

func TestValidateMissingTriggerIsWarning(t *testing.T) {
	doc := validDoc()
	delete(doc["paths"].(map[string]any), "/v2/webhooks.json")

	issues, err := Validate(doc)
	require.NoError(t, err)
	assert.False(t, HasErrors(issues))
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "x-ms-trigger")
}

func TestValidateAnyOfRejected(t *testing.T) {
	doc := validDoc()
	doc["definitions"].(map[string]any)["Mixed"] = map[string]any{
		"anyOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
		},
	}

	issues, err := Validate(doc)
	require.NoError(t, err)
	require.True(t, HasErrors(issues))

	found := false
	for _, issue := range issues {
		if strings.Contains(issue.Message, "anyOf") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestIssueString(t *testing.T) {
	assert.Equal(t, "info.title: bad", Issue{Severity: SeverityError, Path: "info.title", Message: "bad"}.String())
	assert.Equal(t, "bad", Issue{Severity: SeverityError, Message: "bad"}.String())
}
