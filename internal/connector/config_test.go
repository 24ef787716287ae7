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

package connector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
publisher: Spatial Networks
displayName: Fulcrum
description: |
  Fulcrum is a mobile data collection platform.
iconBrandColor: "#aa1111"
supportEmail: support@fulcrumapp.com
authentication:
  type: apiKey
  displayName: API Token
  description: Your Fulcrum API token
  tooltip: Find it under Settings > API
prerequisites:
  - A Fulcrum account
knownLimitations:
  - Attachments above 50MB are not supported
gettingStarted: |
  Create an API token first.
endpoints:
  - /v2/records.json/get
transforms:
  - 'del(.basePath)'
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(validConfig))
	require.NoError(t, err)

	assert.Equal(t, "Spatial Networks", cfg.Publisher)
	assert.Equal(t, "Fulcrum", cfg.DisplayName)
	assert.Equal(t, "apiKey", cfg.Authentication.Type)
	assert.Equal(t, []string{"/v2/records.json/get"}, cfg.Endpoints)
	assert.Equal(t, []string{"del(.basePath)"}, cfg.Transforms)
}

func TestParseMissingFields(t *testing.T) {
	_, err := Parse([]byte("publisher: Spatial Networks\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, "displayName")
	assert.ErrorContains(t, err, "knownLimitations")
}

func TestParseMissingAuthFields(t *testing.T) {
	config := `
publisher: Spatial Networks
displayName: Fulcrum
description: Mobile data collection.
iconBrandColor: "#aa1111"
supportEmail: support@fulcrumapp.com
authentication:
  type: apiKey
prerequisites: [account]
knownLimitations: [none]
`
	_, err := Parse([]byte(config))
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, "authentication")
	assert.ErrorContains(t, err, "displayName")
}

func TestParseUnknownFieldRejected(t *testing.T) {
	_, err := Parse([]byte(validConfig + "publsher: typo\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "connector-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Fulcrum", cfg.DisplayName)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestParseRejectsBadTransform(t *testing.T) {
	_, err := Parse([]byte(validConfig + "transforms:\n  - 'del(.basePath'\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "transform")
}

func TestParseAcceptsValidTransforms(t *testing.T) {
	cfg, err := Parse([]byte(validConfig + "transforms:\n  - 'del(.basePath)'\n"))
	require.NoError(t, err)
	assert.Len(t, cfg.Transforms, 1)
}

func TestAuthenticationDefaults(t *testing.T) {
	auth := Authentication{Description: "token description"}
	assert.Equal(t, "api_key", auth.GetParameterName())
	assert.Equal(t, "token description", auth.GetTooltip())

	auth.ParameterName = "token"
	auth.Tooltip = "a tooltip"
	assert.Equal(t, "token", auth.GetParameterName())
	assert.Equal(t, "a tooltip", auth.GetTooltip())
}
