/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package swaggerfilter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/swaggerfilter/errors"
	"github.com/suparena/swaggerfilter/processor"
	"github.com/suparena/swaggerfilter/registry"
	"github.com/tidwall/gjson"
)

func TestFilter(t *testing.T) {
	in := `{
		"swagger": "2.0",
		"definitions": {
			"io.numaproj.numaflow.v1alpha1.ServeSink": {"allOf": [{"$ref": "#/definitions/io.k8s.api.core.v1.Container"}]},
			"io.k8s.api.core.v1.Container": {"type": "object"},
			"io.numaproj.numaflow.v1alpha1.Vertex": {"type": "object"}
		}
	}`

	out, err := Filter([]byte(in), "io.numaproj.numaflow.v1alpha1.")
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"swagger": "2.0",
		"definitions": {
			"io.numaproj.numaflow.v1alpha1.ServeSink": {"allOf": []},
			"io.numaproj.numaflow.v1alpha1.Vertex": {"type": "object"}
		}
	}`, string(out))
	assert.True(t, strings.HasSuffix(string(out), "\n"))
	assert.True(t, strings.HasPrefix(string(out), "{\n    \"swagger\": \"2.0\","))
}

func TestFilter_WithOptions(t *testing.T) {
	in := `{"definitions": {"io.x.Foo": {"allOf": [{"$ref": "#/definitions/Base"}]}, "io.x.Blackhole": {}, "io.y.Bar": {}}}`

	out, err := Filter([]byte(in), "io.x.", processor.WithLeafTypes(registry.NewSet("io.x.Blackhole")))
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"definitions": {"io.x.Foo": {"allOf": [{"$ref": "#/definitions/Base"}]}, "io.x.Blackhole": {"allOf": []}}}`,
		string(out))
	assert.Equal(t, "[]", gjson.GetBytes(out, `definitions.io\.x\.Blackhole.allOf`).Raw)
}

func TestFilter_Errors(t *testing.T) {
	_, err := Filter([]byte(`{"definitions": {}}`), "")
	assert.True(t, errors.IsMissingArgument(err))

	_, err = Filter([]byte(`not valid json`), "io.x.")
	assert.True(t, errors.IsInvalidJSON(err))

	_, err = Filter([]byte(`{"other": 1}`), "io.x.")
	assert.True(t, errors.IsMalformedSchema(err))
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.String(), "swaggerfilter version "+Version+"\n")
}
