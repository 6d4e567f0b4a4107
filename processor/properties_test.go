/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/swaggerfilter/registry"
	"github.com/tidwall/gjson"
	"pgregory.net/rapid"
)

type genDefinition struct {
	name string
	body string
}

var (
	namespaces = []string{"io.x.", "io.y.", "io.xy.", "io.", ""}
	prefixes   = []string{"io.x.", "io.y.", "io.", "io.x"}
	bodies     = []string{
		`{}`,
		`{"type": "object"}`,
		`{"allOf": [{"$ref": "#/definitions/io.x.Base"}]}`,
		`{"allOf": "broken", "description": "d"}`,
		`{"properties": {"a": {"type": "array", "items": {"type": "string"}}}, "required": ["a"]}`,
	}
)

func definitionGen() *rapid.Generator[genDefinition] {
	return rapid.Custom(func(t *rapid.T) genDefinition {
		return genDefinition{
			name: rapid.SampledFrom(namespaces).Draw(t, "namespace") +
				rapid.StringMatching(`[A-Z][a-zA-Z]{0,6}`).Draw(t, "name"),
			body: rapid.SampledFrom(bodies).Draw(t, "body"),
		}
	})
}

func buildDocument(t require.TestingT, defs []genDefinition) []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"swagger": "2.0", "definitions": {`)
	for i, d := range defs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(d.name)
		require.NoError(t, err)
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(d.body)
	}
	buf.WriteString(`}, "info": {"title": "t"}}`)
	return buf.Bytes()
}

func TestProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		defs := rapid.SliceOfDistinct(definitionGen(), func(d genDefinition) string { return d.name }).Draw(t, "definitions")
		prefix := rapid.SampledFrom(prefixes).Draw(t, "prefix")

		var leaves []string
		for _, d := range defs {
			if rapid.Bool().Draw(t, "leaf:"+d.name) {
				leaves = append(leaves, d.name)
			}
		}

		p, err := New(prefix, WithLeafTypes(registry.NewSet(leaves...)))
		require.NoError(t, err)

		doc := buildDocument(t, defs)
		out, stats, err := p.Process(doc)
		require.NoError(t, err)

		var want []string
		for _, d := range defs {
			if strings.HasPrefix(d.name, prefix) {
				want = append(want, d.name)
			}
		}

		// prefix retention, in input order
		root := gjson.ParseBytes(out)
		got := keysOf(root.Get("definitions"))
		assert.Equal(t, want, got)
		assert.Equal(t, len(defs), stats.Total)
		assert.Equal(t, len(want), stats.Kept)
		assert.Equal(t, len(defs)-len(want), stats.Dropped)

		// top-level passthrough
		assert.Equal(t, []string{"swagger", "definitions", "info"}, keysOf(root))
		assert.JSONEq(t, `{"title": "t"}`, root.Get("info").Raw)

		// allOf clearing and non-leaf passthrough
		outDefs := root.Get("definitions")
		for _, d := range defs {
			if !strings.HasPrefix(d.name, prefix) {
				continue
			}
			def := memberOf(outDefs, d.name)
			if p.opts.LeafTypes.Contains(d.name) {
				assert.Equal(t, "[]", def.Get("allOf").Raw)
				continue
			}
			assert.JSONEq(t, d.body, def.Raw)
		}

		// idempotence
		again, _, err := p.Process(out)
		require.NoError(t, err)
		assert.Equal(t, string(out), string(again))
	})
}
