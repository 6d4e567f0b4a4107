/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeafTypes(t *testing.T) {
	set := LeafTypes()

	assert.Equal(t, 5, set.Len())
	assert.Equal(t, []string{
		"io.numaproj.numaflow.v1alpha1.Blackhole",
		"io.numaproj.numaflow.v1alpha1.Log",
		"io.numaproj.numaflow.v1alpha1.NoStore",
		"io.numaproj.numaflow.v1alpha1.ServeSink",
		"io.numaproj.numaflow.v1alpha1.ServingSource",
	}, set.Names())
}

func TestLeafTypes_Contains(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"io.numaproj.numaflow.v1alpha1.Blackhole", true},
		{"io.numaproj.numaflow.v1alpha1.ServingSource", true},
		{"io.numaproj.numaflow.v1alpha1.Pipeline", false},
		// exact match only
		{"io.numaproj.numaflow.v1alpha1.Log2", false},
		{"io.numaproj.numaflow.v1alpha1.", false},
		{"Blackhole", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LeafTypes().Contains(tt.name))
		})
	}
}

func TestNewSet(t *testing.T) {
	set := NewSet("b", "a", "b")

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"a", "b"}, set.Names())
	assert.True(t, set.Contains("a"))
	assert.False(t, set.Contains("c"))

	var empty Set
	assert.False(t, empty.Contains("a"))
	assert.Empty(t, empty.Names())
}
