/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import "sort"

// Set is an immutable set of fully-qualified definition names.
type Set struct {
	names map[string]struct{}
}

// NewSet builds a Set from the given names. Duplicates collapse.
func NewSet(names ...string) Set {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return Set{names: m}
}

// Contains reports whether name is in the set. Matching is exact.
func (s Set) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of names in the set.
func (s Set) Len() int {
	return len(s.names)
}

// Names returns the members in lexical order.
func (s Set) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// leafTypes are definitions whose inheritance is severed before code
// generation; the generator cannot handle allOf on them.
var leafTypes = NewSet(
	"io.numaproj.numaflow.v1alpha1.Blackhole",
	"io.numaproj.numaflow.v1alpha1.Log",
	"io.numaproj.numaflow.v1alpha1.NoStore",
	"io.numaproj.numaflow.v1alpha1.ServeSink",
	"io.numaproj.numaflow.v1alpha1.ServingSource",
)

// LeafTypes returns the fixed allow-list of leaf definitions.
func LeafTypes() Set {
	return leafTypes
}
