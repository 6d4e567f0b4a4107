/*
Package registry holds the fixed allow-list of leaf definitions.

A leaf definition is a type whose allOf composition list must be emptied
before the filtered schema is handed to the code generator:

	leaves := registry.LeafTypes()
	leaves.Contains("io.numaproj.numaflow.v1alpha1.Blackhole") // true
	leaves.Contains("io.numaproj.numaflow.v1alpha1.Pipeline")  // false

Membership is exact string equality; no prefix or pattern matching is done.
The list is compiled in and cannot be changed at runtime. Callers that need a
different set, such as tests, build their own with NewSet and hand it to the
processor.
*/
package registry
