/*
Package swaggerfilter extracts a subset of a swagger document for code
generation.

A schema generator emits the full document, including every Kubernetes type
it references. The code generator downstream only needs the project's own
definitions, and it fails on a handful of leaf types that inherit through
allOf. swaggerfilter sits between the two:

	gen-openapi | swaggerfilter io.numaproj.numaflow.v1alpha1. > swagger.json

The filter:
  - keeps only definitions whose name starts with the prefix
  - sets allOf to [] on a fixed set of leaf types
  - passes every other top-level key through unchanged
  - preserves key order and indents with four spaces

Library usage:

	out, err := swaggerfilter.Filter(doc, "io.numaproj.numaflow.v1alpha1.")
	if err != nil {
	    // see package errors for the failure taxonomy
	}

The processor package exposes the same pass with options such as a custom
leaf-type set or a logger.
*/
package swaggerfilter
