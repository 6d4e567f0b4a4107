/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package swaggerfilter

import (
	"github.com/suparena/swaggerfilter/processor"
)

// Filter keeps the definitions of doc whose name starts with prefix, clears
// allOf on the built-in leaf types and returns the document indented with
// four spaces. Key order of the input is preserved.
func Filter(doc []byte, prefix string, opts ...processor.Option) ([]byte, error) {
	p, err := processor.New(prefix, opts...)
	if err != nil {
		return nil, err
	}

	out, _, err := p.Process(doc)
	return out, err
}
