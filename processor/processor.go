/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/suparena/swaggerfilter/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

const (
	definitionsKey = "definitions"
	allOfKey       = "allOf"
	indent         = "    "
)

// Stats summarises one filtering pass.
type Stats struct {
	Total   int // definitions seen in the input
	Kept    int // definitions whose name carries the prefix
	Dropped int // definitions removed
	Cleared int // kept leaf definitions whose allOf was emptied
}

// Processor filters the definitions of a swagger document down to a single
// name prefix.
type Processor struct {
	prefix string
	opts   Options
}

// New creates a Processor for the given prefix. The prefix must not be empty.
func New(prefix string, opts ...Option) (*Processor, error) {
	if prefix == "" {
		return nil, errors.NewMissingArgumentError()
	}

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Processor{
		prefix: prefix,
		opts:   options,
	}, nil
}

// Prefix returns the definition prefix the processor retains.
func (p *Processor) Prefix() string {
	return p.prefix
}

// Run reads the whole document from in, filters it and writes the rendered
// result to out. Nothing is written to out when an error is returned.
func (p *Processor) Run(in io.Reader, out io.Writer) (Stats, error) {
	doc, err := io.ReadAll(in)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to read input: %w", err)
	}

	res, stats, err := p.Process(doc)
	if err != nil {
		return stats, err
	}

	if _, err := out.Write(res); err != nil {
		return stats, fmt.Errorf("failed to write output: %w", err)
	}
	return stats, nil
}

// Process filters doc and returns the rendered document, terminated by a
// newline.
func (p *Processor) Process(doc []byte) ([]byte, Stats, error) {
	var stats Stats

	if err := validate(doc); err != nil {
		return nil, stats, err
	}

	root := gjson.ParseBytes(doc)
	if !root.IsObject() {
		return nil, stats, errors.NewMalformedSchemaError("", "document is not an object")
	}

	found := false
	filtered, err := rewriteObject(root, func(key, value gjson.Result) ([]byte, bool, error) {
		if key.String() != definitionsKey {
			return []byte(value.Raw), true, nil
		}
		found = true
		defs, err := p.filterDefinitions(value, &stats)
		return defs, true, err
	})
	if err != nil {
		return nil, stats, err
	}
	if !found {
		return nil, stats, errors.NewMalformedSchemaError(definitionsKey, "is missing")
	}

	p.opts.Logger.WithFields(logrus.Fields{
		"prefix":  p.prefix,
		"total":   stats.Total,
		"kept":    stats.Kept,
		"dropped": stats.Dropped,
		"cleared": stats.Cleared,
	}).Debug("filtered definitions")

	if p.opts.StatsHandler != nil {
		p.opts.StatsHandler(stats)
	}

	return p.render(filtered), stats, nil
}

// filterDefinitions keeps the members of defs whose name carries the prefix
// and severs the inheritance of leaf types.
func (p *Processor) filterDefinitions(defs gjson.Result, stats *Stats) ([]byte, error) {
	if !defs.IsObject() {
		return nil, errors.NewMalformedSchemaError(definitionsKey, "is not an object")
	}

	return rewriteObject(defs, func(key, value gjson.Result) ([]byte, bool, error) {
		name := key.String()
		stats.Total++

		if !strings.HasPrefix(name, p.prefix) {
			stats.Dropped++
			p.opts.Logger.WithField("definition", name).Trace("dropping definition")
			return nil, false, nil
		}
		stats.Kept++

		if !p.opts.LeafTypes.Contains(name) {
			return []byte(value.Raw), true, nil
		}

		cleared, err := clearAllOf(name, value)
		if err != nil {
			return nil, false, err
		}
		stats.Cleared++
		p.opts.Logger.WithField("definition", name).Trace("cleared allOf")
		return cleared, true, nil
	})
}

// clearAllOf sets allOf of a definition to an empty list. An existing allOf
// keeps its position; a missing one is appended.
func clearAllOf(name string, def gjson.Result) ([]byte, error) {
	if !def.IsObject() {
		return nil, errors.NewMalformedSchemaError(definitionsKey+"."+name, "is not an object")
	}

	seen := false
	out, err := rewriteObject(def, func(key, value gjson.Result) ([]byte, bool, error) {
		if key.String() != allOfKey {
			return []byte(value.Raw), true, nil
		}
		seen = true
		return []byte("[]"), true, nil
	})
	if err != nil || seen {
		return out, err
	}

	out = out[:len(out)-1]
	if len(out) > 1 {
		out = append(out, ',')
	}
	out = append(out, `"`+allOfKey+`":[]}`...)
	return out, nil
}

// memberFunc returns the raw value to emit for a member, or keep=false to
// drop it.
type memberFunc func(key, value gjson.Result) (raw []byte, keep bool, err error)

type member struct {
	key, value gjson.Result
}

// membersOf snapshots the members of obj in document order. Duplicate keys
// collapse the way a JSON object decodes into a map: the last value wins and
// keeps the position of the first occurrence.
func membersOf(obj gjson.Result) []member {
	var members []member
	index := make(map[string]int)
	obj.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if i, ok := index[name]; ok {
			members[i].value = value
			return true
		}
		index[name] = len(members)
		members = append(members, member{key: key, value: value})
		return true
	})
	return members
}

// rewriteObject re-emits the members of obj in their original order,
// passing each through fn. The member list is collected before fn runs.
func rewriteObject(obj gjson.Result, fn memberFunc) ([]byte, error) {
	members := membersOf(obj)

	var buf bytes.Buffer
	buf.Grow(len(obj.Raw))
	buf.WriteByte('{')

	n := 0
	for _, m := range members {
		raw, keep, err := fn(m.key, m.value)
		if err != nil {
			return nil, err
		}
		if !keep {
			continue
		}
		if n > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(m.key.Raw)
		buf.WriteByte(':')
		buf.Write(raw)
		n++
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p *Processor) render(doc []byte) []byte {
	out := pretty.PrettyOptions(doc, &pretty.Options{
		// Width 0 keeps every array element on its own line.
		Width:    0,
		Indent:   indent,
		SortKeys: false,
	})
	if !bytes.HasSuffix(out, []byte{'\n'}) {
		out = append(out, '\n')
	}
	return out
}

// validate reports whether doc is well-formed JSON. gjson only answers yes or
// no, so the decoder is consulted for a diagnostic when it says no.
func validate(doc []byte) error {
	if gjson.ValidBytes(doc) {
		return nil
	}

	var raw json.RawMessage
	if err := json.Unmarshal(doc, &raw); err != nil {
		return errors.NewInvalidJSONError(err)
	}
	return errors.NewInvalidJSONError(nil)
}
