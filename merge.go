package paramerge

import (
	"bytes"
	"fmt"

	"github.com/opendsc/paramerge/codec"
	"github.com/opendsc/paramerge/debug"
	"github.com/opendsc/paramerge/ir"
)

// Merge folds an ordered list of raw YAML or JSON documents into one
// document, lowest precedence first, and serializes the result per the
// options. Sources are folded in the order given: callers wanting
// numeric precedence to control the fold must pre-sort (or use
// [MergeWithProvenance], which sorts).
//
// The only failure is a malformed source; the error identifies which
// input index failed and wraps [codec.ErrFormat].
func Merge(sources []string, opts ...Option) (string, error) {
	cfg := newConfig(opts)
	nodes := make([]*ir.Node, len(sources))
	for i, src := range sources {
		node, err := codec.Parse([]byte(src))
		if err != nil {
			return "", fmt.Errorf("source %d: %w", i, err)
		}
		nodes[i] = node
	}
	merged := Fold(nodes)
	buf := &bytes.Buffer{}
	if err := codec.Encode(merged, buf, cfg.encodeOpts()...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Fold merges parsed documents left to right under the key-union /
// replace rule. Input trees are never mutated or aliased: every
// contributed subtree is cloned on insert.
func Fold(sources []*ir.Node) *ir.Node {
	acc := ir.NewObject()
	for _, src := range sources {
		if src == nil || src.Type != ir.ObjectType {
			continue
		}
		foldInto(acc, src)
	}
	return acc
}

// foldInto applies one source's root mapping to the accumulator,
// recursing wherever both sides hold mappings and replacing wholesale
// everywhere else. Sequences are never merged element-by-element.
func foldInto(acc, src *ir.Node) {
	for i, key := range src.Fields {
		sv := src.Values[i]
		cur := acc.Get(key)
		switch {
		case cur == nil:
			acc.Set(key, sv.Clone())
		case cur.Type == ir.ObjectType && sv.Type == ir.ObjectType:
			foldInto(cur, sv)
		default:
			if debug.Merge() {
				debug.Logf("merge: %s replaces %s at %q\n", sv.Type, cur.Type, key)
			}
			acc.Set(key, sv.Clone())
		}
	}
}
