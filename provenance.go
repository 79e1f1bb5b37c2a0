package paramerge

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/opendsc/paramerge/codec"
	"github.com/opendsc/paramerge/debug"
	"github.com/opendsc/paramerge/ir"
)

// Source is one merge input: a named scope's raw parameter document.
// Precedence orders scopes ascending before the fold; ties keep the
// caller's input order.
type Source struct {
	ScopeName  string `json:"scopeName"`
	Precedence int    `json:"precedence"`
	Content    string `json:"content"`
}

// Override records one superseded value in a record's history.
type Override struct {
	ScopeName  string   `json:"scopeName"`
	Precedence int      `json:"precedence"`
	Value      *ir.Node `json:"value"`
}

// Record says which scope last set the leaf at a path and what that
// write replaced. OverriddenValues accumulates the full recorded
// override history, most recent first; it never contains the baseline
// source, whose contributions are not recorded.
type Record struct {
	ScopeName        string     `json:"scopeName"`
	Precedence       int        `json:"precedence"`
	Value            *ir.Node   `json:"value"`
	OverriddenValues []Override `json:"overriddenValues,omitempty"`
}

// Ledger maps dot-joined key paths to provenance records. Paths name
// leaves only: a value that is itself a mapping is tracked through its
// leaves, never at its own path. A key containing a literal '.' is
// indistinguishable from a nesting boundary; the joined form is kept
// for compatibility with existing consumers of the ledger.
type Ledger map[string]*Record

// prunePrefix drops every record strictly under path. Records under a
// path become stale when the value at that path stops being a mapping.
func (l Ledger) prunePrefix(path string) {
	prefix := path + "."
	for p := range l {
		if strings.HasPrefix(p, prefix) {
			delete(l, p)
		}
	}
}

// Result bundles the merged text with its provenance ledger.
type Result struct {
	MergedContent string `json:"mergedContent"`
	Provenance    Ledger `json:"provenance"`
}

// ScopedValue is a parsed document with its scope attribution, ready
// for a provenance fold. Callers of [FoldWithProvenance] must supply
// these in ascending precedence order.
type ScopedValue struct {
	ScopeName  string
	Precedence int
	Value      *ir.Node
}

// MergeWithProvenance stable-sorts sources ascending by precedence,
// folds them, and returns the merged text together with the ledger of
// leaf overrides. The first source after sorting is the baseline: its
// contributions are never recorded.
func MergeWithProvenance(sources []Source, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	ordered := slices.Clone(sources)
	slices.SortStableFunc(ordered, func(a, b Source) int {
		return cmp.Compare(a.Precedence, b.Precedence)
	})
	values := make([]ScopedValue, len(ordered))
	for i := range ordered {
		node, err := codec.Parse([]byte(ordered[i].Content))
		if err != nil {
			return nil, fmt.Errorf("source %d (scope %q): %w", i, ordered[i].ScopeName, err)
		}
		values[i] = ScopedValue{
			ScopeName:  ordered[i].ScopeName,
			Precedence: ordered[i].Precedence,
			Value:      node,
		}
	}
	merged, ledger := FoldWithProvenance(values)
	buf := &bytes.Buffer{}
	if err := codec.Encode(merged, buf, cfg.encodeOpts()...); err != nil {
		return nil, err
	}
	return &Result{MergedContent: buf.String(), Provenance: ledger}, nil
}

// FoldWithProvenance folds parsed documents under the same rule as
// [Fold], additionally threading a path-keyed record of which scope
// last set each leaf and what it replaced.
func FoldWithProvenance(sources []ScopedValue) (*ir.Node, Ledger) {
	acc := ir.NewObject()
	ledger := Ledger{}
	for i := range sources {
		src := &sources[i]
		if src.Value == nil || src.Value.Type != ir.ObjectType {
			continue
		}
		foldProv(acc, src.Value, "", src.ScopeName, src.Precedence, i == 0, ledger)
	}
	return acc, ledger
}

func foldProv(acc, src *ir.Node, prefix, scope string, precedence int, baseline bool, ledger Ledger) {
	for i, key := range src.Fields {
		sv := src.Values[i]
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		cur := acc.Get(key)
		switch {
		case cur == nil:
			if !sv.Type.IsLeaf() {
				// Mappings are never recorded at their own path;
				// recursing records their leaves instead.
				child := ir.NewObject()
				acc.Set(key, child)
				foldProv(child, sv, path, scope, precedence, baseline, ledger)
				continue
			}
			acc.Set(key, sv.Clone())
			if baseline {
				continue
			}
			ledger[path] = &Record{ScopeName: scope, Precedence: precedence, Value: sv.Clone()}
		case !cur.Type.IsLeaf() && !sv.Type.IsLeaf():
			foldProv(cur, sv, path, scope, precedence, baseline, ledger)
		default:
			if !sv.Type.IsLeaf() {
				// A mapping replacing a non-mapping is also tracked
				// through its leaves; a record left from the replaced
				// leaf would otherwise name a mapping.
				delete(ledger, path)
				ledger.prunePrefix(path)
				child := ir.NewObject()
				acc.Set(key, child)
				foldProv(child, sv, path, scope, precedence, baseline, ledger)
				continue
			}
			if !cur.Type.IsLeaf() {
				// A leaf replacing a mapping invalidates every record
				// under the mapping's path.
				ledger.prunePrefix(path)
			}
			if debug.Provenance() {
				debug.Logf("provenance: scope %q overrides %q\n", scope, path)
			}
			acc.Set(key, sv.Clone())
			if baseline {
				continue
			}
			rec := &Record{ScopeName: scope, Precedence: precedence, Value: sv.Clone()}
			if prev := ledger[path]; prev != nil {
				rec.OverriddenValues = make([]Override, 0, 1+len(prev.OverriddenValues))
				rec.OverriddenValues = append(rec.OverriddenValues, Override{
					ScopeName:  prev.ScopeName,
					Precedence: prev.Precedence,
					Value:      prev.Value,
				})
				rec.OverriddenValues = append(rec.OverriddenValues, prev.OverriddenValues...)
			}
			ledger[path] = rec
		}
	}
}
