package paramerge

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/opendsc/paramerge/codec"
	"github.com/opendsc/paramerge/ir"
)

// Diff computes an RFC 7386 merge patch that transforms from into to.
// Applying the result to from with [ApplyPatch] yields to. Keys absent
// from the patch are unchanged; null patch values delete keys.
func Diff(from, to *ir.Node) (*ir.Node, error) {
	a, err := json.Marshal(from)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(to)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("creating merge patch: %w", err)
	}
	return codec.Parse(patch)
}

// ApplyPatch applies an RFC 7386 merge patch to doc.
func ApplyPatch(doc, patch *ir.Node) (*ir.Node, error) {
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	p, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, fmt.Errorf("applying merge patch: %w", err)
	}
	return codec.Parse(out)
}
