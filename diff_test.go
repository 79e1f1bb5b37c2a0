package paramerge

import (
	"testing"

	"github.com/opendsc/paramerge/ir"
)

func TestDiffAndApply(t *testing.T) {
	from := mustParse(t, "a: 1\nb: 2\ndrop: gone")
	to := mustParse(t, "a: 1\nb: 3\nc: 4")

	patch, err := Diff(from, to)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	want := mustParse(t, `{"b": 3, "c": 4, "drop": null}`)
	if !ir.Equal(want, patch) {
		t.Errorf("patch = %v, want %v", patch, want)
	}

	out, err := ApplyPatch(from, patch)
	if err != nil {
		t.Fatalf("ApplyPatch: %v", err)
	}
	if !ir.Equal(to, out) {
		t.Errorf("patched doc = %v, want %v", out, to)
	}
}

func TestDiffIdentical(t *testing.T) {
	doc := mustParse(t, "a:\n  b: 1\nlist:\n  - x")
	patch, err := Diff(doc, doc)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if !ir.Equal(ir.NewObject(), patch) {
		t.Errorf("patch for identical docs = %v, want empty", patch)
	}
}

func TestDiffNestedAndSequences(t *testing.T) {
	from := mustParse(t, "cfg:\n  host: a\n  port: 1\nservers:\n  - s1\n  - s2")
	to := mustParse(t, "cfg:\n  host: b\n  port: 1\nservers:\n  - s3")

	patch, err := Diff(from, to)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	// Nested mappings patch sparsely; sequences are replaced whole.
	want := mustParse(t, `{"cfg": {"host": "b"}, "servers": ["s3"]}`)
	if !ir.Equal(want, patch) {
		t.Errorf("patch = %v, want %v", patch, want)
	}

	out, err := ApplyPatch(from, patch)
	if err != nil {
		t.Fatalf("ApplyPatch: %v", err)
	}
	if !ir.Equal(to, out) {
		t.Errorf("patched doc = %v, want %v", out, to)
	}
}
