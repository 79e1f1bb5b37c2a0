package paramerge

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/opendsc/paramerge/codec"
	"github.com/opendsc/paramerge/format"
	"github.com/opendsc/paramerge/ir"
)

func mustParse(t *testing.T, src string) *ir.Node {
	t.Helper()
	node, err := codec.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return node
}

func mustMerge(t *testing.T, sources []string, opts ...Option) string {
	t.Helper()
	out, err := Merge(sources, opts...)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	return out
}

func TestMergeScalarOverride(t *testing.T) {
	got := mustMerge(t, []string{
		"server: localhost\nport: 8080\ndatabase: dev",
		"server: production.example.com\ndatabase: production",
	})
	want := "server: production.example.com\nport: 8080\ndatabase: production\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merged output (-want +got):\n%s", diff)
	}
}

func TestMergeJSONOutput(t *testing.T) {
	got := mustMerge(t, []string{"server: localhost\nport: 8080"},
		OutputFormat(format.JSONFormat))
	want := `{
  "server": "localhost",
  "port": 8080
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merged output (-want +got):\n%s", diff)
	}
}

func TestMergeNestedMappings(t *testing.T) {
	got := mustMerge(t, []string{
		"config:\n  keep: original\n  replace: old",
		"config:\n  replace: new\n  add: additional",
	})
	want := mustParse(t, "config:\n  keep: original\n  replace: new\n  add: additional")
	if !ir.Equal(want, mustParse(t, got)) {
		t.Errorf("nested merge = %q", got)
	}
}

func TestMergeSequenceReplacedWholesale(t *testing.T) {
	got := mustMerge(t, []string{
		"servers:\n  - server1\n  - server2",
		"servers:\n  - server3",
	})
	want := "servers:\n  - server3\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sequence replace (-want +got):\n%s", diff)
	}
}

func TestMergeKeyUnion(t *testing.T) {
	merged := mustParse(t, mustMerge(t, []string{
		"a: 1\nshared:\n  x: 1",
		"b: 2\nshared:\n  y: 2",
	}))
	for _, key := range []string{"a", "b"} {
		if merged.Get(key) == nil {
			t.Errorf("key %q missing from union", key)
		}
	}
	shared := merged.Get("shared")
	if shared == nil || shared.Get("x") == nil || shared.Get("y") == nil {
		t.Errorf("nested union incomplete: %v", shared)
	}
}

func TestMergeOrderSensitivity(t *testing.T) {
	d1, d2 := "a: 1", "a: 2"
	fwd := mustMerge(t, []string{d1, d2})
	rev := mustMerge(t, []string{d2, d1})
	if fwd == rev {
		t.Errorf("merge is order-insensitive: both produced %q", fwd)
	}
	if fwd != "a: 2\n" || rev != "a: 1\n" {
		t.Errorf("fwd = %q, rev = %q", fwd, rev)
	}
}

func TestMergeNullIsAValue(t *testing.T) {
	merged := mustParse(t, mustMerge(t, []string{"a: 1", "a: null"}))
	if got := merged.Get("a"); got == nil || got.Type != ir.NullType {
		t.Errorf("null override = %v", got)
	}
	merged = mustParse(t, mustMerge(t, []string{"a: null", "a: 1"}))
	if got := merged.Get("a"); got == nil || got.Type != ir.NumberType {
		t.Errorf("override of null = %v", got)
	}
}

func TestMergeMismatchedKindsReplace(t *testing.T) {
	tests := []struct {
		name     string
		lo, hi   string
		wantType ir.Type
	}{
		{"sequence over scalar", "v: 1", "v:\n  - a", ir.ArrayType},
		{"scalar over mapping", "v:\n  a: 1", "v: done", ir.StringType},
		{"mapping over sequence", "v:\n  - a", "v:\n  a: 1", ir.ObjectType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := mustParse(t, mustMerge(t, []string{tt.lo, tt.hi}))
			got := merged.Get("v")
			if got == nil || got.Type != tt.wantType {
				t.Errorf("v = %v, want type %s", got, tt.wantType)
			}
			hiVal := mustParse(t, tt.hi).Get("v")
			if !ir.Equal(hiVal, got) {
				t.Errorf("v = %v, want wholesale %v", got, hiVal)
			}
		})
	}
}

func TestMergeDegenerateSources(t *testing.T) {
	got := mustMerge(t, []string{"", "a: 1", "   \n", "[1, 2]"})
	if got != "a: 1\n" {
		t.Errorf("merge with degenerate sources = %q", got)
	}
	if got := mustMerge(t, nil); got != "{}\n" {
		t.Errorf("empty merge = %q", got)
	}
}

func TestMergeFormatError(t *testing.T) {
	_, err := Merge([]string{"a: 1", `{"bad": `})
	if err == nil {
		t.Fatal("Merge succeeded on malformed source")
	}
	if !errors.Is(err, codec.ErrFormat) {
		t.Errorf("error %v does not wrap codec.ErrFormat", err)
	}
	if !strings.Contains(err.Error(), "source 1") {
		t.Errorf("error %v does not identify the failing source", err)
	}
}

func TestFoldDoesNotMutateInputs(t *testing.T) {
	s1 := mustParse(t, "a:\n  b: 1\nlist:\n  - 1")
	s2 := mustParse(t, "a:\n  b: 2\n  c: 3")
	snap1, snap2 := s1.Clone(), s2.Clone()

	merged := Fold([]*ir.Node{s1, s2})
	merged.Get("a").Set("b", ir.FromInt(99))
	merged.Get("list").Values[0] = ir.FromInt(99)

	if !ir.Equal(s1, snap1) {
		t.Errorf("first input mutated: %v", s1)
	}
	if !ir.Equal(s2, snap2) {
		t.Errorf("second input mutated: %v", s2)
	}
}

func TestMergeIncludeCommentsNoEffect(t *testing.T) {
	sources := []string{"a: 1\nb:\n  c: 2"}
	plain := mustMerge(t, sources)
	with := mustMerge(t, sources, IncludeComments(true))
	if plain != with {
		t.Errorf("IncludeComments changed output: %q vs %q", plain, with)
	}
}
