package ir

import (
	"testing"
)

func kv(pairs ...any) *Node {
	obj := NewObject()
	for i := 0; i < len(pairs); i += 2 {
		obj.Set(pairs[i].(string), pairs[i+1].(*Node))
	}
	return obj
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), NewObject(), -1},

		// Bool comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number comparison: Int < Float < raw literal
		{"Int < Float", FromInt(1), FromFloat(1.0), -1},
		{"Float < RawNum", FromFloat(1.0), FromNumberLiteral("1"), -1},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},

		{"String < String", FromString("a"), FromString("b"), -1},

		// Array comparison
		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		// Object comparison
		{"Empty Object == Empty Object", NewObject(), NewObject(), 0},
		{"Short Object < Long Object", kv("a", FromInt(1)), kv("a", FromInt(1), "b", FromInt(2)), -1},
		{"Object Key Comparison", kv("a", FromInt(1)), kv("b", FromInt(1)), -1},
		{"Object Value Comparison", kv("a", FromInt(1)), kv("a", FromInt(2)), -1},
		{"Field order is not significant", kv("a", FromInt(1), "b", FromInt(2)), kv("b", FromInt(2), "a", FromInt(1)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := kv("x", FromSlice([]*Node{FromInt(1), FromString("s")}))
	b := kv("x", FromSlice([]*Node{FromInt(1), FromString("s")}))
	if !Equal(a, b) {
		t.Errorf("Equal(a, b) = false, want true")
	}
	b.Get("x").Values[1] = FromString("t")
	if Equal(a, b) {
		t.Errorf("Equal after mutation = true, want false")
	}
}
