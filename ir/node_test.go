package ir

import (
	"encoding/json"
	"testing"
)

func TestObjectSetGet(t *testing.T) {
	obj := NewObject()
	obj.Set("b", FromInt(1))
	obj.Set("a", FromInt(2))
	obj.Set("c", FromInt(3))
	// replacement keeps position
	obj.Set("a", FromInt(4))

	if got := obj.Get("a"); got == nil || *got.Int64 != 4 {
		t.Fatalf("Get(a) = %v", got)
	}
	if got := obj.Get("missing"); got != nil {
		t.Fatalf("Get(missing) = %v, want nil", got)
	}
	wantOrder := []string{"b", "a", "c"}
	for i, f := range obj.Fields {
		if f != wantOrder[i] {
			t.Fatalf("field order %v, want %v", obj.Fields, wantOrder)
		}
	}

	obj.Delete("a")
	if got := obj.Get("a"); got != nil {
		t.Fatalf("Get(a) after Delete = %v, want nil", got)
	}
	if len(obj.Fields) != 2 || len(obj.Values) != 2 {
		t.Fatalf("fields/values out of sync after Delete: %v", obj.Fields)
	}
}

func TestCloneIndependence(t *testing.T) {
	obj := NewObject()
	inner := NewObject()
	inner.Set("x", FromInt(1))
	obj.Set("nested", inner)
	obj.Set("list", FromSlice([]*Node{FromString("a")}))

	cl := obj.Clone()
	cl.Get("nested").Set("x", FromInt(99))
	cl.Get("list").Values[0] = FromString("b")
	cl.Set("extra", Null())

	if *obj.Get("nested").Get("x").Int64 != 1 {
		t.Errorf("clone mutation leaked into original nested value")
	}
	if obj.Get("list").Values[0].String != "a" {
		t.Errorf("clone mutation leaked into original list")
	}
	if obj.Get("extra") != nil {
		t.Errorf("clone insertion leaked into original")
	}
}

func TestNumberLiteral(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"int", FromInt(8080), "8080"},
		{"negative int", FromInt(-3), "-3"},
		{"float", FromFloat(2.5), "2.5"},
		{"integral float keeps point", FromFloat(3), "3.0"},
		{"large float", FromFloat(1e21), "1e+21"},
		{"raw literal", FromNumberLiteral("1e999"), "1e999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.NumberLiteral(); got != tt.want {
				t.Errorf("NumberLiteral() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalJSONOrdered(t *testing.T) {
	obj := NewObject()
	obj.Set("z", FromInt(1))
	obj.Set("a", FromBool(true))
	obj.Set("m", FromSlice([]*Node{Null(), FromFloat(3)}))

	d, err := json.Marshal(obj)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":1,"a":true,"m":[null,3.0]}`
	if string(d) != want {
		t.Errorf("MarshalJSON = %s, want %s", d, want)
	}
}

func TestToAny(t *testing.T) {
	obj := NewObject()
	obj.Set("s", FromString("v"))
	obj.Set("n", FromInt(2))
	obj.Set("list", FromSlice([]*Node{FromBool(false)}))

	v, ok := ToAny(obj).(map[string]any)
	if !ok {
		t.Fatalf("ToAny returned %T, want map", ToAny(obj))
	}
	if v["s"] != "v" || v["n"] != int64(2) {
		t.Errorf("scalar conversion wrong: %v", v)
	}
	list, ok := v["list"].([]any)
	if !ok || len(list) != 1 || list[0] != false {
		t.Errorf("list conversion wrong: %v", v["list"])
	}
}
