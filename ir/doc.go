// Package ir provides the in-memory representation of parameter
// documents.
//
// All parameter documents, whether parsed from YAML or JSON text or
// created programmatically, are represented as ir.Node trees.
//
// # Node structure
//
// A Node is a recursive tagged union over the value kinds a parameter
// document can hold:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (key-value pairs), array (ordered list)
//
// For ObjectType nodes, Fields[i] is the key for the value at
// Values[i], so there are always the same number of fields as values.
// Field order is the document's insertion order; it is preserved for
// serialization but carries no merge semantics. Keys are unique within
// an object.
//
// Number values are placed under:
//
//   - Int64: if the source number is an exact integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: the raw literal, as a fallback when neither Int64 nor
//     Float64 can represent it
//
// # Creating nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.NewObject()
//	obj.Set("key", ir.FromString("value"))
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Thread safety
//
// Node trees are not synchronized. Each caller owns the trees it
// builds; Clone produces a fully independent copy.
package ir
