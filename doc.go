// Package paramerge folds an ordered hierarchy of YAML or JSON
// parameter documents into a single document using precedence-based
// override rules, and can record a provenance ledger saying which
// scope contributed each final leaf value and what it overrode.
//
// Mappings merge by key union, recursively; sequences and scalars are
// replaced wholesale by later sources. Precedence is established by
// input order (left = lowest): [Merge] trusts caller-supplied order,
// while [MergeWithProvenance] first stable-sorts its sources by their
// numeric precedence.
//
// The engine is pure and synchronous. Inputs are never mutated, and
// concurrent calls are safe without external locking.
package paramerge
