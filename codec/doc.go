// Package codec parses YAML or JSON parameter documents into ir.Node
// trees and serializes trees back to text.
//
// Input syntax is detected by inspection: text whose first non-space
// byte is '{' is parsed as JSON, everything else as YAML. Parsing is
// the only failing operation in the merge engine; all errors wrap
// ErrFormat.
package codec
