package codec

import "github.com/opendsc/paramerge/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeComments is accepted for compatibility with the original
// pull-server surface. Comments are not represented in the IR, so the
// option has no observable effect.
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}
