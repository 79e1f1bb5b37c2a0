package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/opendsc/paramerge/format"
	"github.com/opendsc/paramerge/ir"
)

type EncState struct {
	indent   int
	comments bool

	format format.Format
}

// Encode serializes a node to w in the configured format. JSON output
// is always pretty-printed; YAML output is block style. Both end with
// a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsJSON() {
		return encodeJSON(node, w, es)
	}
	return encodeYAML(node, w, es)
}

// MustString serializes node to a string and panics on failure. Only
// unrepresentable nodes can fail to encode.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := &bytes.Buffer{}
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	d, err := node.MarshalJSON()
	if err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	if err := json.Indent(buf, d, "", strings.Repeat(" ", es.indent)); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	buf := &bytes.Buffer{}
	if err := writeYAML(buf, node, 0, es); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func writeYAML(buf *bytes.Buffer, node *ir.Node, depth int, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			writeYAMLIndent(buf, depth, es)
			buf.WriteString("{}\n")
			return nil
		}
		for i, field := range node.Fields {
			writeYAMLIndent(buf, depth, es)
			buf.WriteString(quoteYAMLString(field))
			buf.WriteByte(':')
			v := node.Values[i]
			if isBlock(v) {
				buf.WriteByte('\n')
				if err := writeYAML(buf, v, depth+1, es); err != nil {
					return err
				}
				continue
			}
			buf.WriteByte(' ')
			s, err := yamlScalar(v)
			if err != nil {
				return err
			}
			buf.WriteString(s)
			buf.WriteByte('\n')
		}
		return nil
	case ir.ArrayType:
		if len(node.Values) == 0 {
			writeYAMLIndent(buf, depth, es)
			buf.WriteString("[]\n")
			return nil
		}
		for _, elt := range node.Values {
			writeYAMLIndent(buf, depth, es)
			if isBlock(elt) {
				buf.WriteString("-\n")
				if err := writeYAML(buf, elt, depth+1, es); err != nil {
					return err
				}
				continue
			}
			buf.WriteString("- ")
			s, err := yamlScalar(elt)
			if err != nil {
				return err
			}
			buf.WriteString(s)
			buf.WriteByte('\n')
		}
		return nil
	default:
		writeYAMLIndent(buf, depth, es)
		s, err := yamlScalar(node)
		if err != nil {
			return err
		}
		buf.WriteString(s)
		buf.WriteByte('\n')
		return nil
	}
}

// isBlock reports whether node is laid out over its own lines rather
// than inline after a key or dash.
func isBlock(node *ir.Node) bool {
	switch node.Type {
	case ir.ObjectType:
		return len(node.Fields) > 0
	case ir.ArrayType:
		return len(node.Values) > 0
	default:
		return false
	}
}

func yamlScalar(node *ir.Node) (string, error) {
	switch node.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		return strconv.FormatBool(node.Bool), nil
	case ir.NumberType:
		return node.NumberLiteral(), nil
	case ir.StringType:
		return quoteYAMLString(node.String), nil
	case ir.ObjectType:
		return "{}", nil
	case ir.ArrayType:
		return "[]", nil
	default:
		return "", fmt.Errorf("cannot encode node type %s", node.Type)
	}
}

func writeYAMLIndent(buf *bytes.Buffer, depth int, es *EncState) {
	for range depth * es.indent {
		buf.WriteByte(' ')
	}
}

// quoteYAMLString renders s as a YAML scalar, double-quoting whenever
// the plain form could re-parse as a different type or break block
// layout.
func quoteYAMLString(s string) string {
	if yamlNeedsQuote(s) {
		return strconv.Quote(s)
	}
	return s
}

func yamlNeedsQuote(s string) bool {
	if s == "" {
		return true
	}
	switch strings.ToLower(s) {
	case "null", "~", "true", "false", "yes", "no", "on", "off",
		".inf", "-.inf", "+.inf", ".nan":
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	if yamlNumericPrefix(s) {
		return true
	}
	if s != strings.TrimSpace(s) {
		return true
	}
	if strings.ContainsRune("!&*-?{}[]#|>@`\"'%,", rune(s[0])) {
		return true
	}
	if strings.Contains(s, ": ") || strings.HasSuffix(s, ":") {
		return true
	}
	if strings.Contains(s, " #") {
		return true
	}
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}

// yamlNumericPrefix reports whether s starts like a hex, octal, or
// binary YAML number. strconv.ParseFloat rejects these forms, so they
// need their own check. Over-quoting malformed digits is harmless.
func yamlNumericPrefix(s string) bool {
	if len(s) > 1 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	l := strings.ToLower(s)
	return strings.HasPrefix(l, "0x") || strings.HasPrefix(l, "0o") || strings.HasPrefix(l, "0b")
}
