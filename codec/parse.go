package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/opendsc/paramerge/debug"
	"github.com/opendsc/paramerge/ir"
)

// ErrFormat reports source text that is neither valid JSON (when it
// starts with '{') nor valid YAML.
var ErrFormat = errors.New("format error")

// Parse converts source text into a Structured Value. The root of a
// parameter document is always a mapping: blank input and non-mapping
// roots yield an empty object so such sources merge as no-op
// contributors.
func Parse(d []byte) (*ir.Node, error) {
	trimmed := bytes.TrimSpace(d)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return parseJSON(trimmed)
	}
	return parseYAML(d)
}

func parseJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := decodeJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		return nil, fmt.Errorf("%w: trailing %v after document", ErrFormat, tok)
	}
	return degradeNonObjectRoot(node), nil
}

func decodeJSONValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (*ir.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := ir.NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v is not a string", keyTok)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			elts := []*ir.Node{}
			for dec.More() {
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				elts = append(elts, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return ir.FromSlice(elts), nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return ir.FromString(t), nil
	case bool:
		return ir.FromBool(t), nil
	case json.Number:
		return numberNode(t), nil
	case nil:
		return ir.Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// numberNode widens a numeric literal: exact integer first, then
// float, with the raw literal kept when neither representation is
// exact.
func numberNode(n json.Number) *ir.Node {
	s := n.String()
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ir.FromInt(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return ir.FromFloat(f)
	}
	return ir.FromNumberLiteral(s)
}

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	root, err := fromYAMLAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return degradeNonObjectRoot(root), nil
}

// degradeNonObjectRoot keeps the legacy contract that a document whose
// root is not a mapping contributes nothing to a merge.
func degradeNonObjectRoot(node *ir.Node) *ir.Node {
	if node.Type == ir.ObjectType {
		return node
	}
	if debug.Codec() {
		debug.Logf("codec: degrading %s root to empty mapping\n", node.Type)
	}
	return ir.NewObject()
}

func fromYAMLAny(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case yaml.MapSlice:
		obj := ir.NewObject()
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			val, err := fromYAMLAny(item.Value)
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
		}
		return obj, nil
	case map[string]any:
		obj := ir.NewObject()
		for _, key := range sortedKeys(t) {
			val, err := fromYAMLAny(t[key])
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
		}
		return obj, nil
	case []any:
		elts := make([]*ir.Node, len(t))
		for i, elt := range t {
			val, err := fromYAMLAny(elt)
			if err != nil {
				return nil, err
			}
			elts[i] = val
		}
		return ir.FromSlice(elts), nil
	case string:
		return ir.FromString(t), nil
	case bool:
		return ir.FromBool(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint:
		return fromYAMLAny(uint64(t))
	case uint64:
		if t <= math.MaxInt64 {
			return ir.FromInt(int64(t)), nil
		}
		return ir.FromNumberLiteral(strconv.FormatUint(t, 10)), nil
	case float32:
		return ir.FromFloat(float64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
