package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EncodeOption configures Marshal and MarshalYAML.
type EncodeOption func(*encoder)

// WithLoc adds a "loc" member with 1-based lines and 0-based columns to
// every node.
func WithLoc() EncodeOption {
	return func(e *encoder) { e.loc = true }
}

// WithRange adds a "range" member [start, end] of inclusive byte offsets to
// every node.
func WithRange() EncodeOption {
	return func(e *encoder) { e.rng = true }
}

// WithIndent pretty-prints JSON output.
func WithIndent(prefix, indent string) EncodeOption {
	return func(e *encoder) {
		e.prefix = prefix
		e.indent = indent
	}
}

type encoder struct {
	loc    bool
	rng    bool
	prefix string
	indent string
}

type member struct {
	Key   string
	Value any
}

// object is a JSON object that keeps its member order.
type object []member

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, m.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, m.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // Encode appends a newline
	return nil
}

// Marshal serializes a tree to JSON. Every node becomes an object whose first
// member is "type"; field names and nullability follow Fields.
func Marshal(n Node, opts ...EncodeOption) ([]byte, error) {
	e := newEncoder(opts)
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if e.indent != "" || e.prefix != "" {
		enc.SetIndent(e.prefix, e.indent)
	}
	if err := enc.Encode(e.value(n)); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", describe(n), err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalYAML serializes a tree to YAML with the same shape as Marshal.
func MarshalYAML(n Node, opts ...EncodeOption) ([]byte, error) {
	e := newEncoder(opts)
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toYAML(e.value(n))); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", describe(n), err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newEncoder(opts []EncodeOption) *encoder {
	e := &encoder{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func describe(n Node) string {
	if isNil(n) {
		return "nil node"
	}
	return n.NodeType().String()
}

func (e *encoder) value(v any) any {
	switch v := v.(type) {
	case nil:
		return nil
	case *string:
		if v == nil {
			return nil
		}
		return *v
	case *Natspec:
		return e.natspec(v)
	case Node:
		return e.node(v)
	case []Node:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = e.value(n)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = e.value(x)
		}
		return out
	default:
		return v
	}
}

func (e *encoder) node(n Node) any {
	if isNil(n) {
		return nil
	}
	obj := object{{"type", n.NodeType().String()}}
	for _, f := range Fields(n) {
		obj = append(obj, member{f.Key, e.value(f.Value)})
	}
	if e.loc {
		start, end := n.NodePos(), n.NodeEndPos()
		obj = append(obj, member{"loc", object{
			{"start", object{{"line", start.Line}, {"column", start.Column - 1}}},
			{"end", object{{"line", end.Line}, {"column", end.Column - 1}}},
		}})
	}
	if e.rng {
		start, end := n.NodePos(), n.NodeEndPos()
		obj = append(obj, member{"range", []any{start.Offset, end.Offset - 1}})
	}
	return obj
}

// natspec renders tags in first-occurrence order; all @param entries are
// grouped under "params" at the position of the first one.
func (e *encoder) natspec(n *Natspec) any {
	if n == nil || len(n.Entries) == 0 {
		return nil
	}
	var obj object
	var params object
	paramsAt := -1
	for _, entry := range n.Entries {
		if entry.Tag == TagParam {
			if paramsAt < 0 {
				paramsAt = len(obj)
				obj = append(obj, member{Key: "params"})
			}
			params = append(params, member{entry.Name, entry.Text})
			continue
		}
		obj = append(obj, member{entry.Tag, entry.Text})
	}
	if paramsAt >= 0 {
		obj[paramsAt].Value = params
	}
	return obj
}

func toYAML(v any) *yaml.Node {
	switch v := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range v {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key},
				toYAML(m.Value))
		}
		return n
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, x := range v {
			n.Content = append(n.Content, toYAML(x))
		}
		return n
	case []string:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, s := range v {
			n.Content = append(n.Content, toYAML(s))
		}
		return n
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}
	case int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: fmt.Sprint(v)}
	}
}
