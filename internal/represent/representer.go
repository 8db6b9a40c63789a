package represent

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/pomyaml/internal/domain"
)

const defaultIndent = 2

// Representer turns objects into YAML node trees using a Policy.
type Representer struct {
	enum   Enumerator
	policy *Policy
}

// New returns a Representer. A nil policy means DefaultPolicy().
func New(e Enumerator, p *Policy) *Representer {
	if p == nil {
		p = DefaultPolicy()
	}
	return &Representer{enum: e, policy: p}
}

func (r *Representer) Policy() *Policy { return r.policy }

// Represent returns the mapping node for obj. Nothing is returned when any
// object in the graph cannot be enumerated.
func (r *Representer) Represent(obj any) (*yaml.Node, error) {
	return r.object(obj)
}

// Encode writes obj as a YAML document to w.
func (r *Representer) Encode(w io.Writer, obj any, indent int) error {
	node, err := r.Represent(obj)
	if err != nil {
		return err
	}
	if indent < 2 {
		indent = defaultIndent
	}

	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{node}}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(indent)
	if err := enc.Encode(doc); err != nil {
		return &domain.OpError{Op: "represent.encode", Kind: domain.KindExecution, Err: err}
	}
	if err := enc.Close(); err != nil {
		return &domain.OpError{Op: "represent.encode", Kind: domain.KindExecution, Err: err}
	}
	return nil
}

// Marshal is Encode into a byte slice.
func (r *Representer) Marshal(obj any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Encode(&buf, obj, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Representer) object(obj any) (*yaml.Node, error) {
	kind := r.enum.KindOf(obj)
	fields, err := r.enum.Enumerate(obj)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "represent.enumerate",
			Kind: domain.KindInvalidModel,
			Err:  fmt.Errorf("object kind %q: %w", kind, err),
		}
	}

	out := mappingNode()
	for _, f := range r.policy.Order(kind, fields) {
		value := f.Value
		if tree, ok := asTree(value); ok && tree != nil {
			value = Flatten(tree)
		}
		if r.policy.Omit(kind, f.Name, value) {
			continue
		}

		vn, err := r.value(value)
		if err != nil {
			return nil, err
		}
		out.Content = append(out.Content, textNode(f.Name), vn)
	}
	return out, nil
}

func (r *Representer) value(v any) (*yaml.Node, error) {
	if v == nil {
		return nullNode(), nil
	}

	switch t := v.(type) {
	case string:
		return textNode(t), nil
	case *Mapping:
		return r.mapping(t)
	}
	if tree, ok := asTree(v); ok {
		return r.mapping(Flatten(tree))
	}
	if s, ok := r.policy.Coerce(v); ok {
		return textNode(s), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nullNode(), nil
		}
		return r.value(rv.Elem().Interface())

	case reflect.String:
		return textNode(rv.String()), nil

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nullNode(), nil
		}
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i := 0; i < rv.Len(); i++ {
			en, err := r.value(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, en)
		}
		return seq, nil

	case reflect.Map:
		return r.goMap(rv)

	case reflect.Struct:
		if Classify(rv.Type()) == FieldObject {
			return r.object(v)
		}
	}

	// Anything else keeps its native form.
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, &domain.OpError{
			Op:   "represent.value",
			Kind: domain.KindInvalidModel,
			Err:  fmt.Errorf("%T: %w", v, err),
		}
	}
	return n, nil
}

func (r *Representer) mapping(m *Mapping) (*yaml.Node, error) {
	out := mappingNode()
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		vn, err := r.value(v)
		if err != nil {
			return nil, err
		}
		out.Content = append(out.Content, textNode(k), vn)
	}
	return out, nil
}

// goMap writes a Go map with its keys sorted, since map iteration order is
// random.
func (r *Representer) goMap(rv reflect.Value) (*yaml.Node, error) {
	type entry struct {
		key   string
		value reflect.Value
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: r.keyText(iter.Key()), value: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	out := mappingNode()
	for _, e := range entries {
		vn, err := r.value(e.value.Interface())
		if err != nil {
			return nil, err
		}
		out.Content = append(out.Content, textNode(e.key), vn)
	}
	return out, nil
}

func (r *Representer) keyText(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	if s, ok := r.policy.Coerce(k.Interface()); ok {
		return s
	}
	return fmt.Sprint(k.Interface())
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func textNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
