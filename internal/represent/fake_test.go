package represent

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

// fakeObject is an object whose kind and fields are given up front.
type fakeObject struct {
	kind   Kind
	fields []Field
	err    error
}

type fakeEnumerator struct{}

func (fakeEnumerator) KindOf(obj any) Kind {
	if o, ok := asFake(obj); ok {
		return o.kind
	}
	return KindGeneric
}

func (fakeEnumerator) Enumerate(obj any) ([]Field, error) {
	o, ok := asFake(obj)
	if !ok {
		return nil, errors.New("not enumerable")
	}
	if o.err != nil {
		return nil, o.err
	}
	return o.fields, nil
}

func asFake(obj any) (fakeObject, bool) {
	switch t := obj.(type) {
	case fakeObject:
		return t, true
	case *fakeObject:
		if t != nil {
			return *t, true
		}
	}
	return fakeObject{}, false
}

func obj(kind Kind, fields ...Field) *fakeObject {
	return &fakeObject{kind: kind, fields: fields}
}

func scalar(name string, v any) Field {
	return Field{Name: name, Value: v, Declared: FieldScalar}
}

func names(fields []Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Name)
	}
	return out
}

// keys returns the keys of a mapping node in order.
func keys(t *testing.T, n *yaml.Node) []string {
	t.Helper()
	if n.Kind != yaml.MappingNode {
		t.Fatalf("expected mapping node, got kind %v", n.Kind)
	}
	out := make([]string, 0, len(n.Content)/2)
	for i := 0; i < len(n.Content); i += 2 {
		out = append(out, n.Content[i].Value)
	}
	return out
}

// lookup returns the value node under key in a mapping node.
func lookup(t *testing.T, n *yaml.Node, key string) *yaml.Node {
	t.Helper()
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	t.Fatalf("key %q not found in %v", key, keys(t, n))
	return nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
