package represent

import (
	"slices"

	"github.com/aalvaropc/pomyaml/internal/domain"
)

// Mapping is a string-keyed map that remembers insertion order.
// Values are strings or nested *Mapping when produced by Flatten.
type Mapping struct {
	keys   []string
	values map[string]any
}

func NewMapping() *Mapping {
	return &Mapping{values: map[string]any{}}
}

// Set stores value under key. Setting an existing key replaces its value and
// keeps the key's original position.
func (m *Mapping) Set(key string, value any) {
	if m.values == nil {
		m.values = map[string]any{}
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *Mapping) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Flatten converts a configuration tree into an ordered mapping. Children
// with a value map to that value; the others map to their own flattening, so
// a child with neither value nor children becomes an empty mapping. The
// node's own value is ignored. Input must be acyclic.
func Flatten(node *domain.ConfigNode) *Mapping {
	out := NewMapping()
	if node == nil {
		return out
	}
	for _, child := range node.Children {
		if child == nil {
			continue
		}
		if child.Value != nil {
			out.Set(child.Name, *child.Value)
		} else {
			out.Set(child.Name, Flatten(child))
		}
	}
	return out
}

// asTree returns the configuration tree held by v, if any.
func asTree(v any) (*domain.ConfigNode, bool) {
	switch t := v.(type) {
	case *domain.ConfigNode:
		return t, true
	case domain.ConfigNode:
		return &t, true
	}
	return nil, false
}
