package domain

// ConfigNode is an untyped, arbitrarily nested name/value tree used for
// schema-free settings such as a plugin <configuration> block.
//
// A node normally carries either a leaf Value or Children. A nil Value means
// "no value"; a pointer to "" is an explicit empty value.
type ConfigNode struct {
	Name     string
	Value    *string
	Children []*ConfigNode
}

// NewConfig returns an empty tree root with the given name.
func NewConfig(name string) *ConfigNode {
	return &ConfigNode{Name: name}
}

// Leaf returns a node holding a single value.
func Leaf(name, value string) *ConfigNode {
	v := value
	return &ConfigNode{Name: name, Value: &v}
}

// Add appends children and returns the receiver for chaining.
func (n *ConfigNode) Add(children ...*ConfigNode) *ConfigNode {
	n.Children = append(n.Children, children...)
	return n
}

// Child returns the first direct child with the given name, or nil.
func (n *ConfigNode) Child(name string) *ConfigNode {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c != nil && c.Name == name {
			return c
		}
	}
	return nil
}
