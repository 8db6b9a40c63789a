// Package represent renders an object graph into an ordered YAML node tree.
//
// A Policy decides, per object kind, in which order fields appear, which fields
// are left out, how ambiguous scalars are written and how configuration trees
// become plain mappings. Walking an object's fields is delegated to an
// Enumerator; writing text is delegated to the yaml.v3 encoder.
//
// Policies and Representers are immutable after construction and safe for
// concurrent use. The object graph must not change while it is rendered.
package represent
