package represent

import "slices"

// Policy bundles order specs, omission rules and the coercion category set.
// Build it once with NewPolicy or DefaultPolicy; it is read-only afterwards.
type Policy struct {
	orders   map[Kind]*OrderSpec
	rules    map[Kind][]OmitRule
	coercion Category
}

type Option func(*Policy)

// WithOrder attaches an order spec to kind, replacing any previous one.
func WithOrder(kind Kind, spec *OrderSpec) Option {
	return func(p *Policy) {
		if spec == nil {
			delete(p.orders, kind)
			return
		}
		p.orders[kind] = spec
	}
}

// WithOmitRule adds a kind-specific omission rule. The generic rule (absent
// values and empty collections) always applies first.
func WithOmitRule(kind Kind, rule OmitRule) Option {
	return func(p *Policy) {
		if rule != nil {
			p.rules[kind] = append(p.rules[kind], rule)
		}
	}
}

// WithCoercion replaces the set of categories written as plain text.
func WithCoercion(categories ...Category) Option {
	return func(p *Policy) {
		var set Category
		for _, c := range categories {
			set |= c
		}
		p.coercion = set
	}
}

// NewPolicy returns a policy with no order specs, no kind-specific rules and
// every coercion category enabled, then applies opts.
func NewPolicy(opts ...Option) *Policy {
	p := &Policy{
		orders:   map[Kind]*OrderSpec{},
		rules:    map[Kind][]OmitRule{},
		coercion: CategoryAll,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DefaultPolicy is the policy for Maven project models. Extra options are
// applied after the defaults.
func DefaultPolicy(opts ...Option) *Policy {
	base := []Option{
		WithOrder(KindProject, ProjectOrder()),
		WithOrder(KindContributor, ContributorOrder()),
		WithOmitRule(KindDependency, DependencyDefaults),
	}
	return NewPolicy(append(base, opts...)...)
}

// Order returns fields in output order for kind. Kinds without a spec keep
// the given order. The input slice is never modified.
func (p *Policy) Order(kind Kind, fields []Field) []Field {
	spec, ok := p.orders[kind]
	if !ok {
		return slices.Clone(fields)
	}
	return spec.Sort(fields)
}

// OrderSpec returns the spec attached to kind.
func (p *Policy) OrderSpec(kind Kind) (*OrderSpec, bool) {
	spec, ok := p.orders[kind]
	return spec, ok
}

// Omit reports whether the field should be left out.
func (p *Policy) Omit(kind Kind, name string, value any) bool {
	if omitGeneric(value) {
		return true
	}
	for _, rule := range p.rules[kind] {
		if rule(name, value) {
			return true
		}
	}
	return false
}

// Coerce returns the canonical text for values in an enabled category.
// ok is false when the value should be written in its native form.
func (p *Policy) Coerce(value any) (text string, ok bool) {
	return coerce(p.coercion, value)
}
