package represent

import (
	"cmp"
	"fmt"
	"slices"
)

// OrderSpec is a priority list of field names. Listed names come first, in
// list order; every other name follows, sorted by name.
type OrderSpec struct {
	name  string
	names []string
	rank  map[string]int
}

// NewOrderSpec builds a spec from a priority list. Names must be unique.
func NewOrderSpec(name string, names ...string) (*OrderSpec, error) {
	rank := make(map[string]int, len(names))
	for i, n := range names {
		if _, dup := rank[n]; dup {
			return nil, fmt.Errorf("order spec %q: duplicate name %q", name, n)
		}
		rank[n] = i
	}
	return &OrderSpec{
		name:  name,
		names: slices.Clone(names),
		rank:  rank,
	}, nil
}

// MustOrderSpec is like NewOrderSpec but panics on a duplicate name.
func MustOrderSpec(name string, names ...string) *OrderSpec {
	s, err := NewOrderSpec(name, names...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *OrderSpec) Name() string { return s.name }

// Names returns a copy of the priority list.
func (s *OrderSpec) Names() []string { return slices.Clone(s.names) }

// Compare orders two field names: ranked before unranked, ranked by index,
// unranked by name.
func (s *OrderSpec) Compare(a, b string) int {
	if c := cmp.Compare(s.rankOf(a), s.rankOf(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

// Sort returns fields ordered by the spec. The input slice is not modified.
func (s *OrderSpec) Sort(fields []Field) []Field {
	out := slices.Clone(fields)
	slices.SortStableFunc(out, func(a, b Field) int {
		return s.Compare(a.Name, b.Name)
	})
	return out
}

func (s *OrderSpec) rankOf(name string) int {
	if r, ok := s.rank[name]; ok {
		return r
	}
	return len(s.names)
}

// ProjectOrder puts identity and metadata ahead of the structural sections of
// a project descriptor.
func ProjectOrder() *OrderSpec {
	return MustOrderSpec(string(KindProject),
		"modelVersion",
		"groupId",
		"artifactId",
		"version",
		"packaging",
		"properties",
		"name",
		"description",
		"inceptionYear",
		"url",
		"issueManagement",
		"ciManagement",
		"mailingLists",
		"scm",
		"licenses",
		"developers",
		"contributors",
		"prerequisites",
		"dependencies",
		"distributionManagement",
		"build",
		"reporting",
	)
}

// ContributorOrder is the order for developers and contributors.
func ContributorOrder() *OrderSpec {
	return MustOrderSpec(string(KindContributor), "name", "id", "email")
}
