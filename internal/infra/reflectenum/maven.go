package reflectenum

import (
	"reflect"

	"github.com/aalvaropc/pomyaml/internal/domain"
	"github.com/aalvaropc/pomyaml/internal/represent"
)

// MavenKinds classifies the project model types. Types not listed are generic.
func MavenKinds() map[reflect.Type]represent.Kind {
	return map[reflect.Type]represent.Kind{
		reflect.TypeOf(domain.Model{}):       represent.KindProject,
		reflect.TypeOf(domain.Developer{}):   represent.KindContributor,
		reflect.TypeOf(domain.Contributor{}): represent.KindContributor,
		reflect.TypeOf(domain.Dependency{}):  represent.KindDependency,
	}
}

// NewMaven returns an enumerator for domain.Model graphs.
func NewMaven(opts ...Option) *Enumerator {
	return New(append([]Option{WithKinds(MavenKinds())}, opts...)...)
}
