package represent

import (
	"reflect"
	"time"

	"github.com/aalvaropc/pomyaml/internal/domain"
)

// Kind selects which order and omission rules apply to an object.
type Kind string

const (
	KindGeneric     Kind = "generic"
	KindProject     Kind = "project"
	KindContributor Kind = "contributor"
	KindDependency  Kind = "dependency"
)

// FieldKind is the declared shape of a field value.
type FieldKind int

const (
	FieldScalar FieldKind = iota
	FieldMapping
	FieldSequence
	FieldObject
	FieldTree
)

func (k FieldKind) String() string {
	switch k {
	case FieldScalar:
		return "scalar"
	case FieldMapping:
		return "mapping"
	case FieldSequence:
		return "sequence"
	case FieldObject:
		return "object"
	case FieldTree:
		return "tree"
	default:
		return "unknown"
	}
}

// Field is one named property of an object.
type Field struct {
	Name     string
	Value    any
	Declared FieldKind
}

// Enumerator lists the fields of an object and tells which kind it is.
// Enumerate returns the fields in the enumerator's natural order; it must
// either list every field or fail.
type Enumerator interface {
	KindOf(obj any) Kind
	Enumerate(obj any) ([]Field, error)
}

var (
	timeType       = reflect.TypeOf(time.Time{})
	configNodeType = reflect.TypeOf(domain.ConfigNode{})
	mappingType    = reflect.TypeOf(Mapping{})
)

// Classify reports the declared kind of values of type t.
func Classify(t reflect.Type) FieldKind {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return FieldScalar
	}

	switch t {
	case configNodeType:
		return FieldTree
	case mappingType:
		return FieldMapping
	case timeType:
		return FieldScalar
	}

	switch t.Kind() {
	case reflect.Struct:
		if isTextual(t) {
			return FieldScalar
		}
		return FieldObject
	case reflect.Slice, reflect.Array:
		return FieldSequence
	case reflect.Map:
		return FieldMapping
	default:
		return FieldScalar
	}
}

// isTextual reports struct types that know how to write themselves as text,
// such as big.Int or netip.Addr.
func isTextual(t reflect.Type) bool {
	tm := reflect.TypeOf((*interface{ MarshalText() ([]byte, error) })(nil)).Elem()
	return t.Implements(tm) || reflect.PointerTo(t).Implements(tm)
}
