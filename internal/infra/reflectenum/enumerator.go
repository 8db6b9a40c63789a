package reflectenum

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/aalvaropc/pomyaml/internal/represent"
)

// ErrNotStruct is returned when asked to enumerate something that is not a
// struct or a non-nil pointer to one.
var ErrNotStruct = errors.New("value is not a struct")

const defaultTagKey = "pom"

// Enumerator lists exported struct fields in declaration order using
// reflection. Field names come from a struct tag (default `pom`); "-" skips a
// field. Pointers are dereferenced and empty strings are reported as absent,
// since the model uses "" for "not declared".
type Enumerator struct {
	tagKey     string
	kinds      map[reflect.Type]represent.Kind
	keepEmpty  bool
	fieldCache sync.Map // reflect.Type -> []fieldInfo
}

type Option func(*Enumerator)

// WithTagKey changes the struct tag read for field names.
func WithTagKey(key string) Option {
	return func(e *Enumerator) { e.tagKey = key }
}

// WithKind maps a struct type to an object kind. Pointer types are
// registered by their element type.
func WithKind(t reflect.Type, kind represent.Kind) Option {
	return func(e *Enumerator) {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		e.kinds[t] = kind
	}
}

// WithKinds registers a whole kind table.
func WithKinds(table map[reflect.Type]represent.Kind) Option {
	return func(e *Enumerator) {
		for t, k := range table {
			WithKind(t, k)(e)
		}
	}
}

// WithEmptyStrings reports "" as a value instead of as absent.
func WithEmptyStrings(keep bool) Option {
	return func(e *Enumerator) { e.keepEmpty = keep }
}

func New(opts ...Option) *Enumerator {
	e := &Enumerator{
		tagKey: defaultTagKey,
		kinds:  map[reflect.Type]represent.Kind{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ represent.Enumerator = (*Enumerator)(nil)

// KindOf returns the registered kind of obj's type, or KindGeneric.
func (e *Enumerator) KindOf(obj any) represent.Kind {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if k, ok := e.kinds[t]; ok {
		return k
	}
	return represent.KindGeneric
}

// Enumerate returns every field of obj or an error; never a partial list.
func (e *Enumerator) Enumerate(obj any) ([]represent.Field, error) {
	rv := reflect.ValueOf(obj)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("nil %s: %w", rv.Type(), ErrNotStruct)
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, fmt.Errorf("nil value: %w", ErrNotStruct)
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s: %w", rv.Type(), ErrNotStruct)
	}

	infos := e.fields(rv.Type())
	out := make([]represent.Field, 0, len(infos))
	for _, fi := range infos {
		fv := rv.FieldByIndex(fi.index)
		out = append(out, represent.Field{
			Name:     fi.name,
			Value:    e.value(fv),
			Declared: fi.declared,
		})
	}
	return out, nil
}

func (e *Enumerator) value(fv reflect.Value) any {
	for fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Interface {
		if fv.IsNil() {
			return nil
		}
		// Configuration trees stay as pointers; the flattener takes *ConfigNode.
		if fv.Kind() == reflect.Pointer && represent.Classify(fv.Type()) == represent.FieldTree {
			return fv.Interface()
		}
		fv = fv.Elem()
	}
	if fv.Kind() == reflect.String && fv.Len() == 0 && !e.keepEmpty {
		return nil
	}
	return fv.Interface()
}

type fieldInfo struct {
	name     string
	index    []int
	declared represent.FieldKind
}

func (e *Enumerator) fields(t reflect.Type) []fieldInfo {
	if cached, ok := e.fieldCache.Load(t); ok {
		return cached.([]fieldInfo)
	}

	infos := make([]fieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		name, skip := e.fieldName(sf)
		if skip {
			continue
		}
		infos = append(infos, fieldInfo{
			name:     name,
			index:    sf.Index,
			declared: represent.Classify(sf.Type),
		})
	}

	actual, _ := e.fieldCache.LoadOrStore(t, infos)
	return actual.([]fieldInfo)
}

func (e *Enumerator) fieldName(sf reflect.StructField) (name string, skip bool) {
	tag := sf.Tag.Get(e.tagKey)
	if tag == "-" {
		return "", true
	}
	if n, _, _ := strings.Cut(tag, ","); n != "" {
		return n, false
	}
	return lowerCamel(sf.Name), false
}

// lowerCamel lowercases the leading upper-case run of a Go identifier:
// "Name" -> "name", "URL" -> "url", "IDValue" -> "idValue".
func lowerCamel(s string) string {
	r := []rune(s)
	for i := 0; i < len(r); i++ {
		if !unicode.IsUpper(r[i]) {
			break
		}
		if i > 0 && i+1 < len(r) && unicode.IsLower(r[i+1]) {
			break
		}
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}
