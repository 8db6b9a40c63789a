package represent

import "reflect"

// OmitRule reports whether a field should be left out of the output.
type OmitRule func(name string, value any) bool

// omitGeneric drops absent values and empty collections.
func omitGeneric(value any) bool {
	if value == nil {
		return true
	}
	if m, ok := value.(*Mapping); ok {
		return m.Len() == 0
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return omitGeneric(rv.Elem().Interface())
	case reflect.Map, reflect.Slice:
		return rv.IsNil() || rv.Len() == 0
	case reflect.Array:
		return rv.Len() == 0
	case reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// DependencyDefaults drops dependency fields that restate Maven's defaults:
// optional=false and type=jar.
func DependencyDefaults(name string, value any) bool {
	rv := reflect.ValueOf(value)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return false
	}

	switch name {
	case "optional":
		return rv.Kind() == reflect.Bool && !rv.Bool()
	case "type":
		return rv.Kind() == reflect.String && rv.String() == "jar"
	}
	return false
}
