package represent

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"time"
)

// Category is a class of scalar values that are always written as plain text.
type Category uint8

const (
	CategoryBool Category = 1 << iota
	CategoryNumber
	CategoryDate
	CategoryCalendar
	CategoryEnum

	CategoryAll = CategoryBool | CategoryNumber | CategoryDate | CategoryCalendar | CategoryEnum
)

// calendar is implemented by civil date types that carry no clock time.
type calendar interface {
	Date() (year int, month time.Month, day int)
}

// coerce returns the canonical text of v when v belongs to one of the
// categories in set. ok is false for every other value.
func coerce(set Category, v any) (text string, ok bool) {
	if v == nil {
		return "", false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", false
	}

	// Types checked before the reflect switch: they are structs, named
	// strings or Stringer-bearing integers that would otherwise be misread.
	switch t := v.(type) {
	case time.Time:
		if set&CategoryDate == 0 {
			return "", false
		}
		return t.UTC().Format(time.RFC3339Nano), true
	case json.Number:
		if set&CategoryNumber == 0 {
			return "", false
		}
		return t.String(), true
	case *big.Int:
		if set&CategoryNumber == 0 || t == nil {
			return "", false
		}
		return t.String(), true
	case *big.Float:
		if set&CategoryNumber == 0 || t == nil {
			return "", false
		}
		return t.Text('f', -1), true
	case *big.Rat:
		if set&CategoryNumber == 0 || t == nil {
			return "", false
		}
		return t.RatString(), true
	case calendar:
		if set&CategoryCalendar == 0 {
			return "", false
		}
		y, m, d := t.Date()
		return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if set&CategoryBool == 0 {
			return "", false
		}
		return strconv.FormatBool(rv.Bool()), true

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if s, ok := enumText(set, v); ok {
			return s, true
		}
		if set&CategoryNumber == 0 {
			return "", false
		}
		return strconv.FormatInt(rv.Int(), 10), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if s, ok := enumText(set, v); ok {
			return s, true
		}
		if set&CategoryNumber == 0 {
			return "", false
		}
		return strconv.FormatUint(rv.Uint(), 10), true

	case reflect.Float32, reflect.Float64:
		if set&CategoryNumber == 0 {
			return "", false
		}
		return strconv.FormatFloat(rv.Float(), 'f', -1, rv.Type().Bits()), true

	case reflect.Complex64, reflect.Complex128:
		if set&CategoryNumber == 0 {
			return "", false
		}
		return strconv.FormatComplex(rv.Complex(), 'f', -1, rv.Type().Bits()), true
	}

	return "", false
}

// enumText renders named integer types with a String method (time.Month,
// time.Weekday, generated enum types) by their name.
func enumText(set Category, v any) (string, bool) {
	if set&CategoryEnum == 0 {
		return "", false
	}
	if reflect.TypeOf(v).PkgPath() == "" {
		return "", false
	}
	s, ok := v.(fmt.Stringer)
	if !ok {
		return "", false
	}
	return s.String(), true
}
