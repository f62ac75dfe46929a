package primitive

import (
	"reflect"
	"slices"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindFloat
	KindString
	KindBool

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// names lists the reserved built-in type names. "string" is deliberately
// absent: it is a valid coercion kind but may be claimed by a custom transformer.
var names = map[string]KindEnum{
	"int":     KindInt,
	"integer": KindInt,
	"real":    KindFloat,
	"double":  KindFloat,
	"float":   KindFloat,
	"boolean": KindBool,
	"bool":    KindBool,
}

// Lookup resolves a reserved built-in type name to its kind.
func Lookup(name string) (KindEnum, bool) {
	k, ok := names[name]
	return k, ok
}

// IsReserved reports whether name is one of the built-in type names.
func IsReserved(name string) bool {
	_, ok := names[name]
	return ok
}

// Names returns the reserved built-in type names in ascending order.
func Names() []string {
	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}

	slices.Sort(out)

	return out
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindFloat:
		return true
	}
}

// FromReflectType maps a Go type onto the closest primitive kind, 0 if none.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInt
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBool
	}
}
