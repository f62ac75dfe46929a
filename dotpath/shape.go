package dotpath

import (
	"reflect"

	"github.com/zclconf/go-cty/cty"
)

//go:generate go tool stringer -type=ShapeEnum -output=shape_string.go

// ShapeEnum classifies a value by how a path segment can step into it.
type ShapeEnum int

const (
	ShapeUnknown ShapeEnum = iota // scalars, funcs, channels: nothing to step into
	ShapeNil
	ShapeMap
	ShapeSequence
	ShapeStruct
	ShapeCty

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

var ctyValueType = reflect.TypeFor[cty.Value]()

// ShapeOf reports the shape of v after dereferencing pointers and interfaces.
func ShapeOf(v any) ShapeEnum {
	_, shape := dispatch(reflect.ValueOf(v))
	return shape
}

// dispatch dereferences rv and classifies the value it ends on.
func dispatch(rv reflect.Value) (reflect.Value, ShapeEnum) {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return rv, ShapeNil
		}

		rv = rv.Elem()
	}

	if !rv.IsValid() {
		return rv, ShapeNil
	}

	if rv.Type() == ctyValueType {
		return rv, ShapeCty
	}

	switch rv.Kind() {
	default:
		return rv, ShapeUnknown
	case reflect.Map:
		return rv, ShapeMap
	case reflect.Slice, reflect.Array:
		return rv, ShapeSequence
	case reflect.Struct:
		return rv, ShapeStruct
	}
}
