package dotpath

import (
	"cmp"
	"reflect"
	"slices"

	"github.com/zclconf/go-cty/cty"

	"forecaster/utils"
)

// Get reads the value at path inside record.
// A missing key, an out of range index or a malformed path reports false.
func Get(record any, path string) (any, bool) {
	p, err := Parse(path)
	if err != nil {
		return nil, false
	}

	return p.Get(record)
}

// Value is Get without the presence flag: absent paths read as nil.
func Value(record any, path string) any {
	v, _ := Get(record, path)
	return v
}

// Get reads the value at p inside record. cty values found on the way
// are returned as plain Go values.
func (p Path) Get(record any) (any, bool) {
	v, ok := walk(record, p.Segments)
	if !ok {
		return nil, false
	}

	return normalize(v), true
}

func walk(current any, segs []Segment) (any, bool) {
	for i, seg := range segs {
		if seg.IsWildcard() {
			return fanOut(current, segs[i+1:])
		}

		next, ok := step(current, seg)
		if !ok {
			return nil, false
		}

		current = next
	}

	return current, true
}

// fanOut applies rest to every element of current. Elements missing the
// remainder contribute nil so positions line up with the source.
// A further wildcard in rest flattens one level of the result.
func fanOut(current any, rest []Segment) (any, bool) {
	elems, ok := elements(current)
	if !ok {
		return nil, false
	}

	nested := Path{Segments: rest}.HasWildcard()

	out := make([]any, 0, len(elems))
	for _, elem := range elems {
		v, ok := walk(elem, rest)
		if !ok {
			out = append(out, nil)
			continue
		}

		v = normalize(v)
		if inner, isSlice := v.([]any); nested && isSlice {
			out = append(out, inner...)
			continue
		}

		out = append(out, v)
	}

	return out, true
}

func step(current any, seg Segment) (any, bool) {
	switch v := current.(type) {
	case nil:
		return nil, false
	case map[string]any:
		next, ok := v[seg.Key]
		return next, ok
	case []any:
		if seg.IsIndex && utils.IsInRange(0, seg.Index, len(v)-1) {
			return v[seg.Index], true
		}

		return nil, false
	case cty.Value:
		return ctyStep(v, seg)
	}

	rv, shape := dispatch(reflect.ValueOf(current))
	switch shape {
	default:
		return nil, false
	case ShapeMap:
		return mapStep(rv, seg)
	case ShapeSequence:
		return sequenceStep(rv, seg)
	case ShapeStruct:
		return structStep(rv, seg)
	case ShapeCty:
		return ctyStep(rv.Interface().(cty.Value), seg)
	}
}

func mapStep(rv reflect.Value, seg Segment) (any, bool) {
	key, ok := mapKey(rv.Type().Key(), seg)
	if !ok {
		return nil, false
	}

	val := rv.MapIndex(key)
	if !val.IsValid() {
		return nil, false
	}

	return val.Interface(), true
}

func mapKey(keyType reflect.Type, seg Segment) (reflect.Value, bool) {
	switch keyType.Kind() {
	default:
		return reflect.Value{}, false
	case reflect.String:
		return reflect.ValueOf(seg.Key).Convert(keyType), true
	case reflect.Interface:
		if reflect.TypeOf(seg.Key).Implements(keyType) {
			return reflect.ValueOf(seg.Key).Convert(keyType), true
		}

		return reflect.Value{}, false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !seg.IsIndex {
			return reflect.Value{}, false
		}

		key := reflect.ValueOf(seg.Index).Convert(keyType)
		if key.Convert(reflect.TypeFor[int]()).Int() != int64(seg.Index) {
			return reflect.Value{}, false
		}

		return key, true
	}
}

func sequenceStep(rv reflect.Value, seg Segment) (any, bool) {
	if !seg.IsIndex || !utils.IsInRange(0, seg.Index, rv.Len()-1) {
		return nil, false
	}

	return rv.Index(seg.Index).Interface(), true
}

func structStep(rv reflect.Value, seg Segment) (any, bool) {
	field, ok := findField(rv.Type(), seg.Key)
	if !ok {
		return nil, false
	}

	val, err := rv.FieldByIndexErr(field.Index)
	if err != nil {
		// nil embedded pointer on the way to a promoted field
		return nil, false
	}

	return val.Interface(), true
}

// elements lists the children of a sequence or map. Map children come in
// ascending key order.
func elements(current any) ([]any, bool) {
	switch v := current.(type) {
	case []any:
		return v, true
	case map[string]any:
		out := make([]any, 0, len(v))
		for _, k := range utils.SortedKeys(v) {
			out = append(out, v[k])
		}

		return out, true
	case cty.Value:
		return elements(FromCty(v))
	}

	rv, shape := dispatch(reflect.ValueOf(current))
	switch shape {
	default:
		return nil, false
	case ShapeCty:
		return elements(FromCty(rv.Interface().(cty.Value)))
	case ShapeSequence:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}

		return out, true
	case ShapeMap:
		keys := rv.MapKeys()
		slices.SortFunc(keys, compareKeys)

		out := make([]any, len(keys))
		for i, k := range keys {
			out[i] = rv.MapIndex(k).Interface()
		}

		return out, true
	}
}

func compareKeys(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	}

	return 0
}

// Elements returns the children of a sequence (or map, in key order)
// as a []any, false for anything else.
func Elements(value any) ([]any, bool) {
	return elements(value)
}

// IsSequence reports whether value is a slice, an array or a cty list, set or tuple.
func IsSequence(value any) bool {
	if v, ok := value.(cty.Value); ok {
		_, isSlice := FromCty(v).([]any)
		return isSlice
	}

	return ShapeOf(value) == ShapeSequence
}

func normalize(v any) any {
	if cv, ok := v.(cty.Value); ok {
		return FromCty(cv)
	}

	return v
}
