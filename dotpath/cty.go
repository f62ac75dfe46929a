package dotpath

import (
	"math/big"

	"github.com/zclconf/go-cty/cty"

	"forecaster/utils"
)

func ctyStep(v cty.Value, seg Segment) (any, bool) {
	v, _ = v.Unmark()
	if v.IsNull() || !v.IsKnown() {
		return nil, false
	}

	t := v.Type()
	switch {
	default:
		return nil, false
	case t.IsObjectType():
		if !t.HasAttribute(seg.Key) {
			return nil, false
		}

		return v.GetAttr(seg.Key), true
	case t.IsMapType():
		key := cty.StringVal(seg.Key)
		if !v.HasIndex(key).True() {
			return nil, false
		}

		return v.Index(key), true
	case t.IsListType(), t.IsTupleType():
		if !seg.IsIndex || !utils.IsInRange(0, seg.Index, v.LengthInt()-1) {
			return nil, false
		}

		return v.Index(cty.NumberIntVal(int64(seg.Index))), true
	}
}

// FromCty converts a cty value into plain Go values: string, int or
// float64, bool, map[string]any and []any. Null and unknown values are nil.
func FromCty(v cty.Value) any {
	v, _ = v.UnmarkDeep()
	if v.IsNull() || !v.IsKnown() {
		return nil
	}

	t := v.Type()
	switch {
	default:
		return nil
	case t == cty.String:
		return v.AsString()
	case t == cty.Bool:
		return v.True()
	case t == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return int(i)
			}
		}

		f, _ := bf.Float64()
		return f
	case t.IsObjectType():
		out := make(map[string]any, len(t.AttributeTypes()))
		for name := range t.AttributeTypes() {
			out[name] = FromCty(v.GetAttr(name))
		}

		return out
	case t.IsMapType():
		out := make(map[string]any)
		for k, ev := range v.AsValueMap() {
			out[k] = FromCty(ev)
		}

		return out
	case t.IsListType(), t.IsSetType(), t.IsTupleType():
		elems := v.AsValueSlice()

		out := make([]any, 0, len(elems))
		for _, ev := range elems {
			out = append(out, FromCty(ev))
		}

		return out
	}
}
