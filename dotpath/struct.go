package dotpath

import (
	"reflect"
	"strings"

	"forecaster/internal/match"
)

// findField tries, in order: `cast:"name"`, json tag, exact field name,
// case-insensitive name, normalized name ("order_id" finds OrderID).
// Unexported fields and fields tagged "-" are never matched.
func findField(t reflect.Type, name string) (reflect.StructField, bool) {
	fields := visibleFields(t)

	// 1) cast tag
	for _, f := range fields {
		if tagName(f, "cast") == name {
			return f, true
		}
	}

	// 2) json tag
	for _, f := range fields {
		if tagName(f, "json") == name {
			return f, true
		}
	}

	// 3) exact name
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}

	// 4) case-insensitive
	for _, f := range fields {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}

	// 5) normalized
	norm := match.NormalizeIdent(name)
	if norm == "" {
		return reflect.StructField{}, false
	}

	for _, f := range fields {
		if match.NormalizeIdent(f.Name) == norm {
			return f, true
		}
	}

	return reflect.StructField{}, false
}

func visibleFields(t reflect.Type) []reflect.StructField {
	all := reflect.VisibleFields(t)
	out := make([]reflect.StructField, 0, len(all))

	for _, f := range all {
		if !f.IsExported() || f.Tag.Get("cast") == "-" || f.Tag.Get("json") == "-" {
			continue
		}

		out = append(out, f)
	}

	return out
}

func tagName(f reflect.StructField, key string) string {
	tag := f.Tag.Get(key)
	if tag == "" || tag == "-" {
		return ""
	}
	// trim options
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}
