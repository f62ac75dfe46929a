package dotpath

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Set writes value at path inside m, creating intermediate maps as needed.
// Index segments address elements of a []any already in place, any other
// intermediate value that is not a map[string]any is replaced.
func Set(m map[string]any, path string, value any) error {
	p, err := Parse(path)
	if err != nil {
		return err
	}

	return p.Set(m, value)
}

// Set writes value at p inside m. Wildcards are not allowed.
func (p Path) Set(m map[string]any, value any) error {
	if m == nil {
		return fmt.Errorf("%w %q: nil target map", ErrInvalidPath, p)
	}

	if len(p.Segments) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	if p.HasWildcard() {
		return fmt.Errorf("%w %q: wildcard in write path", ErrInvalidPath, p)
	}

	first := p.Segments[0].Key
	m[first] = place(m[first], p.Segments[1:], value)

	return nil
}

// place returns current with value written at segs. Index segments step
// into an existing []any: an index in range replaces that element, the next
// index appends, a further one turns the sequence into a map keyed by
// position. Any other non-map value is replaced by a fresh map.
// Nested maps and sequences are copied before the write, they may be shared
// with the source record.
func place(current any, segs []Segment, value any) any {
	if len(segs) == 0 {
		return value
	}

	seg, rest := segs[0], segs[1:]

	if list, ok := current.([]any); ok && seg.IsIndex {
		switch {
		case seg.Index < len(list):
			list = slices.Clone(list)
			list[seg.Index] = place(list[seg.Index], rest, value)

			return list
		case seg.Index == len(list):
			return append(slices.Clip(list), place(nil, rest, value))
		}

		current = listToMap(list)
	}

	m, ok := current.(map[string]any)
	if ok && m != nil {
		m = maps.Clone(m)
	} else {
		m = make(map[string]any)
	}

	m[seg.Key] = place(m[seg.Key], rest, value)

	return m
}

func listToMap(list []any) map[string]any {
	m := make(map[string]any, len(list)+1)
	for i, v := range list {
		m[strconv.Itoa(i)] = v
	}

	return m
}
