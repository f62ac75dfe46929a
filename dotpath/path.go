package dotpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Wildcard is the segment that fans out over every element of a sequence or map.
const Wildcard = "*"

var ErrInvalidPath = errors.New("invalid path")

// Segment is one dot-separated step of a Path.
type Segment struct {
	// Key is the raw segment text.
	Key string
	// Index is Key parsed as a non-negative integer, valid when IsIndex is true.
	Index   int
	IsIndex bool
}

// IsWildcard reports whether the segment is "*".
func (s Segment) IsWildcard() bool {
	return s.Key == Wildcard
}

// Path is a parsed dotted path.
type Path struct {
	Segments []Segment
}

// Parse parses a dotted path string into a Path.
// Supports: "field", "nested.field", "items.0", "items.*.id".
func Parse(path string) (Path, error) {
	if path == "" {
		return Path{}, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	var segments []Segment

	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			return Path{}, fmt.Errorf("%w %q: empty segment", ErrInvalidPath, path)
		}

		seg := Segment{Key: part}
		if isDigits(part) {
			if idx, err := strconv.Atoi(part); err == nil {
				seg.Index, seg.IsIndex = idx, true
			}
		}

		segments = append(segments, seg)
	}

	return Path{Segments: segments}, nil
}

// MustParse is like Parse but panics on malformed paths.
func MustParse(path string) Path {
	p, err := Parse(path)
	if err != nil {
		panic(err)
	}

	return p
}

// String joins the segments back into dotted form.
func (p Path) String() string {
	keys := make([]string, len(p.Segments))
	for i, s := range p.Segments {
		keys[i] = s.Key
	}

	return strings.Join(keys, ".")
}

// HasWildcard reports whether any segment is "*".
func (p Path) HasWildcard() bool {
	for _, s := range p.Segments {
		if s.IsWildcard() {
			return true
		}
	}

	return false
}

// Last returns the final segment name. "items.*.id" -> "id".
func (p Path) Last() string {
	if len(p.Segments) == 0 {
		return ""
	}

	return p.Segments[len(p.Segments)-1].Key
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return s != ""
}
