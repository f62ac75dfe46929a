package common

import "strconv"

// UnknownStr is the display name for out-of-range enum values.
const UnknownStr = "unknown"

// NewStem creates a name allocator handing out base, base1, base2, ...
// skipping names already present in taken. A nil taken set starts empty.
func NewStem(taken map[string]struct{}) *Stem {
	if taken == nil {
		taken = make(map[string]struct{})
	}

	return &Stem{taken: taken}
}

// Stem allocates unique names within one namespace.
type Stem struct {
	taken map[string]struct{}
}

// Claim returns base itself when free, otherwise base followed by the
// smallest free positive counter. The returned name is marked as taken.
func (s *Stem) Claim(base string) string {
	if _, ok := s.taken[base]; !ok {
		s.taken[base] = struct{}{}
		return base
	}

	for n := 1; ; n++ {
		name := base + strconv.Itoa(n)

		if _, ok := s.taken[name]; !ok {
			s.taken[name] = struct{}{}
			return name
		}
	}
}
