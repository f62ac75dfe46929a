package options

// CoercionEnum selects optional behaviors of the built-in primitive coercions.
type CoercionEnum int

const (
	CoercionLeadingNumber CoercionEnum = 1 << iota // "12abc" -> 12: numeric prefix of a string is used, like a loose numeric cast
	CoercionTextualBool                            // "false", "no", "off" -> false: textual boolean literals are parsed before truthiness

	CoercionAll     CoercionEnum = (1 << iota) - 1       // all coercions combined
	CoercionNone    CoercionEnum = 0                     // plain whole-string parsing and truthiness only
	CoercionDefault              = CoercionLeadingNumber // compatible loose casting
)

// Has reports whether all bits of flag are set.
func (c CoercionEnum) Has(flag CoercionEnum) bool {
	return c&flag == flag
}
