// Package transformer reduces caster-shaped Go functions to a single
// dynamically typed Func.
//
// A caster takes exactly one argument and returns the converted value,
// optionally followed by an ok flag, an error, or both:
//
//	func(string) int
//	func(string) (int, bool)
//	func(string) (int, error)
//	func(string) (int, bool, error)
//
// When the ok flag is false the result is nil. The argument is converted
// from the incoming value when possible: nil becomes the zero value and
// numbers convert between numeric kinds. Other mismatches report
// ErrArgumentType.
package transformer
