package primitive

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"forecaster/options"
)

// Coerce converts value into the Go representation of kind:
// int, float64, string or bool. Unknown kinds pass the value through.
//
// The rules are loose on purpose: malformed input never fails, it degrades
// to the zero value of the kind. Booleans follow truthiness, so the string
// "false" is true unless options.CoercionTextualBool is set.
func Coerce(kind KindEnum, value any, flags options.CoercionEnum) any {
	switch kind {
	default:
		return value
	case KindInt:
		return ToInt(value, flags)
	case KindFloat:
		return ToFloat(value, flags)
	case KindString:
		return ToString(value)
	case KindBool:
		return ToBool(value, flags)
	}
}

// ToInt converts value to int, truncating floats toward zero.
func ToInt(value any, flags options.CoercionEnum) int {
	switch v := value.(type) {
	case nil:
		return 0
	case int:
		return v
	case bool:
		if v {
			return 1
		}

		return 0
	case string:
		return textToInt(v, flags)
	case []byte:
		return textToInt(string(v), flags)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	default:
		return 1
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= math.MaxInt {
			return int(u)
		}

		return math.MaxInt
	case reflect.Float32, reflect.Float64:
		return floatToInt(rv.Float())
	case reflect.String:
		return textToInt(rv.String(), flags)
	case reflect.Bool:
		return ToInt(rv.Bool(), flags)
	case reflect.Slice, reflect.Array, reflect.Map:
		if rv.Len() > 0 {
			return 1
		}

		return 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return 0
		}

		return ToInt(rv.Elem().Interface(), flags)
	}
}

// ToFloat converts value to float64.
func ToFloat(value any, flags options.CoercionEnum) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case bool:
		if v {
			return 1
		}

		return 0
	case string:
		return textToFloat(v, flags)
	case []byte:
		return textToFloat(string(v), flags)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	default:
		return 1
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return textToFloat(rv.String(), flags)
	case reflect.Bool:
		return ToFloat(rv.Bool(), flags)
	case reflect.Slice, reflect.Array, reflect.Map:
		if rv.Len() > 0 {
			return 1
		}

		return 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return 0
		}

		return ToFloat(rv.Elem().Interface(), flags)
	}
}

// ToString converts value to its textual form. true is "1", false and nil are "".
// Floats use the shortest decimal form, switching to "1.0E+25" notation
// for exponents below -4 or from 15 up.
func ToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		if v {
			return "1"
		}

		return ""
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	default:
		return fmt.Sprint(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return ToString(rv.Bool())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ""
		}

		return ToString(rv.Elem().Interface())
	}
}

// ToBool converts value to bool using Truthy, optionally parsing textual literals first.
func ToBool(value any, flags options.CoercionEnum) bool {
	if flags.Has(options.CoercionTextualBool) {
		if s, ok := value.(string); ok {
			if b, ok := parseTextualBool(s); ok {
				return b
			}
		}
	}

	return Truthy(value)
}

// Truthy reports whether value counts as true: nil, false, zero numbers,
// "", "0" and empty collections are false, everything else is true.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "0"
	case []byte:
		return len(v) != 0 && string(v) != "0"
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	default:
		return true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String:
		return Truthy(rv.String())
	case reflect.Bool:
		return rv.Bool()
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}

		return Truthy(rv.Elem().Interface())
	}
}

// formatFloat prints f in plain decimal unless its decimal exponent is below
// -4 or at least 15, then as mantissa and exponent: 1e25 -> "1.0E+25",
// 1.5e-7 -> "1.5E-7".
func formatFloat(f float64, bitSize int) string {
	sci := strconv.FormatFloat(f, 'e', -1, bitSize)

	idx := strings.IndexByte(sci, 'e')
	if idx < 0 {
		return sci
	}

	exp, err := strconv.Atoi(sci[idx+1:])
	if err != nil || (exp >= -4 && exp < 15) {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}

	mantissa := sci[:idx]
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}

	sign := "+"
	if exp < 0 {
		sign, exp = "-", -exp
	}

	return mantissa + "E" + sign + strconv.Itoa(exp)
}

func parseTextualBool(s string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	default:
		return false, false
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0", "":
		return false, true
	}
}

func textToInt(s string, flags options.CoercionEnum) int {
	s = strings.TrimSpace(s)

	if n, err := strconv.ParseInt(s, 10, 0); err == nil {
		return int(n)
	}

	return floatToInt(textToFloat(s, flags))
}

func textToFloat(s string, flags options.CoercionEnum) float64 {
	s = strings.TrimSpace(s)

	if f, err := strconv.ParseFloat(s, 64); err == nil && isDecimal(s) {
		return f
	}

	if !flags.Has(options.CoercionLeadingNumber) {
		return 0
	}

	prefix := numericPrefix(s)
	if prefix == "" {
		return 0
	}

	// the prefix is well formed, so only range errors remain and f already holds ±Inf
	f, _ := strconv.ParseFloat(prefix, 64)

	return f
}

// isDecimal rejects the forms strconv accepts but a plain decimal literal
// does not: hex, underscores, inf and nan spellings.
func isDecimal(s string) bool {
	return numericPrefix(s) == s
}

// numericPrefix returns the longest leading part of s shaped like
// [+-]digits[.digits][e[+-]digits].
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}

		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}

	if digits == 0 {
		return ""
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}

		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}

		if exp > 0 {
			i = j
		}
	}

	return s[:i]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func floatToInt(f float64) int {
	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}

	return int(f)
}
