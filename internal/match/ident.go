package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes an identifier for fuzzy matching:
// CamelCase is split into tokens, tokens are lowercased and joined
// without separators. "OrderID", "order_id" and "order-id" all give "orderid".
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into lowercase tokens.
// Examples:
//   - "OrderID" -> ["order", "id"]
//   - "customer_name" -> ["customer", "name"]
//   - "XMLParser" -> ["xml", "parser"]
func TokenizeIdent(s string) []string {
	tokens := tokenize(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// ExportedName builds an exported Go identifier out of an arbitrary key:
// "first_name" -> "FirstName", "id" -> "Id", "2fa" -> "F2fa".
// Runes that cannot appear in an identifier act as separators.
// An empty result becomes "F".
func ExportedName(key string) string {
	var b strings.Builder

	for _, token := range tokenize(key) {
		runes := []rune(token)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	name := b.String()
	if name == "" {
		return "F"
	}

	first := []rune(name)[0]
	if !unicode.IsLetter(first) || !unicode.IsUpper(first) {
		return "F" + name
	}

	return name
}

// tokenize splits s on separators and CamelCase boundaries, keeping case.
func tokenize(s string) []string {
	runes := []rune(s)

	var tokens []string

	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

// isSeparator reports runes that never belong to a token.
func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// startsToken reports whether a new token begins at runes[i]:
// "orderID" splits before 'I', "XMLParser" splits before 'P'.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
