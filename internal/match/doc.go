// Package match provides identifier normalization, Levenshtein distance and
// "did you mean" suggestions.
//
// Key functions:
//   - NormalizeIdent: folds "OrderID", "order_id" and "order-id" to one form
//   - ExportedName: turns an arbitrary key into an exported Go identifier
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names closest to a misspelled one
package match
