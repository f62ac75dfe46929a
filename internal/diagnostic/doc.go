// Package diagnostic collects structured errors, warnings and infos
// produced while checking cast plans.
//
// Each diagnostic names the plan step it belongs to (for example
// "steps[2].steps[0]") and the field path involved, and may carry
// suggestions such as close matches for a misspelled transformer name.
package diagnostic
