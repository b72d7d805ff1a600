// Package phone normalizes and formats Indonesian contact numbers the way
// the front-desk forms expect them: a canonical "+62" prefix followed by a
// fixed number of digits on the wire, a single leading "0" on screen.
package phone

import (
	"regexp"
	"strings"
)

// Prefix is the canonical country prefix every stored contact carries.
const Prefix = "+62"

// DefaultDigits is the number of digits required after the prefix. The
// resulting 14-character total is a product constraint, not a numbering-plan
// rule, which is why Rule keeps it adjustable.
const DefaultDigits = 11

var nonDigits = regexp.MustCompile(`\D`)

// Rule carries the configurable digit count for contact numbers.
type Rule struct {
	Digits int
}

// Default is the rule used when nothing overrides the digit count.
var Default = Rule{Digits: DefaultDigits}

func (r Rule) digits() int {
	if r.Digits <= 0 {
		return DefaultDigits
	}
	return r.Digits
}

// MaxLen is the canonical length cap including the "+62" prefix.
func (r Rule) MaxLen() int {
	return len(Prefix) + r.digits()
}

// Normalize maps whatever the user typed into the canonical form. Called on
// every contact keystroke across all four forms, so the field never drifts
// away from the prefix rule while being edited:
//
//   - input already prefixed with "+62" keeps the prefix and drops every
//     non-digit after it
//   - otherwise all non-digits are stripped; a leading "62" gains a "+", a
//     leading "08" swaps the "0" for "+62", anything else is prefixed with
//     "+62" directly
//   - the result is truncated to the canonical length cap
func (r Rule) Normalize(raw string) string {
	var v string
	if strings.HasPrefix(raw, Prefix) {
		v = Prefix + nonDigits.ReplaceAllString(raw[len(Prefix):], "")
	} else {
		cleaned := nonDigits.ReplaceAllString(raw, "")
		switch {
		case strings.HasPrefix(cleaned, "62"):
			v = "+" + cleaned
		case strings.HasPrefix(cleaned, "08"):
			v = Prefix + cleaned[1:]
		default:
			v = Prefix + cleaned
		}
	}
	if len(v) > r.MaxLen() {
		v = v[:r.MaxLen()]
	}
	return v
}

// Display converts a canonical number to its on-screen form, replacing the
// "+62" prefix with a single leading "0". Values without the prefix are
// returned unchanged.
func (r Rule) Display(v string) string {
	if strings.HasPrefix(v, Prefix) {
		return "0" + v[len(Prefix):]
	}
	return v
}

// Valid reports whether v is a complete canonical number: the "+62" prefix
// followed by exactly the configured number of digits.
func (r Rule) Valid(v string) bool {
	if !strings.HasPrefix(v, Prefix) {
		return false
	}
	rest := v[len(Prefix):]
	if len(rest) != r.digits() {
		return false
	}
	return nonDigits.FindStringIndex(rest) == nil
}

// Normalize applies the default rule.
func Normalize(raw string) string { return Default.Normalize(raw) }

// Display applies the default rule.
func Display(v string) string { return Default.Display(v) }

// Valid applies the default rule.
func Valid(v string) bool { return Default.Valid(v) }
