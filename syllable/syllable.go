// Package syllable segments Devanagari text into akshara units, the
// prosodic positions classical meter is counted in.
//
// The package provides two API layers:
//
//   - Structured: Units returns []Unit with byte offsets. The invariant
//     s[u.Start:u.End] == u.Text holds for every unit, and concatenating
//     all unit texts plus the whitespace skipped between them
//     reconstructs the original string.
//
//   - Convenience: Syllabify returns []string for callers that only need
//     the unit texts.
//
// A unit is an onset consonant cluster (consonant+virama chains) with an
// optional dependent vowel sign, or an independent vowel, either followed
// by a trailing combining mark (anusvara, visarga, chandrabindu).
// Whitespace separates units and is never itself a unit. Any other rune
// (Latin letters, digits, stray combining marks at line start) becomes a
// single-rune unit: input characters are never dropped.
//
// Segmentation is a single left-to-right pass with no backtracking and
// never fails; malformed or non-Devanagari input degrades to single-rune
// units.
//
// All functions are safe for concurrent use by multiple goroutines.
package syllable

import "fmt"

// unitsPerByteEstimate sizes the units slice: a typical akshara is two
// runes of three bytes each.
const unitsPerByteEstimate = 6

// Unit represents one akshara with its position in the input.
type Unit struct {
	Text  string // The unit text
	Start int    // Byte offset in the original string (inclusive)
	End   int    // Byte offset in the original string (exclusive)
}

// String returns a debug representation, e.g. "स्ति"[12:24].
func (u Unit) String() string {
	return fmt.Sprintf("%q[%d:%d]", u.Text, u.Start, u.End)
}

// Units segments text into akshara units with byte offsets.
// The invariant s[u.Start:u.End] == u.Text holds for every unit.
func Units(s string) []Unit {
	if s == "" {
		return nil
	}
	return scan(s)
}

// Syllabify returns only the unit texts.
// For offsets, use Units.
func Syllabify(s string) []string {
	if s == "" {
		return nil
	}
	units := scan(s)
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = u.Text
	}
	return out
}
