package syllable

import (
	"unicode"
	"unicode/utf8"

	"github.com/gahlautabhinav/Chand-Identifier/internal/script"
)

// scan splits s into akshara units using a rune-by-rune state machine.
// The caller guarantees s is non-empty.
//
// Unit shapes (highest priority first at each scan position):
//   - consonant onset: a chain of consonant+virama pairs, a final
//     consonant, then optionally one dependent vowel sign
//   - independent vowel, then optionally one combining mark
//   - any other rune alone
//
// After a unit is built, one trailing combining mark is absorbed into
// it. This also catches marks that follow a dependent vowel sign.
func scan(s string) []Unit {
	units := make([]Unit, 0, len(s)/unitsPerByteEstimate+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		// Whitespace separates units and is never emitted.
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		start := i
		switch {
		case script.IsConsonant(r):
			i = scanOnset(s, i)
		case script.IsIndependentVowel(r):
			i += size
			if nr, ns := decodeAt(s, i); script.IsCombining(nr) {
				i += ns
			}
		default:
			// Fallback: single-rune unit. Never drop input, even for
			// a combining mark with no base at line start.
			i += size
		}

		// Absorb one trailing combining mark into the unit just built.
		// This catches marks that follow a dependent vowel sign.
		if nr, ns := decodeAt(s, i); script.IsCombining(nr) {
			i += ns
		}

		units = append(units, Unit{Text: s[start:i], Start: start, End: i})
	}

	return units
}

// scanOnset consumes a consonant cluster starting at pos: consonants
// chained by viramas, then optionally one dependent vowel sign.
// A virama not followed by a consonant still closes the cluster (a bare
// conjunct at word end, e.g. न्).
func scanOnset(s string, pos int) int {
	i := pos
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !script.IsConsonant(r) {
			break
		}
		i += size
		if nr, ns := decodeAt(s, i); script.IsVirama(nr) {
			i += ns
			continue
		}
		break
	}

	if nr, ns := decodeAt(s, i); script.IsMatra(nr) {
		i += ns
	}
	return i
}

// decodeAt decodes the rune at byte offset pos, returning utf8.RuneError
// with size 0 at end of string.
func decodeAt(s string, pos int) (rune, int) {
	if pos >= len(s) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s[pos:])
}
