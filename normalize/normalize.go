// Package normalize canonicalizes Devanagari verse text for the analysis
// pipeline.
//
// Normalize applies, in order:
//
//   - Unicode NFC composition (golang.org/x/text/unicode/norm)
//   - danda verse delimiters (।, ॥) become spaces, preserving pada boundaries
//   - ॐ is spaced out so the syllabifier sees it as its own token
//   - common punctuation (ASCII marks plus the General and Supplemental
//     Punctuation blocks) becomes spaces
//   - control characters are removed
//   - whitespace is collapsed to single spaces and the ends are trimmed
//
// Combining marks and the special signs (anusvara, visarga, chandrabindu,
// avagraha, virama) are always preserved; they carry prosodic weight.
//
// Normalize is idempotent and never fails; empty or oversized (>1 MiB)
// input is returned unchanged.
//
// All functions are safe for concurrent use by multiple goroutines.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gahlautabhinav/Chand-Identifier/internal/script"
)

// maxInputBytes is the maximum input size for Normalize.
// Inputs exceeding this are returned unchanged.
const maxInputBytes = 1 << 20 // 1 MiB

// asciiPunct lists the ASCII punctuation replaced with spaces. The em and
// en dashes fall inside the General Punctuation block and are handled by
// the range check.
const asciiPunct = ".,;:\"?!()[]{}-/\\|<>@#$%^&*+=_`~"

// Normalize canonicalizes raw verse text per the package rules.
func Normalize(s string) string {
	if s == "" || len(s) > maxInputBytes {
		return s
	}
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch {
		case r == script.Danda || r == script.DoubleDanda:
			b.WriteByte(' ')
		case r == script.Om:
			b.WriteString(" ॐ ")
		case isPunct(r):
			b.WriteByte(' ')
		case r < 32:
			// control characters are dropped entirely
		default:
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// isPunct reports whether r is punctuation the pipeline discards.
// Devanagari signs are never punctuation here; the danda runes are
// handled before this check.
func isPunct(r rune) bool {
	if r >= 0x2000 && r <= 0x206F { // General Punctuation
		return true
	}
	if r >= 0x2E00 && r <= 0x2E7F { // Supplemental Punctuation
		return true
	}
	return r < 128 && strings.ContainsRune(asciiPunct, r)
}
