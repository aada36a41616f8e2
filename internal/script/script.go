// Package script classifies Devanagari runes for syllabification and
// prosodic analysis.
//
// Classification follows the Devanagari block (U+0900–U+097F). Only the
// character classes the verse pipeline needs are modeled: consonants,
// independent vowels, dependent vowel signs (matras), the combining
// nasalization/breath marks, and the virama. Everything else is "other"
// and handled by callers as opaque single runes.
//
// All functions are safe for concurrent use.
package script

// Named runes used throughout the pipeline.
const (
	Virama       = '्' // ् suppresses the inherent vowel, marks conjuncts
	Anusvara     = 'ं' // ं nasalization
	Visarga      = 'ः' // ः voiceless breath
	Chandrabindu = 'ँ' // ँ nasalized vowel
	Avagraha     = 'ऽ' // ऽ elision sign
	Om           = 'ॐ' // ॐ
	Danda        = '।' // । verse delimiter
	DoubleDanda  = '॥' // ॥ verse delimiter
)

// matras is the set of dependent vowel signs the syllabifier attaches to
// an onset. The rarer signs (ॄ, ॢ, ॣ, ॉ) are deliberately excluded; they
// do not occur in the classical corpus this pipeline targets.
var matras = map[rune]bool{
	'ा': true, // ा
	'ि': true, // ि
	'ी': true, // ी
	'ु': true, // ु
	'ू': true, // ू
	'ृ': true, // ृ
	'े': true, // े
	'ै': true, // ै
	'ो': true, // ो
	'ौ': true, // ौ
}

// longMatras are the dependent vowel signs that make a syllable heavy.
var longMatras = map[rune]bool{
	'ा': true, // ा
	'ी': true, // ी
	'ू': true, // ू
	'े': true, // े
	'ै': true, // ै
	'ो': true, // ो
	'ौ': true, // ौ
}

// longIndependents are the independent vowels with long prosodic value.
var longIndependents = map[rune]bool{
	'आ': true, // आ
	'ई': true, // ई
	'ऊ': true, // ऊ
	'ए': true, // ए
	'ऐ': true, // ऐ
	'ओ': true, // ओ
	'औ': true, // औ
}

// IsConsonant reports whether r is a Devanagari consonant (क..ह).
func IsConsonant(r rune) bool {
	return r >= 'क' && r <= 'ह'
}

// IsIndependentVowel reports whether r is an independent vowel (अ..औ).
func IsIndependentVowel(r rune) bool {
	return r >= 'अ' && r <= 'औ'
}

// IsMatra reports whether r is a dependent vowel sign.
func IsMatra(r rune) bool {
	return matras[r]
}

// IsCombining reports whether r is one of the combining marks that bind
// to the preceding syllable: anusvara, visarga, or chandrabindu.
func IsCombining(r rune) bool {
	return r == Anusvara || r == Visarga || r == Chandrabindu
}

// IsVirama reports whether r is the virama (halant).
func IsVirama(r rune) bool {
	return r == Virama
}

// IsLongVowel reports whether r carries long prosodic value, either as a
// dependent sign or as an independent vowel.
func IsLongVowel(r rune) bool {
	return longMatras[r] || longIndependents[r]
}

// IsDevanagari reports whether r lies in the Devanagari block.
func IsDevanagari(r rune) bool {
	return r >= 'ऀ' && r <= 'ॿ'
}

// Articulation identifies the place of articulation of a consonant,
// used to resolve an anusvara to its homorganic nasal.
type Articulation int

const (
	NoArticulation Articulation = iota
	Velar                       // क ख ग घ ङ
	Palatal                     // च छ ज झ ञ
	Retroflex                   // ट ठ ड ढ ण
	Dental                      // त थ द ध न
	Labial                      // प फ ब भ म
)

// ArticulationOf returns the articulation class of r, or NoArticulation
// for runes outside the five classed consonant rows.
func ArticulationOf(r rune) Articulation {
	switch {
	case r >= 'क' && r <= 'ङ':
		return Velar
	case r >= 'च' && r <= 'ञ':
		return Palatal
	case r >= 'ट' && r <= 'ण':
		return Retroflex
	case r >= 'त' && r <= 'न':
		return Dental
	case r >= 'प' && r <= 'म':
		return Labial
	default:
		return NoArticulation
	}
}
